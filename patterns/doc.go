// Package patterns holds the compiled text patterns used to classify
// candidate headings: numbering schemes, section keywords, question forms,
// and the filters that reject text that cannot be a heading.
//
// Heading rules are an ordered list of [Rule] values; the first rule whose
// matcher fires decides the level:
//
//	if level, ok := patterns.DefaultRules().Match(text); ok {
//	    // level is model.H1..model.H3
//	}
//
// [IsPlausibleHeading] applies the length limits and non-heading filters
// (sentences, instructions, dates, addresses, links, repeated phrases).
package patterns
