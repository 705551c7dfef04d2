// Package text provides the text cleanup shared by the decoders and the
// outline classifiers.
//
// [Normalize] converts text to NFC and repairs spacing left behind by PDF
// text extraction, such as words glued at a case change or missing spaces
// after punctuation:
//
//	text.Normalize("IntroductionTo the  study")  // "Introduction To the study"
//
// Lengths are measured in runes with [Len] and cut with [Truncate], so
// limits behave the same for accented and non-Latin text. [EqualFold]
// compares strings after trimming and Unicode case folding; the engine uses
// it to keep the title out of the heading list.
package text
