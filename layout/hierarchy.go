package layout

import "github.com/tsawler/outline/model"

// ValidateHierarchy clamps heading levels so that depth never increases by
// more than one step between consecutive headings. The first heading may be
// at most H1. Order and text are unchanged; headings are updated in place
// and the same slice is returned.
func ValidateHierarchy(headings []model.Heading) []model.Heading {
	last := 0
	for i := range headings {
		level := int(headings[i].Level)
		if level < int(model.H1) {
			level = int(model.H1)
		}
		if level > last+1 {
			level = last + 1
		}
		headings[i].Level = model.Level(level)
		last = level
	}
	return headings
}
