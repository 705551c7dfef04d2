package model

// TableKind identifies how a table region was found
type TableKind int

const (
	TextTable TableKind = iota
	DetectedTable
	FormStructure
)

// String returns the kind label
func (k TableKind) String() string {
	switch k {
	case TextTable:
		return "text_table"
	case DetectedTable:
		return "detected_table"
	case FormStructure:
		return "form_structure"
	default:
		return "unknown"
	}
}

// TableArea is a page region treated as tabular or form content. Blocks
// overlapping it are excluded from heading extraction.
type TableArea struct {
	BBox       Rect
	Kind       TableKind
	Confidence float64 // Detection confidence (0-1)
}
