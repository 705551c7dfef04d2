package model

// Tier names a structural font-size tier
type Tier int

const (
	TierTitle Tier = iota
	TierH1
	TierH2
	TierH3
)

// FontHierarchy holds per-document font-size thresholds for each tier.
// Tiers without evidence are back-filled from Body; Derived records which
// tiers were taken from the document's own fonts.
type FontHierarchy struct {
	Title float64
	H1    float64
	H2    float64
	H3    float64
	Body  float64

	Derived [4]bool // indexed by Tier
}

// DefaultFontHierarchy is used when a document has no qualifying text at all
func DefaultFontHierarchy() FontHierarchy {
	return FontHierarchy{Title: 16, H1: 14, H2: 12, H3: 11, Body: 10}
}

// IsDerived reports whether a tier came from document evidence
func (h FontHierarchy) IsDerived(t Tier) bool {
	if t < TierTitle || t > TierH3 {
		return false
	}
	return h.Derived[t]
}

// Size returns the threshold for a tier
func (h FontHierarchy) Size(t Tier) float64 {
	switch t {
	case TierTitle:
		return h.Title
	case TierH1:
		return h.H1
	case TierH2:
		return h.H2
	case TierH3:
		return h.H3
	}
	return h.Body
}

// DocumentType is the coarse genre of a document
type DocumentType int

const (
	DocumentGeneral DocumentType = iota
	DocumentInvitation
	DocumentAcademic
	DocumentForm
	DocumentReport
)

// String returns the document type label
func (t DocumentType) String() string {
	switch t {
	case DocumentInvitation:
		return "invitation"
	case DocumentAcademic:
		return "academic"
	case DocumentForm:
		return "form"
	case DocumentReport:
		return "report"
	default:
		return "general"
	}
}
