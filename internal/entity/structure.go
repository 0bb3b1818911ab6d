package entity

import "github.com/receiptwise/extractor/constants"

// Section is a contiguous run of lines with one semantic role.
// StartLine/EndLine are inclusive indices into the analyzed line slice.
type Section struct {
	Kind       constants.SectionKind `json:"kind"`
	Content    string                `json:"content"`
	Lines      []string              `json:"lines"`
	StartLine  int                   `json:"start_line"`
	EndLine    int                   `json:"end_line"`
	Confidence float64               `json:"confidence"`
}

// DocumentStructure is the output of structural analysis.
// Sections are sorted by StartLine and partition [0, lineCount) exactly.
type DocumentStructure struct {
	Sections   []Section                `json:"sections"`
	Format     constants.DocumentFormat `json:"format"`
	Layout     constants.DocumentLayout `json:"layout"`
	Confidence float64                  `json:"confidence"`
}

// SectionsOf returns all sections of the given kind, in document order.
func (d DocumentStructure) SectionsOf(kind constants.SectionKind) []Section {
	var out []Section
	for _, s := range d.Sections {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// FirstSection returns the first section of the given kind, or nil.
func (d DocumentStructure) FirstSection(kind constants.SectionKind) *Section {
	for i := range d.Sections {
		if d.Sections[i].Kind == kind {
			return &d.Sections[i]
		}
	}
	return nil
}
