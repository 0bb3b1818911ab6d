package entity

import "github.com/receiptwise/extractor/constants"

// Correction records one substitution applied during normalization.
// The log is append-only; entries appear in application order.
type Correction struct {
	Original   string                   `json:"original"`
	Corrected  string                   `json:"corrected"`
	Kind       constants.CorrectionKind `json:"kind"`
	Confidence float64                  `json:"confidence"`
}

// ProcessedText is the output of OCR text normalization.
// Cleaned holds no tabs, no carriage returns, no run of blank lines,
// and no leading/trailing whitespace on any line.
type ProcessedText struct {
	Original    string                 `json:"original"`
	Cleaned     string                 `json:"cleaned"`
	Lines       []string               `json:"lines"`
	Corrections []Correction           `json:"corrections"`
	Quality     constants.QualityLevel `json:"quality"`
}

// CorrectionRatio is the number of corrections per 100 input characters,
// the density figure quality scoring keys off.
func (p ProcessedText) CorrectionRatio() float64 {
	denom := float64(len(p.Original)) / 100
	if denom < 1 {
		denom = 1
	}
	return float64(len(p.Corrections)) / denom
}
