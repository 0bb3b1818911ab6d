package entity

// ConsolidatedResult is the final merged record handed to the caller.
// Each scalar field is taken from exactly one contributing strategy.
type ConsolidatedResult struct {
	Vendor    string     `json:"vendor,omitempty"`
	Total     *float64   `json:"total,omitempty"`
	Subtotal  *float64   `json:"subtotal,omitempty"`
	Tax       *float64   `json:"tax,omitempty"`
	Date      string     `json:"date,omitempty"`
	LineItems []LineItem `json:"line_items,omitempty"`

	VendorConfidence float64 `json:"vendor_confidence"`
	TotalConfidence  float64 `json:"total_confidence"`
	DateConfidence   float64 `json:"date_confidence"`

	// ExtractionMethods lists contributing strategies, highest confidence first.
	ExtractionMethods []string `json:"extraction_methods"`
	OverallConfidence float64  `json:"overall_confidence"`
	ValidationPassed  bool     `json:"validation_passed"`
}
