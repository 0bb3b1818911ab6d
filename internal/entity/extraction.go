package entity

// VendorField is an extracted merchant name.
type VendorField struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
	Raw        string  `json:"raw,omitempty"`
}

// AmountField is one extracted monetary value. Value is positive and
// below the MaxAmount cap; anything else is dropped before it gets here.
type AmountField struct {
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
}

// AmountSet groups the monetary fields one strategy extracted.
type AmountSet struct {
	Total    *AmountField `json:"total,omitempty"`
	Subtotal *AmountField `json:"subtotal,omitempty"`
	Tax      *AmountField `json:"tax,omitempty"`
}

// Empty reports whether no amount was extracted at all.
func (a AmountSet) Empty() bool {
	return a.Total == nil && a.Subtotal == nil && a.Tax == nil
}

// DateField is an extracted transaction date, kept as the source token.
type DateField struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
	Format     string  `json:"format,omitempty"`
}

// LineItem is one product/service entry parsed from the items section.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	TotalPrice  *float64 `json:"total_price,omitempty"`
	Confidence  float64  `json:"confidence"`
}

// ExtractionResult is the self-contained output of one strategy.
// Confidence is the mean over whichever fields are present, 0 if none.
type ExtractionResult struct {
	Strategy   string      `json:"strategy"`
	Vendor     *VendorField `json:"vendor,omitempty"`
	Amounts    *AmountSet  `json:"amounts,omitempty"`
	Date       *DateField  `json:"date,omitempty"`
	LineItems  []LineItem  `json:"line_items,omitempty"`
	Confidence float64     `json:"confidence"`
}

// HasAny reports whether the result carries at least one extracted field.
func (r ExtractionResult) HasAny() bool {
	return r.Vendor != nil ||
		(r.Amounts != nil && !r.Amounts.Empty()) ||
		r.Date != nil ||
		len(r.LineItems) > 0
}
