package strategy

import (
	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

// contextual scans every line for keyword+amount patterns without relying
// on structural segmentation, so it still works when section detection
// came up empty or misfired.
type contextual struct {
	vendors *VendorIndex
}

func (c *contextual) Name() string  { return constants.StrategyContextual }
func (c *contextual) Priority() int { return 80 }

func (c *contextual) IsApplicable(entity.DocumentStructure, entity.ProcessedText) bool {
	return true
}

func (c *contextual) Extract(_ entity.DocumentStructure, text entity.ProcessedText) entity.ExtractionResult {
	res := entity.ExtractionResult{Strategy: c.Name()}

	amounts := &entity.AmountSet{}
	for _, line := range text.Lines {
		v, ok := amountOnLine(line)
		if !ok {
			continue
		}
		switch {
		case reSubtotalLine.MatchString(line):
			if amounts.Subtotal == nil {
				amounts.Subtotal = &entity.AmountField{Value: v, Confidence: 0.85, Method: "keyword_amount"}
			}
		case reTaxLine.MatchString(line):
			if amounts.Tax == nil {
				amounts.Tax = &entity.AmountField{Value: v, Confidence: 0.85, Method: "keyword_amount"}
			}
		case reTotalLine.MatchString(line) || reDueLine.MatchString(line):
			if amounts.Total == nil {
				amounts.Total = &entity.AmountField{Value: v, Confidence: 0.9, Method: "keyword_amount"}
			}
		}
	}
	if !amounts.Empty() {
		res.Amounts = amounts
	}

	for _, line := range text.Lines {
		if name, ok := c.vendors.Match(line); ok {
			res.Vendor = &entity.VendorField{
				Name:       name,
				Confidence: 0.8,
				Method:     "known_vendor_fuzzy",
				Raw:        line,
			}
			break
		}
	}

	res.Date = findDate(text.Lines, "date_token")

	scoreResult(&res)
	return res
}
