package strategy

import "github.com/receiptwise/extractor/internal/entity"

// scoreResult computes a strategy's self-reported confidence: the mean of
// the confidences of whichever of vendor, total, date, and line items it
// populated, 0 if none. Which fields count is load-bearing; keep this the
// single place the rule lives.
func scoreResult(r *entity.ExtractionResult) {
	var parts []float64
	if r.Vendor != nil {
		parts = append(parts, r.Vendor.Confidence)
	}
	if r.Amounts != nil && r.Amounts.Total != nil {
		parts = append(parts, r.Amounts.Total.Confidence)
	}
	if r.Date != nil {
		parts = append(parts, r.Date.Confidence)
	}
	if len(r.LineItems) > 0 {
		parts = append(parts, meanItemConfidence(r.LineItems))
	}
	r.Confidence = mean(parts)
}

func meanItemConfidence(items []entity.LineItem) float64 {
	sum := 0.0
	for _, it := range items {
		sum += it.Confidence
	}
	return sum / float64(len(items))
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
