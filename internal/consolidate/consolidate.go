package consolidate

import (
	"sort"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

// Consolidate merges per-strategy results into one record. Selection is
// first-writer-wins per field over results sorted by descending
// confidence, so different fields may be sourced from different
// strategies. That mixing is deliberate; see DESIGN.md.
func Consolidate(results []entity.ExtractionResult) entity.ConsolidatedResult {
	if len(results) == 0 {
		return entity.ConsolidatedResult{
			ExtractionMethods: []string{},
			ValidationPassed:  false,
		}
	}

	sorted := append([]entity.ExtractionResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	out := entity.ConsolidatedResult{}
	for _, r := range sorted {
		if out.Vendor == "" && r.Vendor != nil {
			out.Vendor = r.Vendor.Name
			out.VendorConfidence = r.Vendor.Confidence
		}
		if r.Amounts != nil {
			if out.Total == nil && r.Amounts.Total != nil {
				v := r.Amounts.Total.Value
				out.Total = &v
				out.TotalConfidence = r.Amounts.Total.Confidence
			}
			if out.Subtotal == nil && r.Amounts.Subtotal != nil {
				v := r.Amounts.Subtotal.Value
				out.Subtotal = &v
			}
			if out.Tax == nil && r.Amounts.Tax != nil {
				v := r.Amounts.Tax.Value
				out.Tax = &v
			}
		}
		if out.Date == "" && r.Date != nil {
			out.Date = r.Date.Value
			out.DateConfidence = r.Date.Confidence
		}
		if out.LineItems == nil && len(r.LineItems) > 0 {
			out.LineItems = r.LineItems
		}
	}

	out.ExtractionMethods = methodNames(sorted)
	out.OverallConfidence = overallConfidence(out)
	out.ValidationPassed = out.VendorConfidence >= constants.ValidationConfidence &&
		out.TotalConfidence >= constants.ValidationConfidence
	return out
}

// methodNames lists contributing strategies in confidence order, each at
// most once.
func methodNames(sorted []entity.ExtractionResult) []string {
	seen := make(map[string]struct{}, len(sorted))
	out := make([]string, 0, len(sorted))
	for _, r := range sorted {
		if !r.HasAny() {
			continue
		}
		if _, dup := seen[r.Strategy]; dup {
			continue
		}
		seen[r.Strategy] = struct{}{}
		out = append(out, r.Strategy)
	}
	return out
}

// overallConfidence is the mean of whichever of the vendor, total, and
// date confidences were set, 0 if none were.
func overallConfidence(r entity.ConsolidatedResult) float64 {
	var parts []float64
	if r.Vendor != "" {
		parts = append(parts, r.VendorConfidence)
	}
	if r.Total != nil {
		parts = append(parts, r.TotalConfidence)
	}
	if r.Date != "" {
		parts = append(parts, r.DateConfidence)
	}
	if len(parts) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range parts {
		sum += p
	}
	return sum / float64(len(parts))
}
