package strategy

import (
	"sort"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

// toleranceCents is the allowed drift when checking subtotal+tax=total,
// in integer cents (constants.AmountTolerance in dollars).
const toleranceCents = int64(constants.AmountTolerance * 100)

// mathematical ignores labels entirely and looks for a triple of amounts
// satisfying subtotal + tax = total. Labels can be garbled by OCR; the
// arithmetic relationship survives.
type mathematical struct{}

func (m *mathematical) Name() string  { return constants.StrategyMathematical }
func (m *mathematical) Priority() int { return 70 }

func (m *mathematical) IsApplicable(_ entity.DocumentStructure, text entity.ProcessedText) bool {
	return len(moneyCents(text.Cleaned)) >= 3
}

func (m *mathematical) Extract(_ entity.DocumentStructure, text entity.ProcessedText) entity.ExtractionResult {
	res := entity.ExtractionResult{Strategy: m.Name()}

	cents := moneyCents(text.Cleaned)
	sort.Slice(cents, func(i, j int) bool { return cents[i] > cents[j] })

	if total, subtotal, tax, ok := findSumTriple(cents); ok {
		res.Amounts = &entity.AmountSet{
			Total:    &entity.AmountField{Value: centsToValue(total), Confidence: 0.9, Method: "sum_check"},
			Subtotal: &entity.AmountField{Value: centsToValue(subtotal), Confidence: 0.87, Method: "sum_check"},
			Tax:      &entity.AmountField{Value: centsToValue(tax), Confidence: 0.85, Method: "sum_check"},
		}
	} else if len(cents) > 0 {
		// no consistent triple; fall back to "largest value is total"
		res.Amounts = &entity.AmountSet{
			Total: &entity.AmountField{Value: centsToValue(cents[0]), Confidence: 0.6, Method: "largest_amount"},
		}
	}

	scoreResult(&res)
	return res
}

// findSumTriple searches descending-sorted cents for total = subtotal + tax
// within tolerance. Candidates are tried largest-total first; the subtotal
// is the larger member of the pair.
func findSumTriple(cents []int64) (total, subtotal, tax int64, ok bool) {
	for i := 0; i < len(cents); i++ {
		for j := 0; j < len(cents); j++ {
			if j == i {
				continue
			}
			for k := j + 1; k < len(cents); k++ {
				if k == i {
					continue
				}
				diff := cents[j] + cents[k] - cents[i]
				if diff < 0 {
					diff = -diff
				}
				if diff <= toleranceCents {
					sub, tx := cents[j], cents[k]
					if tx > sub {
						sub, tx = tx, sub
					}
					return cents[i], sub, tx, true
				}
			}
		}
	}
	return 0, 0, 0, false
}
