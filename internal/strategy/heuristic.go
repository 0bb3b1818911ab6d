package strategy

import (
	"regexp"
	"strings"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

// heuristic is the last-resort strategy: largest amount is the total, the
// first plausible line is the vendor. Its confidence is scaled down to
// keep it from outranking anything with real evidence.
type heuristic struct{}

const heuristicScale = 0.7
const heuristicFloor = 0.3

func (h *heuristic) Name() string  { return constants.StrategyHeuristic }
func (h *heuristic) Priority() int { return 60 }

func (h *heuristic) IsApplicable(entity.DocumentStructure, entity.ProcessedText) bool {
	return true
}

func (h *heuristic) Extract(_ entity.DocumentStructure, text entity.ProcessedText) entity.ExtractionResult {
	res := entity.ExtractionResult{Strategy: h.Name()}

	cents := moneyCents(text.Cleaned)
	var largest int64
	for _, c := range cents {
		if c > largest {
			largest = c
		}
	}
	if largest > 0 {
		res.Amounts = &entity.AmountSet{
			Total: &entity.AmountField{Value: centsToValue(largest), Confidence: 0.5, Method: "largest_amount"},
		}
	}

	if line := firstPlausibleLine(text.Lines); line != "" {
		res.Vendor = &entity.VendorField{
			Name:       titleCase(line),
			Confidence: 0.4,
			Method:     "first_line",
			Raw:        line,
		}
	}

	scoreResult(&res)
	if res.Confidence > 0 {
		res.Confidence *= heuristicScale
		if res.Confidence < heuristicFloor {
			res.Confidence = heuristicFloor
		}
	}
	return res
}

var reMostlyDigits = regexp.MustCompile(`^[\d\W]+$`)

// firstPlausibleLine picks the first non-trivial line among the first
// five: long enough to be a name and not just numbers or symbols.
func firstPlausibleLine(lines []string) string {
	limit := min(5, len(lines))
	for i := 0; i < limit; i++ {
		l := strings.TrimSpace(lines[i])
		if len(l) < 3 || reMostlyDigits.MatchString(l) {
			continue
		}
		return l
	}
	return ""
}
