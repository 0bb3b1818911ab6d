package constants

// QualityLevel grades normalized OCR text.
type QualityLevel string

// Stable values (serialized into extraction output).
const (
	QualityExcellent QualityLevel = "excellent"
	QualityGood      QualityLevel = "good"
	QualityFair      QualityLevel = "fair"
	QualityPoor      QualityLevel = "poor"
)

// Quality score cut points, applied to the clamped [0,1] heuristic score.
const (
	QualityFairMin      = 0.4
	QualityGoodMin      = 0.6
	QualityExcellentMin = 0.8
)

// QualityForScore maps a clamped heuristic score to its level.
func QualityForScore(score float64) QualityLevel {
	switch {
	case score >= QualityExcellentMin:
		return QualityExcellent
	case score >= QualityGoodMin:
		return QualityGood
	case score >= QualityFairMin:
		return QualityFair
	default:
		return QualityPoor
	}
}
