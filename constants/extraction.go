package constants

// CorrectionKind tags one entry in the normalization correction log.
type CorrectionKind string

const (
	CorrectionCharacter CorrectionKind = "character"
	CorrectionSpacing   CorrectionKind = "spacing"
	CorrectionFormat    CorrectionKind = "format"
	CorrectionWord      CorrectionKind = "word"
)

// Strategy names as reported in extraction_methods.
const (
	StrategyStructureAware = "structure_aware"
	StrategyContextual     = "contextual_pattern"
	StrategyMathematical   = "mathematical"
	StrategyHeuristic      = "heuristic"
)

// Extraction thresholds shared across packages.
const (
	// MinStrategyConfidence drops strategy results at or below this score.
	MinStrategyConfidence = 0.2
	// ValidationConfidence is the per-field floor for validation_passed.
	ValidationConfidence = 0.5
	// MaxAmount caps monetary values; anything at or above is OCR noise.
	MaxAmount = 999999.0
	// AmountTolerance is the allowed drift when checking subtotal+tax=total.
	AmountTolerance = 0.02
)
