package normalize

// Options control which normalization stages run.
type Options struct {
	// Aggressive enables the riskier substitution entries (e.g. rn -> m).
	Aggressive bool
	// PreserveFormatting skips currency/date/time format normalization.
	PreserveFormatting bool
	// FixCommonOCRErrors enables the character/word substitution tables.
	FixCommonOCRErrors bool
	// NormalizeSpacing enables spaced-keyword and currency spacing repair.
	NormalizeSpacing bool
}

// DefaultOptions returns the standard option set: everything on except
// PreserveFormatting.
func DefaultOptions() Options {
	return Options{
		Aggressive:         true,
		PreserveFormatting: false,
		FixCommonOCRErrors: true,
		NormalizeSpacing:   true,
	}
}
