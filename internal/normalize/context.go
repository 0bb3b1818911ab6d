package normalize

import (
	"regexp"
	"strings"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

// Price-shaped tokens that may carry letter-for-digit OCR errors. The
// surrounding context (a $ prefix or a decimal shape) is what makes the
// single-character swap safe.
var (
	reDollarToken  = regexp.MustCompile(`\$[ \t]?[0-9OoIl]+(?:[.,][0-9OoIl]+)*`)
	reDecimalToken = regexp.MustCompile(`\b\d[\dOl]*\.[\dOl]*[OoIl][\dOl]*\b`)
)

var digitForLetter = map[rune]rune{
	'O': '0',
	'o': '0',
	'I': '1',
	'l': '1',
}

// disambiguateDigits rewrites letter O/I/l to digits, but only inside
// recognized price tokens, and fixes 1-for-letter errors only inside the
// whitelist of known words. This is the single stage where ambiguous
// one-character substitutions happen.
func disambiguateDigits(s string, log *[]entity.Correction) string {
	s = fixPriceToken(s, reDollarToken, log)
	s = fixPriceToken(s, reDecimalToken, log)
	for i, e := range digitWordTable {
		s = replaceAndRecord(s, digitWordTableRes[i], e.replacement, e.kind, e.confidence, log)
	}
	return s
}

func fixPriceToken(s string, re *regexp.Regexp, log *[]entity.Correction) string {
	return re.ReplaceAllStringFunc(s, func(tok string) string {
		var b strings.Builder
		b.Grow(len(tok))
		for _, r := range tok {
			if d, ok := digitForLetter[r]; ok {
				*log = append(*log, entity.Correction{
					Original:   string(r),
					Corrected:  string(d),
					Kind:       constants.CorrectionCharacter,
					Confidence: 0.9,
				})
				b.WriteRune(d)
				continue
			}
			b.WriteRune(r)
		}
		return b.String()
	})
}
