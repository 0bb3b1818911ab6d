package normalize

import (
	"regexp"
	"strings"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

var (
	reMoneyish   = regexp.MustCompile(`\$[ ]?\d|\b\d+\.\d{2}\b`)
	reDateish    = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b|\b\d{4}/\d{2}/\d{2}\b|(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.? \d{1,2},? \d{4}\b`)
	reTotalsWord = regexp.MustCompile(`(?i)\b(sub\s?-?total|total|tax|amount due|balance)\b`)
)

// Characters tolerated outside the alphanumeric set before a rune counts
// as gibberish.
const benignPunct = " $.,:/%#@&*()\\-'\"+!?\n"

// scoreQuality grades normalized text in a single pass: structural
// indicators add, noise indicators subtract, result clamps to [0,1].
func scoreQuality(p entity.ProcessedText) constants.QualityLevel {
	if strings.TrimSpace(p.Cleaned) == "" {
		return constants.QualityPoor
	}

	score := 0.5
	if reMoneyish.MatchString(p.Cleaned) {
		score += 0.1
	}
	if reDateish.MatchString(p.Cleaned) {
		score += 0.1
	}
	if reTotalsWord.MatchString(p.Cleaned) {
		score += 0.2
	}
	ratio := p.CorrectionRatio()
	if ratio < 0.05 {
		score += 0.2
	}
	if gibberishRatio(p.Cleaned) > 0.1 {
		score -= 0.3
	}
	if ratio > 0.2 {
		score -= 0.2
	}
	if len(p.Lines) < 3 {
		score -= 0.1
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return constants.QualityForScore(score)
}

func gibberishRatio(s string) float64 {
	if s == "" {
		return 0
	}
	total, bad := 0, 0
	for _, r := range s {
		total++
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(benignPunct, r):
		default:
			bad++
		}
	}
	return float64(bad) / float64(total)
}
