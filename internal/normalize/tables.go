package normalize

import (
	"regexp"
	"strings"

	"github.com/receiptwise/extractor/constants"
)

// tableEntry is one substitution rule: an ordered (pattern, replacement,
// kind, confidence) tuple. Entries are applied in slice order.
type tableEntry struct {
	pattern     string
	replacement string
	kind        constants.CorrectionKind
	confidence  float64
}

// wordTable holds unambiguous multi-character OCR fixes. Single-character
// bidirectional pairs (O/0, l/1) are deliberately absent here; those are
// only safe inside a recognized numeric or word context (see context.go).
var wordTable = []tableEntry{
	{"TOTAI", "TOTAL", constants.CorrectionWord, 0.95},
	{"T0TAL", "TOTAL", constants.CorrectionWord, 0.95},
	{"SUBT0TAL", "SUBTOTAL", constants.CorrectionWord, 0.95},
	{"SUBTOTAI", "SUBTOTAL", constants.CorrectionWord, 0.95},
	{"AM0UNT", "AMOUNT", constants.CorrectionWord, 0.9},
	{"AMOUNI", "AMOUNT", constants.CorrectionWord, 0.9},
	{"BAIANCE", "BALANCE", constants.CorrectionWord, 0.9},
	{"CHANGF", "CHANGE", constants.CorrectionWord, 0.85},
	{"RECEIPI", "RECEIPT", constants.CorrectionWord, 0.85},
	{"CRED1T", "CREDIT", constants.CorrectionWord, 0.85},
	{"DEB1T", "DEBIT", constants.CorrectionWord, 0.85},
	{"1NVOICE", "INVOICE", constants.CorrectionWord, 0.85},
	{"PAYMEN1", "PAYMENT", constants.CorrectionWord, 0.8},
}

// aggressiveTable holds fixes that can corrupt legitimate text and only
// run under Options.Aggressive.
var aggressiveTable = []tableEntry{
	{"rn", "m", constants.CorrectionCharacter, 0.6},
	{"vv", "w", constants.CorrectionCharacter, 0.6},
	{"VV", "W", constants.CorrectionCharacter, 0.6},
}

// digitWordTable gates 1-for-letter fixes to a whitelist of known words;
// this is the only place ambiguous single-character swaps are allowed.
var digitWordTable = []tableEntry{
	{"TOTA1", "TOTAL", constants.CorrectionCharacter, 0.9},
	{"SUBTOTA1", "SUBTOTAL", constants.CorrectionCharacter, 0.9},
	{"BA1ANCE", "BALANCE", constants.CorrectionCharacter, 0.9},
	{"SA1E", "SALE", constants.CorrectionCharacter, 0.85},
	{"SA1ES", "SALES", constants.CorrectionCharacter, 0.85},
	{"1TEM", "ITEM", constants.CorrectionCharacter, 0.8},
}

// spacedKeywords are repaired when OCR splits letters apart ("T O T A L").
var spacedKeywords = []string{
	"TOTAL", "SUBTOTAL", "TAX", "AMOUNT", "BALANCE",
	"CHANGE", "CASH", "RECEIPT", "INVOICE", "DUE",
}

var spacedKeywordRes = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(spacedKeywords))
	for _, w := range spacedKeywords {
		letters := strings.Split(w, "")
		out = append(out, regexp.MustCompile(`\b`+strings.Join(letters, `[ \t]+`)+`\b`))
	}
	return out
}()

var wordTableRes = compileTable(wordTable, false)
var wordTableBoundaryRes = compileTable(wordTable, true)
var aggressiveTableRes = compileTable(aggressiveTable, false)
var digitWordTableRes = compileTable(digitWordTable, true)

func compileTable(entries []tableEntry, boundary bool) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(entries))
	for _, e := range entries {
		p := regexp.QuoteMeta(e.pattern)
		if boundary {
			p = `(?i)\b` + p + `\b`
		}
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
