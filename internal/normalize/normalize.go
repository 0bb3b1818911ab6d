package normalize

import (
	"regexp"
	"strings"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

var (
	reCRLF            = regexp.MustCompile(`\r\n?`)
	reTabs            = regexp.MustCompile(`\t+`)
	reMultiSpace      = regexp.MustCompile(` {2,}`)
	reMultiBlank      = regexp.MustCompile(`\n{3,}`)
	reSpaceBeforeSep  = regexp.MustCompile(`[ \t]+([:;,])`)
	reCurrencySpacing = regexp.MustCompile(`\$[ \t]+(\d)`)
	rePercentSpacing  = regexp.MustCompile(`(\d)[ \t]+%`)
	reDecimalSpacing  = regexp.MustCompile(`(\d)[ \t]+\.[ \t]*(\d{2})\b`)

	reDateDelimShort = regexp.MustCompile(`\b(\d{1,2})[-.](\d{1,2})[-.](\d{2,4})\b`)
	reDateDelimISO   = regexp.MustCompile(`\b(\d{4})[-.](\d{2})[-.](\d{2})\b`)
	reCurrencySuffix = regexp.MustCompile(`\b(\d[\d,]*\.\d{2})[ \t]*\$`)
	reTimeDotted     = regexp.MustCompile(`\b(\d{1,2})\.(\d{2})[ \t]*([AaPp][Mm])\b`)
)

// Normalize cleans raw OCR text through the fixed stage order: substitution
// tables, spacing repair, context-gated digit/letter disambiguation,
// word-boundary table reapplication, format normalization, whitespace
// cleanup. Every substitution from stages 1-5 is recorded in the
// correction log; whitespace cleanup is global and unrecorded.
func Normalize(text string, opts Options) entity.ProcessedText {
	p := entity.ProcessedText{
		Original:    text,
		Corrections: make([]entity.Correction, 0, 8),
	}

	s := text
	if opts.FixCommonOCRErrors {
		s = applyTable(s, wordTable, wordTableRes, &p.Corrections)
		if opts.Aggressive {
			s = applyTable(s, aggressiveTable, aggressiveTableRes, &p.Corrections)
		}
	}
	if opts.NormalizeSpacing {
		s = repairSpacing(s, &p.Corrections)
	}
	s = disambiguateDigits(s, &p.Corrections)
	if opts.FixCommonOCRErrors {
		s = applyBoundaryTable(s, wordTable, wordTableBoundaryRes, &p.Corrections)
	}
	if !opts.PreserveFormatting {
		s = normalizeFormats(s, &p.Corrections)
	}
	s = cleanupWhitespace(s)

	p.Cleaned = s
	p.Lines = splitLines(s)
	p.Quality = scoreQuality(p)
	return p
}

// applyTable runs the generic (boundary-free, case-sensitive) table pass.
func applyTable(s string, entries []tableEntry, res []*regexp.Regexp, log *[]entity.Correction) string {
	for i, e := range entries {
		s = replaceAndRecord(s, res[i], e.replacement, e.kind, e.confidence, log)
	}
	return s
}

// applyBoundaryTable reapplies the table with word-boundary anchoring and
// case folding, catching variants the generic pass missed.
func applyBoundaryTable(s string, entries []tableEntry, res []*regexp.Regexp, log *[]entity.Correction) string {
	for i, e := range entries {
		s = replaceAndRecord(s, res[i], e.replacement, constants.CorrectionWord, e.confidence, log)
	}
	return s
}

func repairSpacing(s string, log *[]entity.Correction) string {
	for i, re := range spacedKeywordRes {
		s = replaceAndRecord(s, re, spacedKeywords[i], constants.CorrectionSpacing, 0.9, log)
	}
	s = replaceExpandAndRecord(s, reCurrencySpacing, "$$${1}", constants.CorrectionSpacing, 0.9, log)
	s = replaceExpandAndRecord(s, rePercentSpacing, "${1}%", constants.CorrectionSpacing, 0.9, log)
	s = replaceExpandAndRecord(s, reDecimalSpacing, "${1}.${2}", constants.CorrectionSpacing, 0.85, log)
	return s
}

func normalizeFormats(s string, log *[]entity.Correction) string {
	s = replaceExpandAndRecord(s, reDateDelimISO, "${1}/${2}/${3}", constants.CorrectionFormat, 0.8, log)
	s = replaceExpandAndRecord(s, reDateDelimShort, "${1}/${2}/${3}", constants.CorrectionFormat, 0.8, log)
	s = replaceExpandAndRecord(s, reCurrencySuffix, "$$${1}", constants.CorrectionFormat, 0.8, log)
	s = replaceExpandAndRecord(s, reTimeDotted, "${1}:${2} ${3}", constants.CorrectionFormat, 0.8, log)
	return s
}

// cleanupWhitespace enforces the cleaned-text invariant: no tabs, no CR,
// no 2+ blank-line runs, no line-edge whitespace.
func cleanupWhitespace(s string) string {
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reSpaceBeforeSep.ReplaceAllString(s, "$1")
	s = reMultiSpace.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// replaceAndRecord substitutes every match with a literal replacement,
// logging one correction per changed match.
func replaceAndRecord(s string, re *regexp.Regexp, repl string, kind constants.CorrectionKind, conf float64, log *[]entity.Correction) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		if m == repl {
			return m
		}
		*log = append(*log, entity.Correction{
			Original:   m,
			Corrected:  repl,
			Kind:       kind,
			Confidence: conf,
		})
		return repl
	})
}

// replaceExpandAndRecord substitutes every match with a template expansion,
// logging one correction per changed match.
func replaceExpandAndRecord(s string, re *regexp.Regexp, template string, kind constants.CorrectionKind, conf float64, log *[]entity.Correction) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		out := re.ReplaceAllString(m, template)
		if out == m {
			return m
		}
		*log = append(*log, entity.Correction{
			Original:   m,
			Corrected:  out,
			Kind:       kind,
			Confidence: conf,
		})
		return out
	})
}
