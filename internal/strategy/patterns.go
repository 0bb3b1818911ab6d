package strategy

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

var (
	reMoneyToken = regexp.MustCompile(`\$ ?\d{1,6}(?:,\d{3})*(?:\.\d{2})?|\b\d{1,3}(?:,\d{3})*\.\d{2}\b`)

	reSubtotalLine = regexp.MustCompile(`(?i)\bsub ?-? ?total\b`)
	reTaxLine      = regexp.MustCompile(`(?i)\b(sales )?(tax|hst|gst|vat)\b`)
	reTotalLine    = regexp.MustCompile(`(?i)\b(grand )?total\b`)
	reDueLine      = regexp.MustCompile(`(?i)\b(amount due|balance due|balance)\b`)

	reDateSlash = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	reDateISO   = regexp.MustCompile(`\b\d{4}/\d{2}/\d{2}\b`)
	reDateMonth = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.? \d{1,2},? \d{4}\b`)
)

// parseMoney converts one monetary token to a value. Tokens at or above
// the amount cap, or non-positive, are rejected as OCR noise.
func parseMoney(tok string) (float64, bool) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tok), "$"))
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 || v >= constants.MaxAmount {
		return 0, false
	}
	return v, true
}

// moneyCents extracts every monetary token as integer cents, preserving
// order and duplicates: repeated values are legitimate (subtotal and tax
// can be equal). Integer cents keep the subtotal+tax=total check exact.
func moneyCents(text string) []int64 {
	var out []int64
	for _, tok := range reMoneyToken.FindAllString(text, -1) {
		v, ok := parseMoney(tok)
		if !ok {
			continue
		}
		out = append(out, int64(v*100+0.5))
	}
	return out
}

// amountOnLine returns the last monetary value on a line; receipts print
// the amount after the label.
func amountOnLine(line string) (float64, bool) {
	toks := reMoneyToken.FindAllString(line, -1)
	for i := len(toks) - 1; i >= 0; i-- {
		if v, ok := parseMoney(toks[i]); ok {
			return v, true
		}
	}
	return 0, false
}

// findDate returns the first recognized date-like token across the lines.
func findDate(lines []string, method string) *entity.DateField {
	for _, line := range lines {
		if m := reDateISO.FindString(line); m != "" {
			return &entity.DateField{Value: m, Confidence: 0.8, Method: method, Format: "YYYY/MM/DD"}
		}
		if m := reDateSlash.FindString(line); m != "" {
			return &entity.DateField{Value: m, Confidence: 0.8, Method: method, Format: "MM/DD/YYYY"}
		}
		if m := reDateMonth.FindString(line); m != "" {
			return &entity.DateField{Value: m, Confidence: 0.8, Method: method, Format: "Month DD, YYYY"}
		}
	}
	return nil
}

func centsToValue(c int64) float64 {
	return float64(c) / 100
}
