package structure

import (
	"strings"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

const headerScanLines = 5

// lineMark is the per-line assignment the detection stages reduce over.
// Grouping contiguous equal kinds afterwards guarantees the section
// partition invariant by construction.
type lineMark struct {
	kind constants.SectionKind
	conf float64
}

// Analyze segments normalized text into ordered semantic sections and
// classifies the document format and layout. Detection stages run in a
// fixed order, each consuming only lines no earlier stage claimed.
func Analyze(cleaned string) entity.DocumentStructure {
	if strings.TrimSpace(cleaned) == "" {
		return entity.DocumentStructure{
			Format: constants.FormatUnknown,
			Layout: constants.LayoutLinear,
		}
	}

	lines := strings.Split(cleaned, "\n")
	marks := make([]lineMark, len(lines))

	headerEnd := detectHeader(lines, marks)
	itemsEnd := detectItems(lines, marks, headerEnd+1)
	totalsEnd := detectTotals(lines, marks, max(headerEnd, itemsEnd)+1)
	detectPayment(lines, marks, totalsEnd+1)
	fillFooterUnknown(lines, marks)

	sections := groupSections(lines, marks)
	doc := entity.DocumentStructure{
		Sections:   sections,
		Confidence: meanSectionConfidence(sections),
	}
	doc.Format = classifyFormat(doc)
	doc.Layout = classifyLayout(lines)
	return doc
}

// detectHeader scans at most the first headerScanLines lines for business
// name, store number, address, or phone patterns, stopping early at the
// first monetary line. Returns the last header line index, -1 if none.
func detectHeader(lines []string, marks []lineMark) int {
	limit := min(headerScanLines, len(lines))
	matched := 0
	last := -1
	for i := 0; i < limit; i++ {
		if reMoney.MatchString(lines[i]) {
			break
		}
		hits := 0
		if reBusinessName.MatchString(lines[i]) {
			hits++
		}
		if reStoreNumber.MatchString(lines[i]) {
			hits++
		}
		if reAddress.MatchString(lines[i]) {
			hits++
		}
		if rePhone.MatchString(lines[i]) {
			hits++
		}
		if hits > 0 {
			matched += hits
			last = i
		}
	}
	if last < 0 {
		return -1
	}
	conf := min(0.3*float64(matched), 0.95)
	for i := 0; i <= last; i++ {
		marks[i] = lineMark{constants.SectionHeader, conf}
	}
	return last
}

// detectItems finds the first run of item-shaped lines after the header.
// Blank lines inside the run are tolerated; the run ends at the first
// totals keyword or the first non-item line once an item was seen.
func detectItems(lines []string, marks []lineMark, start int) int {
	first, last, count := -1, -1, 0
scan:
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if reTotalsKeyword.MatchString(line) {
			break
		}
		switch {
		case isItemLine(line):
			if first < 0 {
				first = i
			}
			last = i
			count++
		case line == "" && first >= 0:
			// blank inside the run
		case first >= 0:
			// first non-item line after at least one item ends the run
			break scan
		}
	}
	if count == 0 {
		return start - 1
	}
	conf := min(0.7+0.1*float64(count), 0.95)
	for i := first; i <= last; i++ {
		marks[i] = lineMark{constants.SectionItems, conf}
	}
	return last
}

// detectTotals finds the run of keyword+amount lines after the items
// section; a payment-method keyword ends the run.
func detectTotals(lines []string, marks []lineMark, start int) int {
	first, last, count := -1, -1, 0
	for i := max(start, 0); i < len(lines); i++ {
		line := lines[i]
		if first >= 0 && rePaymentWord.MatchString(line) && !isTotalsLine(line) {
			break
		}
		if isTotalsLine(line) && !rePaymentWord.MatchString(line) {
			if first < 0 {
				first = i
			}
			last = i
			count++
		}
	}
	if count == 0 {
		return start - 1
	}
	conf := min(0.8+0.05*float64(count), 0.95)
	for i := first; i <= last; i++ {
		if marks[i].kind == "" {
			marks[i] = lineMark{constants.SectionTotals, conf}
		}
	}
	return last
}

// detectPayment claims remaining lines carrying payment-method keywords.
func detectPayment(lines []string, marks []lineMark, start int) {
	for i := max(start, 0); i < len(lines); i++ {
		if marks[i].kind == "" && rePaymentWord.MatchString(lines[i]) {
			marks[i] = lineMark{constants.SectionPayment, 0.8}
		}
	}
}

// fillFooterUnknown classifies every unclaimed line: footer when in the
// trailing 20% of the document or matching a footer keyword, else unknown.
func fillFooterUnknown(lines []string, marks []lineMark) {
	footerStart := int(float64(len(lines)) * 0.8)
	for i := range lines {
		if marks[i].kind != "" {
			continue
		}
		if i >= footerStart || reFooterWord.MatchString(lines[i]) {
			marks[i] = lineMark{constants.SectionFooter, 0.6}
		} else {
			marks[i] = lineMark{constants.SectionUnknown, 0.6}
		}
	}
}

// groupSections reduces per-line marks into contiguous sections sorted by
// start line; together they partition the line range exactly once.
func groupSections(lines []string, marks []lineMark) []entity.Section {
	var out []entity.Section
	for i := 0; i < len(lines); {
		j := i
		for j+1 < len(lines) && marks[j+1].kind == marks[i].kind {
			j++
		}
		run := lines[i : j+1]
		out = append(out, entity.Section{
			Kind:       marks[i].kind,
			Content:    strings.Join(run, "\n"),
			Lines:      append([]string(nil), run...),
			StartLine:  i,
			EndLine:    j,
			Confidence: marks[i].conf,
		})
		i = j + 1
	}
	return out
}

func meanSectionConfidence(sections []entity.Section) float64 {
	if len(sections) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sections {
		sum += s.Confidence
	}
	return sum / float64(len(sections))
}
