package structure

import (
	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

// classifyFormat derives the document format from which section kinds
// were detected, checked in rule order.
func classifyFormat(doc entity.DocumentStructure) constants.DocumentFormat {
	hasHeader := doc.FirstSection(constants.SectionHeader) != nil
	items := doc.SectionsOf(constants.SectionItems)
	hasTotals := doc.FirstSection(constants.SectionTotals) != nil

	switch {
	case hasHeader && len(items) > 0 && hasTotals:
		return constants.FormatReceipt
	case hasTotals && (hasHeader || len(items) > 0):
		return constants.FormatInvoice
	case len(items) > 1:
		return constants.FormatStatement
	default:
		return constants.FormatUnknown
	}
}

// classifyLayout looks at line shape ratios: wide-gap amount lines mean
// tabular, many-column lines mean columnar, everything else is linear.
func classifyLayout(lines []string) constants.DocumentLayout {
	nonEmpty, tabular, columnar := 0, 0, 0
	for _, l := range lines {
		if l == "" {
			continue
		}
		nonEmpty++
		if reTabularLine.MatchString(l) {
			tabular++
		}
		if len(reColumnarSplit.Split(l, -1)) >= 3 {
			columnar++
		}
	}
	if nonEmpty == 0 {
		return constants.LayoutLinear
	}
	switch {
	case float64(tabular)/float64(nonEmpty) > 0.3:
		return constants.LayoutTabular
	case float64(columnar)/float64(nonEmpty) > 0.2:
		return constants.LayoutColumnar
	default:
		return constants.LayoutLinear
	}
}
