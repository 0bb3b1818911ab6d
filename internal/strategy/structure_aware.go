package strategy

import (
	"regexp"
	"strings"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

// structureAware reads fields straight out of detected sections. Highest
// priority: when segmentation worked, section-scoped patterns are the most
// reliable signal available.
type structureAware struct {
	vendors *VendorIndex
}

func (s *structureAware) Name() string  { return constants.StrategyStructureAware }
func (s *structureAware) Priority() int { return 90 }

func (s *structureAware) IsApplicable(doc entity.DocumentStructure, _ entity.ProcessedText) bool {
	return doc.Confidence > 0.6 && len(doc.Sections) >= 2
}

func (s *structureAware) Extract(doc entity.DocumentStructure, _ entity.ProcessedText) entity.ExtractionResult {
	res := entity.ExtractionResult{Strategy: s.Name()}

	if totals := doc.FirstSection(constants.SectionTotals); totals != nil {
		res.Amounts = extractSectionAmounts(totals.Lines)
	}
	if header := doc.FirstSection(constants.SectionHeader); header != nil {
		res.Vendor = s.extractVendor(header.Lines)
	}
	if items := doc.FirstSection(constants.SectionItems); items != nil {
		res.LineItems = extractLineItems(items.Lines)
	}

	scoreResult(&res)
	return res
}

// extractSectionAmounts applies section-scoped label patterns line by
// line; within the totals section the labels are unambiguous.
func extractSectionAmounts(lines []string) *entity.AmountSet {
	amounts := &entity.AmountSet{}
	for _, line := range lines {
		v, ok := amountOnLine(line)
		if !ok {
			continue
		}
		switch {
		case reSubtotalLine.MatchString(line):
			if amounts.Subtotal == nil {
				amounts.Subtotal = &entity.AmountField{Value: v, Confidence: 0.9, Method: "section_label"}
			}
		case reTaxLine.MatchString(line):
			if amounts.Tax == nil {
				amounts.Tax = &entity.AmountField{Value: v, Confidence: 0.88, Method: "section_label"}
			}
		case reTotalLine.MatchString(line):
			if amounts.Total == nil {
				amounts.Total = &entity.AmountField{Value: v, Confidence: 0.95, Method: "section_label"}
			}
		case reDueLine.MatchString(line):
			if amounts.Total == nil {
				amounts.Total = &entity.AmountField{Value: v, Confidence: 0.88, Method: "section_label"}
			}
		}
	}
	if amounts.Empty() {
		return nil
	}
	return amounts
}

var reAllCapsLine = regexp.MustCompile(`^[A-Z][A-Z&'. -]{2,}$`)

func (s *structureAware) extractVendor(lines []string) *entity.VendorField {
	for _, line := range lines {
		if name, ok := s.vendors.Match(line); ok {
			return &entity.VendorField{
				Name:       name,
				Confidence: 0.95,
				Method:     "known_vendor",
				Raw:        line,
			}
		}
	}
	for _, line := range lines {
		if reAllCapsLine.MatchString(strings.TrimSpace(line)) {
			return &entity.VendorField{
				Name:       titleCase(line),
				Confidence: 0.6,
				Method:     "header_caps",
				Raw:        line,
			}
		}
	}
	return nil
}

var (
	reItemQtyUnit = regexp.MustCompile(`^(.{2,60}?) (\d{1,3}(?:\.\d+)?) ?(?:@|[xX]) ?\$?(\d[\d,]*\.\d{2}) ?\$?(\d[\d,]*\.\d{2})?$`)
	reItemTotal   = regexp.MustCompile(`^(.{2,60}?) +\$?(\d[\d,]*\.\d{2})$`)
)

// extractLineItems parses item rows: description + quantity + prices gets
// the higher confidence, description + bare price the lower one.
func extractLineItems(lines []string) []entity.LineItem {
	var out []entity.LineItem
	for _, line := range lines {
		if m := reItemQtyUnit.FindStringSubmatch(line); m != nil {
			item := entity.LineItem{Description: strings.TrimSpace(m[1]), Confidence: 0.8}
			if qty, ok := parseMoney(m[2]); ok {
				item.Quantity = &qty
			}
			if unit, ok := parseMoney(m[3]); ok {
				item.UnitPrice = &unit
			}
			if m[4] != "" {
				if tot, ok := parseMoney(m[4]); ok {
					item.TotalPrice = &tot
				}
			} else if item.Quantity != nil && item.UnitPrice != nil {
				tot := *item.Quantity * *item.UnitPrice
				item.TotalPrice = &tot
			}
			out = append(out, item)
			continue
		}
		if m := reItemTotal.FindStringSubmatch(line); m != nil {
			item := entity.LineItem{Description: strings.TrimSpace(m[1]), Confidence: 0.7}
			if tot, ok := parseMoney(m[2]); ok {
				item.TotalPrice = &tot
			}
			out = append(out, item)
		}
	}
	return out
}

// titleCase renders an all-caps OCR line as a display name.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
