package structure

import "regexp"

var (
	reMoney = regexp.MustCompile(`\$ ?\d[\d,]*(?:\.\d{1,2})?|\b\d[\d,]*\.\d{2}\b`)

	reBusinessName = regexp.MustCompile(`^[A-Z][A-Z&'. -]{2,39}$`)
	reStoreNumber  = regexp.MustCompile(`(?i)\bstore\s*#?\s*\d+|\bbranch\s*#?\s*\d+`)
	reAddress      = regexp.MustCompile(`(?i)\b\d+ \w+.*\b(st|ave|rd|blvd|dr|ln|hwy|street|avenue|road|boulevard|drive|lane|highway|suite|ste)\b`)
	rePhone        = regexp.MustCompile(`\(\d{3}\) ?\d{3}[- ]\d{4}|\b\d{3}-\d{3}-\d{4}\b`)

	reItemQtyPrice = regexp.MustCompile(`^(.{2,60}?) (\d{1,3}(?:\.\d+)?) ?(?:@|[xX])? ?\$?\d[\d,]*\.\d{2}\b`)
	reItemPrice    = regexp.MustCompile(`^(.{2,60}?) +\$?\d[\d,]*\.\d{2}$`)

	reTotalsKeyword = regexp.MustCompile(`(?i)\b(sub ?-? ?total|total|tax|amount due|balance|payment)\b`)
	rePaymentWord   = regexp.MustCompile(`(?i)\b(visa|mastercard|amex|american express|discover|debit|credit card|cash|change due|change|approval|auth(orization)? code|card ?#|tender|xxxx)\b`)
	reFooterWord    = regexp.MustCompile(`(?i)\b(thank you|thanks|return policy|returns|survey|visit us|come again|customer copy|www\.|\.com)\b`)

	reColumnarSplit = regexp.MustCompile(`\s+`)
	reTabularLine   = regexp.MustCompile(`\S\s{3,}\$?\d[\d,]*\.?\d*$`)
)

func isItemLine(line string) bool {
	if line == "" || reTotalsKeyword.MatchString(line) {
		return false
	}
	if reItemQtyPrice.MatchString(line) || reItemPrice.MatchString(line) {
		return true
	}
	return len(reMoney.FindAllString(line, -1)) >= 2
}

func isTotalsLine(line string) bool {
	return reTotalsKeyword.MatchString(line) && reMoney.MatchString(line)
}
