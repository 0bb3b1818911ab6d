package structure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receiptwise/extractor/constants"
)

const sampleReceipt = `THE HOME DEPOT
STORE #4512
1234 MARKET ST
LUMBER 2X4 2 @ $4.25 $8.50
PAINT GALLON $28.00
SUBTOTAL $36.50
TAX $3.01
TOTAL $39.51
VISA XXXX1234
THANK YOU FOR SHOPPING`

func TestAnalyze_ReceiptSections(t *testing.T) {
	doc := Analyze(sampleReceipt)

	header := doc.FirstSection(constants.SectionHeader)
	require.NotNil(t, header)
	assert.Equal(t, 0, header.StartLine)
	assert.Contains(t, header.Content, "HOME DEPOT")

	items := doc.FirstSection(constants.SectionItems)
	require.NotNil(t, items)
	assert.Contains(t, items.Content, "LUMBER")
	assert.Contains(t, items.Content, "PAINT")

	totals := doc.FirstSection(constants.SectionTotals)
	require.NotNil(t, totals)
	assert.Contains(t, totals.Content, "TOTAL $39.51")
	assert.NotContains(t, totals.Content, "VISA")

	payment := doc.FirstSection(constants.SectionPayment)
	require.NotNil(t, payment)
	assert.Contains(t, payment.Content, "VISA")

	assert.Equal(t, constants.FormatReceipt, doc.Format)
	assert.Greater(t, doc.Confidence, 0.6)
}

func TestAnalyze_SectionPartition(t *testing.T) {
	inputs := []string{
		sampleReceipt,
		"random text\nwith no receipt\nshape at all",
		"TOTAL $5.00",
		"a\n\nb\n\nc",
		"CORNER CAFE\nCOFFEE $3.50\nMUFFIN $2.75\nTOTAL $6.25",
	}
	for _, in := range inputs {
		doc := Analyze(in)
		lineCount := len(strings.Split(in, "\n"))

		next := 0
		for _, s := range doc.Sections {
			assert.Equal(t, next, s.StartLine, "sections must be adjacent and sorted")
			assert.LessOrEqual(t, s.StartLine, s.EndLine)
			assert.GreaterOrEqual(t, s.Confidence, 0.0)
			assert.LessOrEqual(t, s.Confidence, 1.0)
			next = s.EndLine + 1
		}
		assert.Equal(t, lineCount, next, "sections must cover every line exactly once")
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	doc := Analyze("")
	assert.Empty(t, doc.Sections)
	assert.Equal(t, constants.FormatUnknown, doc.Format)
	assert.Equal(t, 0.0, doc.Confidence)
}

func TestAnalyze_NoiseOnlyInput(t *testing.T) {
	doc := Analyze("^^ ~~ ^^")
	for _, s := range doc.Sections {
		assert.Contains(t,
			[]constants.SectionKind{constants.SectionFooter, constants.SectionUnknown},
			s.Kind,
		)
	}
}

func TestAnalyze_InvoiceWithoutItems(t *testing.T) {
	doc := Analyze("ACME SUPPLY CO\nINVOICE #2231\nAMOUNT DUE $150.00")
	assert.Equal(t, constants.FormatInvoice, doc.Format)
}

func TestAnalyze_HeaderStopsAtMoneyLine(t *testing.T) {
	doc := Analyze("$9.99 SPECIAL\nSOMETHING ELSE")
	assert.Nil(t, doc.FirstSection(constants.SectionHeader))
}

func TestClassifyLayout_Columnar(t *testing.T) {
	lines := []string{
		"MILK 1 2.99",
		"BREAD 2 2.98",
		"EGGS 1 4.50",
	}
	assert.Equal(t, constants.LayoutColumnar, classifyLayout(lines))
}

func TestClassifyLayout_Linear(t *testing.T) {
	lines := []string{"thanks", "see you", "bye"}
	assert.Equal(t, constants.LayoutLinear, classifyLayout(lines))
}
