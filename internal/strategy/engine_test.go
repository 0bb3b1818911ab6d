package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
	"github.com/receiptwise/extractor/internal/normalize"
	"github.com/receiptwise/extractor/internal/structure"
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

func runEngine(t *testing.T, raw string) []entity.ExtractionResult {
	t.Helper()
	text := normalize.Normalize(raw, normalize.DefaultOptions())
	doc := structure.Analyze(text.Cleaned)
	results, err := NewEngine(nil, nil).Run(context.Background(), doc, text)
	require.NoError(t, err)
	return results
}

func findResult(results []entity.ExtractionResult, name string) *entity.ExtractionResult {
	for i := range results {
		if results[i].Strategy == name {
			return &results[i]
		}
	}
	return nil
}

func TestEngine_KnownVendorFromHeader(t *testing.T) {
	results := runEngine(t, sampleReceipt)

	sa := findResult(results, constants.StrategyStructureAware)
	require.NotNil(t, sa, "structure-aware strategy must apply to a clean receipt")
	require.NotNil(t, sa.Vendor)
	assert.Equal(t, "Home Depot", sa.Vendor.Name)
	assert.GreaterOrEqual(t, sa.Vendor.Confidence, 0.9)
	assert.Equal(t, "known_vendor", sa.Vendor.Method)
}

func TestEngine_StructureAwareAmountsAndItems(t *testing.T) {
	results := runEngine(t, sampleReceipt)

	sa := findResult(results, constants.StrategyStructureAware)
	require.NotNil(t, sa)
	require.NotNil(t, sa.Amounts)
	require.NotNil(t, sa.Amounts.Total)
	assert.InDelta(t, 39.51, sa.Amounts.Total.Value, 0.001)
	assert.InDelta(t, 36.50, sa.Amounts.Subtotal.Value, 0.001)
	assert.InDelta(t, 3.01, sa.Amounts.Tax.Value, 0.001)

	require.Len(t, sa.LineItems, 2)
	assert.Equal(t, "LUMBER 2X4", sa.LineItems[0].Description)
	require.NotNil(t, sa.LineItems[0].Quantity)
	assert.InDelta(t, 2, *sa.LineItems[0].Quantity, 0.001)
	require.NotNil(t, sa.LineItems[0].UnitPrice)
	assert.InDelta(t, 4.25, *sa.LineItems[0].UnitPrice, 0.001)
	require.NotNil(t, sa.LineItems[0].TotalPrice)
	assert.InDelta(t, 8.50, *sa.LineItems[0].TotalPrice, 0.001)
	assert.Equal(t, "PAINT GALLON", sa.LineItems[1].Description)
}

func TestEngine_AllConfidencesBounded(t *testing.T) {
	inputs := []string{
		sampleReceipt,
		"TOTAI : $12.3O",
		"random words only",
		"$1.00 $2.00 $3.00 $4.00 $5.00",
	}
	for _, in := range inputs {
		for _, r := range runEngine(t, in) {
			assert.GreaterOrEqual(t, r.Confidence, 0.0)
			assert.LessOrEqual(t, r.Confidence, 1.0)
			if r.Vendor != nil {
				assert.GreaterOrEqual(t, r.Vendor.Confidence, 0.0)
				assert.LessOrEqual(t, r.Vendor.Confidence, 1.0)
			}
			if r.Amounts != nil && r.Amounts.Total != nil {
				assert.GreaterOrEqual(t, r.Amounts.Total.Confidence, 0.0)
				assert.LessOrEqual(t, r.Amounts.Total.Confidence, 1.0)
			}
		}
	}
}

func TestEngine_ResultsClearConfidenceFloor(t *testing.T) {
	for _, r := range runEngine(t, sampleReceipt) {
		assert.Greater(t, r.Confidence, constants.MinStrategyConfidence)
		assert.True(t, r.HasAny())
	}
}

func TestContextual_ReadsCorrectedTotal(t *testing.T) {
	text := normalize.Normalize("TOTAI : $12.3O", normalize.DefaultOptions())
	c := &contextual{vendors: DefaultVendors()}
	res := c.Extract(entity.DocumentStructure{}, text)

	require.NotNil(t, res.Amounts)
	require.NotNil(t, res.Amounts.Total)
	assert.InDelta(t, 12.30, res.Amounts.Total.Value, 0.001)
}

func TestContextual_FindsDate(t *testing.T) {
	text := normalize.Normalize("WALMART\n03/15/2024 14:21\nTOTAL $9.99", normalize.DefaultOptions())
	c := &contextual{vendors: DefaultVendors()}
	res := c.Extract(entity.DocumentStructure{}, text)

	require.NotNil(t, res.Date)
	assert.Equal(t, "03/15/2024", res.Date.Value)
	assert.Equal(t, "MM/DD/YYYY", res.Date.Format)
	require.NotNil(t, res.Vendor)
	assert.Equal(t, "Walmart", res.Vendor.Name)
}

func TestHeuristic_ScaledConfidence(t *testing.T) {
	text := normalize.Normalize("CORNER STORE\nTOTAL $10.00", normalize.DefaultOptions())
	h := &heuristic{}
	res := h.Extract(entity.DocumentStructure{}, text)

	require.NotNil(t, res.Vendor)
	require.NotNil(t, res.Amounts)
	// mean(0.4, 0.5) scaled by 0.7, floored at 0.3
	assert.InDelta(t, 0.315, res.Confidence, 0.001)
}

func TestHeuristic_NothingToExtract(t *testing.T) {
	text := normalize.Normalize("^^ ~~ ^^", normalize.DefaultOptions())
	res := (&heuristic{}).Extract(entity.DocumentStructure{}, text)
	assert.False(t, res.HasAny())
	assert.Equal(t, 0.0, res.Confidence)
}

func TestVendorIndex_FuzzyMatch(t *testing.T) {
	v := DefaultVendors()

	name, ok := v.Match("THE HOME DEPOT #4512")
	require.True(t, ok)
	assert.Equal(t, "Home Depot", name)

	name, ok = v.Match("W A L - M A R T")
	require.True(t, ok)
	assert.Equal(t, "Walmart", name)

	_, ok = v.Match("UNKNOWN LOCAL SHOP")
	assert.False(t, ok)
}
