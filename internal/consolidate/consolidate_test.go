package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

func amount(v, conf float64) *entity.AmountField {
	return &entity.AmountField{Value: v, Confidence: conf, Method: "test"}
}

func TestConsolidate_HigherConfidenceWins(t *testing.T) {
	results := []entity.ExtractionResult{
		{
			Strategy:   constants.StrategyHeuristic,
			Amounts:    &entity.AmountSet{Total: amount(10.00, 0.6)},
			Confidence: 0.6,
		},
		{
			Strategy:   constants.StrategyMathematical,
			Amounts:    &entity.AmountSet{Total: amount(21.60, 0.95)},
			Confidence: 0.95,
		},
	}

	out := Consolidate(results)
	require.NotNil(t, out.Total)
	assert.InDelta(t, 21.60, *out.Total, 0.001)
	assert.InDelta(t, 0.95, out.TotalConfidence, 0.001)
}

func TestConsolidate_FieldsMixAcrossStrategies(t *testing.T) {
	results := []entity.ExtractionResult{
		{
			Strategy: constants.StrategyStructureAware,
			Vendor:   &entity.VendorField{Name: "Home Depot", Confidence: 0.95},
			// no total here
			Confidence: 0.95,
		},
		{
			Strategy:   constants.StrategyMathematical,
			Amounts:    &entity.AmountSet{Total: amount(39.51, 0.9), Subtotal: amount(36.50, 0.87), Tax: amount(3.01, 0.85)},
			Confidence: 0.9,
		},
	}

	out := Consolidate(results)
	assert.Equal(t, "Home Depot", out.Vendor)
	require.NotNil(t, out.Total)
	assert.InDelta(t, 39.51, *out.Total, 0.001)
	require.NotNil(t, out.Subtotal)
	assert.InDelta(t, 36.50, *out.Subtotal, 0.001)
	require.NotNil(t, out.Tax)
	assert.InDelta(t, 3.01, *out.Tax, 0.001)
}

func TestConsolidate_EmptyInput(t *testing.T) {
	out := Consolidate(nil)

	assert.Empty(t, out.Vendor)
	assert.Nil(t, out.Total)
	assert.Nil(t, out.Subtotal)
	assert.Nil(t, out.Tax)
	assert.NotNil(t, out.ExtractionMethods)
	assert.Empty(t, out.ExtractionMethods)
	assert.Equal(t, 0.0, out.OverallConfidence)
	assert.False(t, out.ValidationPassed)
}

func TestConsolidate_MethodsInConfidenceOrder(t *testing.T) {
	results := []entity.ExtractionResult{
		{
			Strategy:   constants.StrategyHeuristic,
			Vendor:     &entity.VendorField{Name: "Shop", Confidence: 0.4},
			Confidence: 0.3,
		},
		{
			Strategy:   constants.StrategyContextual,
			Amounts:    &entity.AmountSet{Total: amount(5.00, 0.9)},
			Confidence: 0.9,
		},
		{
			Strategy:   constants.StrategyStructureAware,
			Vendor:     &entity.VendorField{Name: "Home Depot", Confidence: 0.95},
			Confidence: 0.92,
		},
	}

	out := Consolidate(results)
	assert.Equal(t, []string{
		constants.StrategyStructureAware,
		constants.StrategyContextual,
		constants.StrategyHeuristic,
	}, out.ExtractionMethods)
}

func TestConsolidate_ValidationFlag(t *testing.T) {
	cases := []struct {
		name       string
		vendorConf float64
		totalConf  float64
		want       bool
	}{
		{"both above", 0.95, 0.9, true},
		{"both at threshold", 0.5, 0.5, true},
		{"vendor too low", 0.4, 0.9, false},
		{"total too low", 0.9, 0.4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Consolidate([]entity.ExtractionResult{{
				Strategy:   constants.StrategyContextual,
				Vendor:     &entity.VendorField{Name: "Shop", Confidence: tc.vendorConf},
				Amounts:    &entity.AmountSet{Total: amount(9.99, tc.totalConf)},
				Confidence: 0.8,
			}})
			assert.Equal(t, tc.want, out.ValidationPassed)
		})
	}
}

func TestConsolidate_OverallConfidenceMean(t *testing.T) {
	out := Consolidate([]entity.ExtractionResult{{
		Strategy:   constants.StrategyContextual,
		Vendor:     &entity.VendorField{Name: "Shop", Confidence: 0.8},
		Amounts:    &entity.AmountSet{Total: amount(9.99, 0.9)},
		Date:       &entity.DateField{Value: "03/15/2024", Confidence: 0.7},
		Confidence: 0.8,
	}})
	assert.InDelta(t, 0.8, out.OverallConfidence, 0.001)
}

func TestConsolidate_StableOrderBreaksTies(t *testing.T) {
	results := []entity.ExtractionResult{
		{
			Strategy:   constants.StrategyStructureAware,
			Vendor:     &entity.VendorField{Name: "First", Confidence: 0.7},
			Confidence: 0.7,
		},
		{
			Strategy:   constants.StrategyContextual,
			Vendor:     &entity.VendorField{Name: "Second", Confidence: 0.7},
			Confidence: 0.7,
		},
	}
	out := Consolidate(results)
	assert.Equal(t, "First", out.Vendor)
}
