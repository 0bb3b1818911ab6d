package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receiptwise/extractor/internal/entity"
)

func validRecord() entity.ConsolidatedResult {
	total := 39.51
	qty := 2.0
	return entity.ConsolidatedResult{
		Vendor:           "Home Depot",
		Total:            &total,
		Date:             "03/15/2024",
		VendorConfidence: 0.95,
		TotalConfidence:  0.9,
		DateConfidence:   0.8,
		LineItems: []entity.LineItem{
			{Description: "LUMBER 2X4", Quantity: &qty, Confidence: 0.8},
		},
		ExtractionMethods: []string{"structure_aware", "mathematical"},
		OverallConfidence: 0.88,
		ValidationPassed:  true,
	}
}

func TestValidateResult_AcceptsConsolidatedRecord(t *testing.T) {
	b, err := ValidateResult(validRecord())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"vendor":"Home Depot"`)
}

func TestValidateResult_AcceptsSparseRecord(t *testing.T) {
	// no fields extracted at all, only the always-present members
	_, err := ValidateResult(entity.ConsolidatedResult{
		ExtractionMethods: []string{},
	})
	assert.NoError(t, err)
}

func TestValidateJSONAgainstSchema_RejectsOutOfRangeConfidence(t *testing.T) {
	data := []byte(`{
		"vendor_confidence": 1.2,
		"total_confidence": 0,
		"date_confidence": 0,
		"extraction_methods": [],
		"overall_confidence": 0,
		"validation_passed": false
	}`)
	err := ValidateJSONAgainstSchema(BuildResultJSONSchema(), data)
	assert.Error(t, err)
}

func TestValidateJSONAgainstSchema_RejectsUnknownKey(t *testing.T) {
	data := []byte(`{
		"vendor_confidence": 0,
		"total_confidence": 0,
		"date_confidence": 0,
		"extraction_methods": [],
		"overall_confidence": 0,
		"validation_passed": false,
		"surprise": true
	}`)
	err := ValidateJSONAgainstSchema(BuildResultJSONSchema(), data)
	assert.Error(t, err)
}

func TestValidateJSONAgainstSchema_RejectsAmountAtCap(t *testing.T) {
	data := []byte(`{
		"total": 999999,
		"vendor_confidence": 0,
		"total_confidence": 0,
		"date_confidence": 0,
		"extraction_methods": [],
		"overall_confidence": 0,
		"validation_passed": false
	}`)
	err := ValidateJSONAgainstSchema(BuildResultJSONSchema(), data)
	assert.Error(t, err)
}

func TestValidateJSONAgainstSchema_RejectsMissingRequired(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildResultJSONSchema(), []byte(`{"vendor":"Shop"}`))
	assert.Error(t, err)
}
