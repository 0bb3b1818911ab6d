package schema

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for the consolidated extraction record. Downstream consumers
// validate serialized results against it before persisting or matching.
func BuildResultJSONSchema() map[string]any {
	props := map[string]any{
		"vendor":             map[string]any{"type": "string", "minLength": 1},
		"total":              amountProp(),
		"subtotal":           amountProp(),
		"tax":                amountProp(),
		"date":               map[string]any{"type": "string", "minLength": 6},
		"line_items":         map[string]any{"type": "array", "items": lineItemProp()},
		"vendor_confidence":  confidenceProp(),
		"total_confidence":   confidenceProp(),
		"date_confidence":    confidenceProp(),
		"extraction_methods": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"overall_confidence": confidenceProp(),
		"validation_passed":  map[string]any{"type": "boolean"},
	}
	required := []string{
		"vendor_confidence", "total_confidence", "date_confidence",
		"extraction_methods", "overall_confidence", "validation_passed",
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func amountProp() map[string]any {
	return map[string]any{
		"type":             "number",
		"exclusiveMinimum": 0.0,
		"exclusiveMaximum": 999999.0,
	}
}

func confidenceProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}

func lineItemProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"quantity":    map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"unit_price":  amountProp(),
			"total_price": amountProp(),
			"confidence":  confidenceProp(),
		},
		"required": []string{"description", "confidence"},
	}
}
