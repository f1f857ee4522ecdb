package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// BaselineSchema is the top-level JSON structure for baseline import: the
// budget line items of a project, optionally with PO mappings already
// committed against them.
type BaselineSchema struct {
	LineItems  []LineItemImport  `json:"line_items"`
	POMappings []POMappingImport `json:"po_mappings,omitempty"`
}

// LineItemImport defines a budget line item in the import file.
type LineItemImport struct {
	Ref          string  `json:"ref"`
	BusinessLine string  `json:"business_line"`
	CostLine     string  `json:"cost_line"`
	SpendType    string  `json:"spend_type"`
	SubCategory  string  `json:"sub_category"`
	BudgetCost   float64 `json:"budget_cost"`
}

// POMappingImport defines a PO mapping in the import file. LineItemRef
// points at a line item's ref within the same file.
type POMappingImport struct {
	LineItemRef   string   `json:"line_item_ref"`
	PONumber      string   `json:"po_number"`
	Description   string   `json:"description,omitempty"`
	MappedAmount  float64  `json:"mapped_amount"`
	InvoicedValue *float64 `json:"invoiced_value,omitempty"`
	LineValue     *float64 `json:"line_value,omitempty"`
}

// LoadBaselineSchema reads and parses a baseline import JSON file.
func LoadBaselineSchema(path string) (*BaselineSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema BaselineSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing baseline import file: %w", err)
	}
	return &schema, nil
}
