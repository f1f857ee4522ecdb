package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/google/uuid"
)

// ConvertedBaseline holds the domain objects produced from an import schema.
type ConvertedBaseline struct {
	LineItems  []*domain.LineItem
	POMappings []*domain.POMapping
}

// Convert transforms a validated BaselineSchema into domain objects ready
// for persistence. Call ValidateBaselineSchema first; Convert assumes the
// schema is valid.
func Convert(projectID string, schema *BaselineSchema) (*ConvertedBaseline, error) {
	now := time.Now().UTC()

	refMap := make(map[string]string) // ref -> UUID
	items := make([]*domain.LineItem, 0, len(schema.LineItems))
	for _, imp := range schema.LineItems {
		id := uuid.New().String()
		refMap[imp.Ref] = id
		items = append(items, &domain.LineItem{
			ID:        id,
			ProjectID: projectID,
			Classification: domain.Classification{
				BusinessLine: imp.BusinessLine,
				CostLine:     imp.CostLine,
				SpendType:    imp.SpendType,
				SubCategory:  imp.SubCategory,
			},
			BudgetCost: imp.BudgetCost,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	mappings := make([]*domain.POMapping, 0, len(schema.POMappings))
	for _, imp := range schema.POMappings {
		itemID, ok := refMap[imp.LineItemRef]
		if !ok {
			return nil, fmt.Errorf("po mapping references unknown line item ref %q", imp.LineItemRef)
		}
		mappings = append(mappings, &domain.POMapping{
			ID:            uuid.New().String(),
			ProjectID:     projectID,
			LineItemID:    itemID,
			PONumber:      imp.PONumber,
			Description:   imp.Description,
			MappedAmount:  imp.MappedAmount,
			InvoicedValue: imp.InvoicedValue,
			LineValue:     imp.LineValue,
			CreatedAt:     now,
		})
	}

	return &ConvertedBaseline{LineItems: items, POMappings: mappings}, nil
}
