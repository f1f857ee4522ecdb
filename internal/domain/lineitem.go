package domain

import (
	"fmt"
	"time"
)

// Classification is the 4-level cost breakdown taxonomy of a line item.
type Classification struct {
	BusinessLine string
	CostLine     string
	SpendType    string
	SubCategory  string
}

// Validate checks that every classification level is populated.
func (c Classification) Validate() []error {
	var errs []error
	if c.BusinessLine == "" {
		errs = append(errs, fmt.Errorf("business_line is required"))
	}
	if c.CostLine == "" {
		errs = append(errs, fmt.Errorf("cost_line is required"))
	}
	if c.SpendType == "" {
		errs = append(errs, fmt.Errorf("spend_type is required"))
	}
	if c.SubCategory == "" {
		errs = append(errs, fmt.Errorf("sub_category is required"))
	}
	return errs
}

// Level returns the value of the named classification level.
func (c Classification) Level(level ClassLevel) string {
	switch level {
	case LevelBusinessLine:
		return c.BusinessLine
	case LevelCostLine:
		return c.CostLine
	case LevelSpendType:
		return c.SpendType
	case LevelSubCategory:
		return c.SubCategory
	default:
		return ""
	}
}

// String renders the classification path as a slash-joined label.
func (c Classification) String() string {
	return c.BusinessLine + "/" + c.CostLine + "/" + c.SpendType + "/" + c.SubCategory
}

// LineItem is a single classified cost-breakdown row. BudgetCost is the
// baseline value; forecast values never overwrite it and live in
// ForecastEntry rows keyed by version.
type LineItem struct {
	ID             string
	ProjectID      string
	Classification Classification
	BudgetCost     float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the fields required before a line item can be persisted.
func (li *LineItem) Validate() []error {
	errs := li.Classification.Validate()
	if li.BudgetCost <= 0 {
		errs = append(errs, fmt.Errorf("budget cost must be positive, got %v", li.BudgetCost))
	}
	return errs
}
