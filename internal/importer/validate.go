package importer

import "fmt"

// ValidateBaselineSchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateBaselineSchema(schema *BaselineSchema) []error {
	var errs []error

	if len(schema.LineItems) == 0 {
		errs = append(errs, fmt.Errorf("at least one line item is required"))
	}

	refs := make(map[string]bool)
	for i, li := range schema.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		if li.Ref == "" {
			errs = append(errs, fmt.Errorf("%s: ref is required", prefix))
		} else if refs[li.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", prefix, li.Ref))
		} else {
			refs[li.Ref] = true
		}
		if li.BusinessLine == "" {
			errs = append(errs, fmt.Errorf("%s: business_line is required", prefix))
		}
		if li.CostLine == "" {
			errs = append(errs, fmt.Errorf("%s: cost_line is required", prefix))
		}
		if li.SpendType == "" {
			errs = append(errs, fmt.Errorf("%s: spend_type is required", prefix))
		}
		if li.SubCategory == "" {
			errs = append(errs, fmt.Errorf("%s: sub_category is required", prefix))
		}
		if li.BudgetCost <= 0 {
			errs = append(errs, fmt.Errorf("%s: budget_cost must be positive, got %v", prefix, li.BudgetCost))
		}
	}

	for i, m := range schema.POMappings {
		prefix := fmt.Sprintf("po_mappings[%d]", i)
		if m.LineItemRef == "" {
			errs = append(errs, fmt.Errorf("%s: line_item_ref is required", prefix))
		} else if !refs[m.LineItemRef] {
			errs = append(errs, fmt.Errorf("%s: unknown line_item_ref %q", prefix, m.LineItemRef))
		}
		if m.PONumber == "" {
			errs = append(errs, fmt.Errorf("%s: po_number is required", prefix))
		}
		if m.MappedAmount <= 0 {
			errs = append(errs, fmt.Errorf("%s: mapped_amount must be positive, got %v", prefix, m.MappedAmount))
		}
		if (m.InvoicedValue == nil) != (m.LineValue == nil) {
			errs = append(errs, fmt.Errorf("%s: invoiced_value and line_value must be provided together", prefix))
		}
	}

	return errs
}
