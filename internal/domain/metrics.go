package domain

// CategoryMetric is the per-cost-line slice of the reconciliation output.
// Mappings whose line item is excluded from the current snapshot are
// counted in the project totals but not here.
type CategoryMetric struct {
	Category    string
	Budget      float64
	ActualSpend float64
	OpenOrders  float64
}

// Metrics is the reconciliation output: budget/forecast totals merged
// with PO actuals into variance, utilization and P&L split figures.
type Metrics struct {
	TotalBudget     float64
	ActualSpend     float64
	Variance        float64
	VariancePercent float64
	Utilization     float64
	InvoicedAmount  float64
	OpenOrders      float64
	BurnRate        float64
	POCount         int
	LineItemCount   int
	Categories      []CategoryMetric
}
