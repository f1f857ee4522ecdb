// Package reconcile merges purchase-order actuals against a resolved
// budget/forecast snapshot into variance, utilization and P&L split
// metrics. All functions are pure over their inputs.
package reconcile

import (
	"sort"
	"time"

	"github.com/alexanderramin/costline/internal/domain"
)

// Input is everything Compute needs. Snapshot is the resolved value set
// for the version under reconciliation (forecast if available, baseline
// otherwise); Mappings is the externally-owned PO mapping set.
type Input struct {
	Project  domain.Project
	Snapshot *domain.Snapshot
	Mappings []*domain.POMapping
	Now      time.Time
}

// Compute produces the reconciliation metrics.
//
// A mapping whose line item is missing from the snapshot (an excluded
// forecast line) still counts toward the project totals: committed spend
// against a removed line is still real spend. It is only left out of the
// per-category breakdown, which follows the snapshot's structure.
func Compute(in Input) *domain.Metrics {
	m := &domain.Metrics{
		TotalBudget:   in.Snapshot.Total(),
		LineItemCount: len(in.Snapshot.Lines),
		POCount:       len(in.Mappings),
	}

	inSnapshot := make(map[string]bool, len(in.Snapshot.Lines))
	byCategory := make(map[string]*domain.CategoryMetric)
	var order []string

	categoryOf := func(li domain.LineItem) *domain.CategoryMetric {
		key := li.Classification.CostLine
		agg, ok := byCategory[key]
		if !ok {
			agg = &domain.CategoryMetric{Category: key}
			byCategory[key] = agg
			order = append(order, key)
		}
		return agg
	}

	for _, l := range in.Snapshot.Lines {
		inSnapshot[l.Item.ID] = true
		categoryOf(l.Item).Budget += l.Value
	}

	for _, mapping := range in.Mappings {
		actual, future := mapping.Split()
		m.ActualSpend += actual
		m.OpenOrders += future
		if mapping.HasInvoiceData() {
			m.InvoicedAmount += actual
		}

		if !inSnapshot[mapping.LineItemID] {
			continue
		}
		if li, ok := in.Snapshot.ItemByID(mapping.LineItemID); ok {
			agg := categoryOf(li)
			agg.ActualSpend += actual
			agg.OpenOrders += future
		}
	}

	m.Variance = m.TotalBudget - m.ActualSpend
	if m.TotalBudget != 0 {
		m.VariancePercent = m.Variance / m.TotalBudget * 100
		m.Utilization = m.ActualSpend / m.TotalBudget * 100
	}

	m.BurnRate = m.ActualSpend / float64(in.Project.MonthsElapsed(in.Now))

	sort.Strings(order)
	for _, key := range order {
		m.Categories = append(m.Categories, *byCategory[key])
	}
	return m
}
