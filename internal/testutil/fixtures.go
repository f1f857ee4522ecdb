package testutil

import (
	"time"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = d
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithBusinessLine(bl string) ProjectOption {
	return func(p *domain.Project) {
		p.BusinessLine = bl
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:           uuid.New().String(),
		Name:         name,
		BusinessLine: "Operations",
		StartDate:    now.AddDate(0, -2, 0),
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LineItem options
type LineItemOption func(*domain.LineItem)

func WithBudgetCost(v float64) LineItemOption {
	return func(li *domain.LineItem) {
		li.BudgetCost = v
	}
}

func WithClassification(c domain.Classification) LineItemOption {
	return func(li *domain.LineItem) {
		li.Classification = c
	}
}

func WithCostLine(cl string) LineItemOption {
	return func(li *domain.LineItem) {
		li.Classification.CostLine = cl
	}
}

func NewTestLineItem(projectID, subCategory string, opts ...LineItemOption) *domain.LineItem {
	now := time.Now().UTC()
	li := &domain.LineItem{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Classification: domain.Classification{
			BusinessLine: "Operations",
			CostLine:     "IT",
			SpendType:    "Services",
			SubCategory:  subCategory,
		},
		BudgetCost: 1000,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(li)
	}
	return li
}

// Version options
type VersionOption func(*domain.Version)

func WithReason(r string) VersionOption {
	return func(v *domain.Version) {
		v.Reason = r
	}
}

func WithCreatedBy(u string) VersionOption {
	return func(v *domain.Version) {
		v.CreatedBy = u
	}
}

func NewTestVersion(projectID string, number int, opts ...VersionOption) *domain.Version {
	v := &domain.Version{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		VersionNumber: number,
		Reason:        "quarterly reforecast",
		CreatedBy:     "tester",
		CreatedAt:     time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// POMapping options
type POMappingOption func(*domain.POMapping)

func WithInvoiceData(invoiced, lineValue float64) POMappingOption {
	return func(m *domain.POMapping) {
		m.InvoicedValue = &invoiced
		m.LineValue = &lineValue
	}
}

func WithPONumber(n string) POMappingOption {
	return func(m *domain.POMapping) {
		m.PONumber = n
	}
}

func NewTestPOMapping(projectID, lineItemID string, amount float64, opts ...POMappingOption) *domain.POMapping {
	m := &domain.POMapping{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		LineItemID:   lineItemID,
		PONumber:     "PO-1001",
		Description:  "test purchase order",
		MappedAmount: amount,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
