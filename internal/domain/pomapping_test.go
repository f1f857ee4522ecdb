package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestPOMappingSplit_FallbackRatio(t *testing.T) {
	m := &POMapping{MappedAmount: 1000}

	actual, future := m.Split()
	assert.Equal(t, 600.0, actual, "fallback actual must be exactly 60%")
	assert.Equal(t, 400.0, future, "fallback future must be exactly 40%")
}

func TestPOMappingSplit_WithInvoiceData(t *testing.T) {
	m := &POMapping{
		MappedAmount:  1000,
		InvoicedValue: f64(250),
		LineValue:     f64(500),
	}

	actual, future := m.Split()
	assert.InDelta(t, 500.0, actual, 1e-9)
	assert.InDelta(t, 500.0, future, 1e-9)
}

func TestPOMappingSplit_InvoiceRatioCappedAtOne(t *testing.T) {
	m := &POMapping{
		MappedAmount:  1000,
		InvoicedValue: f64(800),
		LineValue:     f64(500),
	}

	actual, future := m.Split()
	assert.Equal(t, 1000.0, actual)
	assert.Equal(t, 0.0, future)
}

func TestPOMappingSplit_ZeroLineValueFallsBack(t *testing.T) {
	m := &POMapping{
		MappedAmount:  100,
		InvoicedValue: f64(50),
		LineValue:     f64(0),
	}

	actual, future := m.Split()
	assert.Equal(t, 60.0, actual)
	assert.InDelta(t, 40.0, future, 1e-9)
}
