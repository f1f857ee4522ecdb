package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsDomainObjects(t *testing.T) {
	converted, err := Convert("p1", validSchema())
	require.NoError(t, err)
	require.Len(t, converted.LineItems, 2)
	require.Len(t, converted.POMappings, 1)

	li := converted.LineItems[0]
	assert.NotEmpty(t, li.ID)
	assert.Equal(t, "p1", li.ProjectID)
	assert.Equal(t, "Laptops", li.Classification.SubCategory)
	assert.Equal(t, 1000.0, li.BudgetCost)

	m := converted.POMappings[0]
	assert.Equal(t, li.ID, m.LineItemID, "mapping ref resolves to the generated item id")
	assert.Equal(t, "PO-1001", m.PONumber)
	assert.Equal(t, 400.0, m.MappedAmount)
	assert.Nil(t, m.InvoicedValue)
}

func TestConvert_UnknownMappingRef(t *testing.T) {
	schema := validSchema()
	schema.POMappings[0].LineItemRef = "ghost"

	_, err := Convert("p1", schema)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestConvert_CarriesInvoiceData(t *testing.T) {
	invoiced, lineValue := 300.0, 400.0
	schema := validSchema()
	schema.POMappings[0].InvoicedValue = &invoiced
	schema.POMappings[0].LineValue = &lineValue

	converted, err := Convert("p1", schema)
	require.NoError(t, err)
	m := converted.POMappings[0]
	require.NotNil(t, m.InvoicedValue)
	assert.Equal(t, 300.0, *m.InvoicedValue)
	require.NotNil(t, m.LineValue)
	assert.Equal(t, 400.0, *m.LineValue)
}
