package forecast

import (
	"testing"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagingBuffer_TransitionsArePure(t *testing.T) {
	empty := NewStagingBuffer()
	modified := empty.Modify(domain.PersistedRef("A"), 150)

	assert.True(t, empty.IsEmpty(), "receiver is untouched")
	assert.False(t, modified.IsEmpty())
	require.Contains(t, modified.Edits(), "A")
	assert.Equal(t, 150.0, *modified.Edits()["A"])
}

func TestStagingBuffer_ModifyClearsExclusion(t *testing.T) {
	b := NewStagingBuffer().
		Exclude(domain.PersistedRef("A")).
		Modify(domain.PersistedRef("A"), 150)

	edits := b.Edits()
	require.Contains(t, edits, "A")
	require.NotNil(t, edits["A"])
	assert.Equal(t, 150.0, *edits["A"])
}

func TestStagingBuffer_ExcludeClearsOverride(t *testing.T) {
	b := NewStagingBuffer().
		Modify(domain.PersistedRef("A"), 150).
		Exclude(domain.PersistedRef("A"))

	edits := b.Edits()
	require.Contains(t, edits, "A")
	assert.Nil(t, edits["A"], "exclusion is the nil edit")
}

func TestStagingBuffer_Reset(t *testing.T) {
	b := NewStagingBuffer().
		Modify(domain.PersistedRef("A"), 150).
		Exclude(domain.PersistedRef("B")).
		Reset(domain.PersistedRef("A")).
		Reset(domain.PersistedRef("B"))

	assert.True(t, b.IsEmpty())
}

func TestStagingBuffer_Drafts(t *testing.T) {
	class := domain.Classification{
		BusinessLine: "Ops", CostLine: "IT", SpendType: "Hardware", SubCategory: "Laptops",
	}

	b, ref := NewStagingBuffer().AddNew(class, 50)
	assert.True(t, ref.IsDraft())
	require.Len(t, b.Drafts(), 1)
	assert.Equal(t, 50.0, b.Drafts()[0].Value)

	// Draft-local ids never reach the edit map.
	assert.Empty(t, b.Edits())

	// Modify on a draft ref updates the draft value.
	b = b.Modify(ref, 75)
	assert.Equal(t, 75.0, b.Drafts()[0].Value)

	// Excluding a draft discards it entirely.
	b = b.Exclude(ref)
	assert.Empty(t, b.Drafts())
	assert.True(t, b.IsEmpty())
}

func TestStagingBuffer_DraftRefsAreUniquePerBuffer(t *testing.T) {
	class := domain.Classification{
		BusinessLine: "Ops", CostLine: "IT", SpendType: "Hardware", SubCategory: "Laptops",
	}

	b, ref1 := NewStagingBuffer().AddNew(class, 10)
	b, ref2 := b.AddNew(class, 20)
	assert.NotEqual(t, ref1, ref2)

	b = b.RemoveNew(ref1)
	require.Len(t, b.Drafts(), 1)
	assert.Equal(t, ref2, b.Drafts()[0].Ref)
}

func TestStagingBuffer_Validate(t *testing.T) {
	b := NewStagingBuffer().Modify(domain.PersistedRef("A"), -5)
	b, _ = b.AddNew(domain.Classification{BusinessLine: "Ops"}, 0)

	errs := b.Validate()
	require.NotEmpty(t, errs)
	// Negative override, incomplete classification (3 missing fields),
	// and non-positive draft value are all reported.
	assert.Len(t, errs, 5)
}

func TestStagingBuffer_ValidateCleanBuffer(t *testing.T) {
	class := domain.Classification{
		BusinessLine: "Ops", CostLine: "IT", SpendType: "Hardware", SubCategory: "Laptops",
	}
	b := NewStagingBuffer().Modify(domain.PersistedRef("A"), 150)
	b, _ = b.AddNew(class, 50)

	assert.Empty(t, b.Validate())
}
