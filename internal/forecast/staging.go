package forecast

import (
	"fmt"

	"github.com/alexanderramin/costline/internal/domain"
)

// DraftLine is a new line item staged during an editing session. Its ref
// is always a draft ref; a real id is assigned only at commit time.
type DraftLine struct {
	Ref            domain.LineItemRef
	Classification domain.Classification
	Value          float64
}

// StagingBuffer accumulates not-yet-persisted edits for the next forecast
// version: value overrides, exclusions, and draft line items. It is a
// value object with pure transitions: every operation returns an updated
// copy and leaves the receiver untouched. Draft-local ids never leave the
// buffer, so no temporary markers can end up in persisted data.
type StagingBuffer struct {
	modified  map[string]float64
	excluded  map[string]bool
	drafts    []DraftLine
	nextDraft int
}

// NewStagingBuffer returns an empty buffer.
func NewStagingBuffer() StagingBuffer {
	return StagingBuffer{}
}

func (b StagingBuffer) clone() StagingBuffer {
	c := StagingBuffer{nextDraft: b.nextDraft}
	if len(b.modified) > 0 {
		c.modified = make(map[string]float64, len(b.modified))
		for k, v := range b.modified {
			c.modified[k] = v
		}
	}
	if len(b.excluded) > 0 {
		c.excluded = make(map[string]bool, len(b.excluded))
		for k := range b.excluded {
			c.excluded[k] = true
		}
	}
	if len(b.drafts) > 0 {
		c.drafts = append([]DraftLine(nil), b.drafts...)
	}
	return c
}

// Modify stages a value override. For a persisted ref this replaces any
// exclusion; for a draft ref it updates the draft's value.
func (b StagingBuffer) Modify(ref domain.LineItemRef, value float64) StagingBuffer {
	c := b.clone()
	if ref.IsDraft() {
		for i := range c.drafts {
			if c.drafts[i].Ref == ref {
				c.drafts[i].Value = value
			}
		}
		return c
	}
	if c.modified == nil {
		c.modified = make(map[string]float64)
	}
	c.modified[ref.ID()] = value
	delete(c.excluded, ref.ID())
	return c
}

// Exclude stages the removal of a line item from the next version. The
// item keeps existing in the baseline; its snapshot contribution is zero.
func (b StagingBuffer) Exclude(ref domain.LineItemRef) StagingBuffer {
	if ref.IsDraft() {
		return b.RemoveNew(ref)
	}
	c := b.clone()
	if c.excluded == nil {
		c.excluded = make(map[string]bool)
	}
	c.excluded[ref.ID()] = true
	delete(c.modified, ref.ID())
	return c
}

// Reset removes any staged override or exclusion for the item, reverting
// it to inherit from the previous version.
func (b StagingBuffer) Reset(ref domain.LineItemRef) StagingBuffer {
	c := b.clone()
	delete(c.modified, ref.ID())
	delete(c.excluded, ref.ID())
	return c
}

// AddNew stages a draft line item and returns its draft ref.
func (b StagingBuffer) AddNew(class domain.Classification, value float64) (StagingBuffer, domain.LineItemRef) {
	c := b.clone()
	c.nextDraft++
	ref := domain.DraftRef(fmt.Sprintf("draft-%d", c.nextDraft))
	c.drafts = append(c.drafts, DraftLine{Ref: ref, Classification: class, Value: value})
	return c, ref
}

// RemoveNew discards a staged draft line item.
func (b StagingBuffer) RemoveNew(ref domain.LineItemRef) StagingBuffer {
	c := b.clone()
	kept := c.drafts[:0]
	for _, d := range c.drafts {
		if d.Ref != ref {
			kept = append(kept, d)
		}
	}
	c.drafts = kept
	return c
}

// IsEmpty reports whether the buffer stages nothing.
func (b StagingBuffer) IsEmpty() bool {
	return len(b.modified) == 0 && len(b.excluded) == 0 && len(b.drafts) == 0
}

// Edits returns the sparse edit map consumed by BuildEntries: overridden
// values plus nil entries for exclusions. Only persisted ids appear.
func (b StagingBuffer) Edits() map[string]*float64 {
	edits := make(map[string]*float64, len(b.modified)+len(b.excluded))
	for id, v := range b.modified {
		value := v
		edits[id] = &value
	}
	for id := range b.excluded {
		edits[id] = nil
	}
	return edits
}

// Drafts returns the staged draft line items.
func (b StagingBuffer) Drafts() []DraftLine {
	return append([]DraftLine(nil), b.drafts...)
}

// Validate checks the buffer before commit: draft entries need a complete
// classification and a strictly positive value, and overrides must stay
// positive (zero or negative values are rejected, not clamped; exclusion
// is the way to zero out an item). All problems are collected.
func (b StagingBuffer) Validate() []error {
	var errs []error
	for id, v := range b.modified {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("override for line item %s must be positive, got %v (use exclude to remove it)", id, v))
		}
	}
	for i, d := range b.drafts {
		prefix := fmt.Sprintf("new entry %d", i+1)
		for _, err := range d.Classification.Validate() {
			errs = append(errs, fmt.Errorf("%s: %v", prefix, err))
		}
		if d.Value <= 0 {
			errs = append(errs, fmt.Errorf("%s: value must be positive, got %v", prefix, d.Value))
		}
	}
	return errs
}
