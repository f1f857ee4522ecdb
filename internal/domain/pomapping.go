package domain

import "time"

// DefaultActualRatio is the fixed fallback used to split a PO mapping's
// committed amount into invoiced vs open portions when no invoice data is
// available. A deliberate, documented approximation: 60% is treated as
// already invoiced, 40% as still open.
const DefaultActualRatio = 0.6

// POMapping links a purchase-order line to a cost line item with a
// committed amount. The relation is externally owned: the engine reads
// mappings but never mutates them. InvoicedValue and LineValue carry the
// optional invoice data used to split the mapped amount.
type POMapping struct {
	ID            string
	ProjectID     string
	LineItemID    string
	PONumber      string
	Description   string
	MappedAmount  float64
	InvoicedValue *float64
	LineValue     *float64
	CreatedAt     time.Time
}

// HasInvoiceData reports whether the mapping carries usable invoice data.
func (m *POMapping) HasInvoiceData() bool {
	return m.InvoicedValue != nil && m.LineValue != nil && *m.LineValue > 0
}

// Split divides the mapped amount into the actual (already invoiced) and
// future (still open) portions. With invoice data the invoiced ratio is
// capped at 1; without it the fixed 0.6/0.4 fallback applies.
func (m *POMapping) Split() (actual, future float64) {
	if m.HasInvoiceData() {
		ratio := *m.InvoicedValue / *m.LineValue
		if ratio > 1 {
			ratio = 1
		}
		actual = m.MappedAmount * ratio
		return actual, m.MappedAmount - actual
	}
	return m.MappedAmount * DefaultActualRatio, m.MappedAmount * (1 - DefaultActualRatio)
}
