package models

import "time"

// Payment represents money received from a student for a term. The
// stored amount is the applied amount after capping, never the raw
// requested figure. Payments are immutable; a reset voids them instead
// of deleting (VoidedAt set), which keeps the audit trail complete.
type Payment struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"student_id"`
	TermID      string        `json:"term_id"`
	Amount      Money         `json:"amount"`
	Method      PaymentMethod `json:"method"`
	Description string        `json:"description,omitempty"`
	RecordedAt  time.Time     `json:"recorded_at"`
	VoidedAt    *time.Time    `json:"voided_at,omitempty"`

	StudentName string   `json:"student_name,omitempty"`
	Receipt     *Receipt `json:"receipt,omitempty"`
}

// Voided reports whether the payment has been reversed.
func (p *Payment) Voided() bool {
	return p.VoidedAt != nil
}

// Receipt is the immutable proof issued for a payment. ReceiptNo is
// strictly increasing and unique across the whole system, which external
// audit relies on.
type Receipt struct {
	ID        string    `json:"id"`
	ReceiptNo int64     `json:"receipt_no"`
	PaymentID string    `json:"payment_id"`
	IssuedAt  time.Time `json:"issued_at"`
}
