package models

// LedgerStatus defines the derived payment state of one purpose in one term.
type LedgerStatus string

const (
	StatusPending     LedgerStatus = "Pending"
	StatusOutstanding LedgerStatus = "Outstanding"
	StatusPaid        LedgerStatus = "Paid"
)

// DeriveStatus is the single source of truth for ledger status. Every
// caller that needs a status goes through here so the rule cannot diverge
// between call sites.
func DeriveStatus(charged, paid Money) LedgerStatus {
	if paid == 0 {
		return StatusPending
	}
	if charged-paid == 0 {
		return StatusPaid
	}
	return StatusOutstanding
}

// PaymentMethod defines how money was received.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "bank_transfer"
	MethodPOS      PaymentMethod = "pos"
	MethodCheque   PaymentMethod = "cheque"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodTransfer, MethodPOS, MethodCheque:
		return true
	}
	return false
}

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
