package models

// LedgerEntry is the derived billing position of one purpose for one
// student in one term. It is a pure projection computed from charges and
// payments on demand, never stored, so it can never drift from the facts.
type LedgerEntry struct {
	StudentID    string       `json:"student_id"`
	TermID       string       `json:"term_id"`
	Purpose      string       `json:"purpose"`
	CarriedOver  bool         `json:"carried_over"`
	TotalCharged Money        `json:"total_charged"`
	TotalPaid    Money        `json:"total_paid"`
	Balance      Money        `json:"balance"`
	Status       LedgerStatus `json:"status"`
}

// Statistics summarizes collection across every student billed in a term.
type Statistics struct {
	TermID                string               `json:"term_id"`
	TotalExpected         Money                `json:"total_expected"`
	TotalCollected        Money                `json:"total_collected"`
	TotalOutstanding      Money                `json:"total_outstanding"`
	CollectionRate        float64              `json:"collection_rate"`
	PaymentCompletionRate float64              `json:"payment_completion_rate"`
	StatusCounts          map[LedgerStatus]int `json:"status_counts"`
	StudentCount          int                  `json:"student_count"`
}
