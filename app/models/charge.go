package models

import "time"

// Charge represents a bill for one purpose in one term for one student.
// The amount is immutable once created; corrections are issued as new
// charges so the audit history stays intact. Unique per
// (student_id, term_id, purpose) — that key makes charge generation and
// carry-over safely re-runnable.
type Charge struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	TermID      string    `json:"term_id"`
	Purpose     string    `json:"purpose"`
	Amount      Money     `json:"amount"`
	CarriedOver bool      `json:"carried_over"`
	CreatedAt   time.Time `json:"created_at"`

	StudentName string `json:"student_name,omitempty"`
	StudentNo   string `json:"student_no,omitempty"`
}
