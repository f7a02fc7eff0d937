package models

import "time"

// CarryOverRecord is the durable proof that an unresolved balance was
// forwarded from one term into a new charge in another. Unique per
// (student_id, from_term_id, purpose), which blocks a balance from ever
// being carried twice.
type CarryOverRecord struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	FromTermID string    `json:"from_term_id"`
	ToTermID   string    `json:"to_term_id"`
	Purpose    string    `json:"purpose"`
	Amount     Money     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}
