package models

import "time"

// FeeStructureItem defines one billable purpose for a class level in a
// term, e.g. (JSS1, First Term 2025/2026, "Tuition", 58000). Unique per
// (class_level, term_id, purpose). The billing engine reads these;
// administrators own them.
type FeeStructureItem struct {
	ID         string    `json:"id"`
	ClassLevel string    `json:"class_level"`
	TermID     string    `json:"term_id"`
	Purpose    string    `json:"purpose"`
	Amount     Money     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	TermName    string `json:"term_name,omitempty"`
	SessionName string `json:"session_name,omitempty"`
}
