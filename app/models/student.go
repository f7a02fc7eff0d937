package models

import "time"

// Student represents a learner on the school roster. ClassLevel drives
// which fee structure items apply to the student when charges are
// generated for a term.
type Student struct {
	ID        string     `json:"id"`
	StudentNo string     `json:"student_no"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Gender    Gender     `json:"gender,omitempty"`
	ClassLevel string    `json:"class_level"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
