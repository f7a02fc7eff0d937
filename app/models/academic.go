package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CustomDate allows parsing dates in YYYY-MM-DD format
type CustomDate struct {
	time.Time
}

// UnmarshalJSON parses dates in YYYY-MM-DD format
func (cd *CustomDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == "" || s == `""` {
		cd.Time = time.Time{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	cd.Time = t
	return nil
}

// MarshalJSON formats dates in YYYY-MM-DD format
func (cd CustomDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, cd.Time.Format("2006-01-02"))), nil
}

// Scan implements the Scanner interface for database reading
func (cd *CustomDate) Scan(value interface{}) error {
	if value == nil {
		cd.Time = time.Time{}
		return nil
	}
	if t, ok := value.(time.Time); ok {
		cd.Time = t
		return nil
	}
	return fmt.Errorf("cannot scan %T into CustomDate", value)
}

// Value implements the Valuer interface for database writing
func (cd CustomDate) Value() (driver.Value, error) {
	return cd.Time, nil
}

// Session represents an academic session, e.g. "2025/2026".
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate CustomDate `json:"start_date"`
	EndDate   CustomDate `json:"end_date"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Terms     []*Term    `json:"terms,omitempty"`
}

// Term represents one term within a session. A term is the billing
// period of the engine: charges, payments and carry-overs all hang off a
// term. Ordinal is unique across every term ever created and gives the
// total order used to resolve "next period".
type Term struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	Name      string     `json:"name"`
	Ordinal   int        `json:"ordinal"`
	StartDate CustomDate `json:"start_date"`
	EndDate   CustomDate `json:"end_date"`
	IsCurrent bool       `json:"is_current"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	SessionName string `json:"session_name,omitempty"`
}

// IsCurrentByDate checks if the term is current based on today's date
func (t *Term) IsCurrentByDate() bool {
	now := time.Now()
	return now.After(t.StartDate.Time) && now.Before(t.EndDate.Time)
}
