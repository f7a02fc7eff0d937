package database

import (
	"database/sql"

	"yano-school/app/models"
)

// GetSessions returns all sessions with their terms, newest first.
func GetSessions(db *sql.DB) ([]*models.Session, error) {
	query := `SELECT id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM sessions
			  ORDER BY start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s := &models.Session{}
		err := rows.Scan(&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			continue
		}

		terms, _ := GetTermsBySession(db, s.ID)
		if terms == nil {
			terms = []*models.Term{}
		}
		s.Terms = terms
		sessions = append(sessions, s)
	}
	if sessions == nil {
		sessions = []*models.Session{}
	}
	return sessions, nil
}

// CreateSession inserts a session. When the session is flagged active,
// every other session is deactivated in the same transaction.
func CreateSession(db *sql.DB, s *models.Session) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if s.IsActive {
		if _, err = tx.Exec(`UPDATE sessions SET is_active = false`); err != nil {
			return err
		}
	}

	query := `INSERT INTO sessions (name, start_date, end_date, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, s.Name, s.StartDate.Time, s.EndDate.Time, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetTermsBySession returns the terms of one session ordered by ordinal.
func GetTermsBySession(db *sql.DB, sessionID string) ([]*models.Term, error) {
	query := `SELECT id, session_id, name, ordinal, start_date, end_date, is_current, created_at, updated_at
			  FROM terms
			  WHERE session_id = $1
			  ORDER BY ordinal`

	rows, err := db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		t := &models.Term{}
		err := rows.Scan(&t.ID, &t.SessionID, &t.Name, &t.Ordinal,
			&t.StartDate.Time, &t.EndDate.Time, &t.IsCurrent, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			continue
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// CreateTerm inserts a term. The ordinal is assigned atomically as one
// past the highest ordinal ever issued, so the total order over terms is
// never ambiguous.
func CreateTerm(db *sql.DB, t *models.Term) error {
	query := `INSERT INTO terms (session_id, name, ordinal, start_date, end_date, is_current, created_at, updated_at)
			  VALUES ($1, $2, (SELECT COALESCE(MAX(ordinal), 0) + 1 FROM terms), $3, $4, false, NOW(), NOW())
			  RETURNING id, ordinal, created_at, updated_at`
	return db.QueryRow(query, t.SessionID, t.Name, t.StartDate.Time, t.EndDate.Time).
		Scan(&t.ID, &t.Ordinal, &t.CreatedAt, &t.UpdatedAt)
}

// GetTermByID returns one term joined with its session name.
func GetTermByID(db *sql.DB, id string) (*models.Term, error) {
	query := `SELECT t.id, t.session_id, t.name, t.ordinal, t.start_date, t.end_date, t.is_current,
			  t.created_at, t.updated_at, s.name
			  FROM terms t
			  JOIN sessions s ON t.session_id = s.id
			  WHERE t.id = $1`

	t := &models.Term{}
	err := db.QueryRow(query, id).Scan(&t.ID, &t.SessionID, &t.Name, &t.Ordinal,
		&t.StartDate.Time, &t.EndDate.Time, &t.IsCurrent, &t.CreatedAt, &t.UpdatedAt, &t.SessionName)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "term", Key: id}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetCurrentTerm returns the single term flagged current.
func GetCurrentTerm(db *sql.DB) (*models.Term, error) {
	query := `SELECT t.id, t.session_id, t.name, t.ordinal, t.start_date, t.end_date, t.is_current,
			  t.created_at, t.updated_at, s.name
			  FROM terms t
			  JOIN sessions s ON t.session_id = s.id
			  WHERE t.is_current = true`

	t := &models.Term{}
	err := db.QueryRow(query).Scan(&t.ID, &t.SessionID, &t.Name, &t.Ordinal,
		&t.StartDate.Time, &t.EndDate.Time, &t.IsCurrent, &t.CreatedAt, &t.UpdatedAt, &t.SessionName)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "current term", Key: "is_current"}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetNextTerm returns the term with the smallest ordinal greater than the
// given term's, crossing the session boundary when needed.
func GetNextTerm(db *sql.DB, termID string) (*models.Term, error) {
	query := `SELECT t.id, t.session_id, t.name, t.ordinal, t.start_date, t.end_date, t.is_current,
			  t.created_at, t.updated_at, s.name
			  FROM terms t
			  JOIN sessions s ON t.session_id = s.id
			  WHERE t.ordinal > (SELECT ordinal FROM terms WHERE id = $1)
			  ORDER BY t.ordinal
			  LIMIT 1`

	t := &models.Term{}
	err := db.QueryRow(query, termID).Scan(&t.ID, &t.SessionID, &t.Name, &t.Ordinal,
		&t.StartDate.Time, &t.EndDate.Time, &t.IsCurrent, &t.CreatedAt, &t.UpdatedAt, &t.SessionName)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "next term", Key: termID}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// SetCurrentTerm makes the given term the current one. Exactly one term
// holds the flag at any time.
func SetCurrentTerm(db *sql.DB, termID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`UPDATE terms SET is_current = false, updated_at = NOW() WHERE is_current = true`); err != nil {
		return err
	}

	result, err := tx.Exec(`UPDATE terms SET is_current = true, updated_at = NOW() WHERE id = $1`, termID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NotFoundError{Resource: "term", Key: termID}
	}

	return tx.Commit()
}
