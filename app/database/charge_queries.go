package database

import (
	"database/sql"

	"yano-school/app/models"
)

const chargeColumns = `id, student_id, term_id, purpose, amount, carried_over, created_at`

// GetChargesForStudentTerm returns a student's charges in one term in
// allocation order: carried-over purposes first, then by creation time,
// purpose as the final tiebreaker so the order is total.
func GetChargesForStudentTerm(q DBTX, studentID, termID string) ([]*models.Charge, error) {
	query := `SELECT ` + chargeColumns + `
			  FROM charges
			  WHERE student_id = $1 AND term_id = $2
			  ORDER BY carried_over DESC, created_at, purpose`
	rows, err := q.Query(query, studentID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCharges(rows)
}

// LockChargesForStudentTerm locks the student's charge rows for the term
// and returns them in allocation order. Taking the row locks up front
// serializes concurrent mutating operations on the same student while
// leaving other students fully parallel.
func LockChargesForStudentTerm(q DBTX, studentID, termID string) ([]*models.Charge, error) {
	query := `SELECT ` + chargeColumns + `
			  FROM charges
			  WHERE student_id = $1 AND term_id = $2
			  ORDER BY carried_over DESC, created_at, purpose
			  FOR UPDATE`
	rows, err := q.Query(query, studentID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCharges(rows)
}

// GetChargesByTerm returns every charge in a term, grouped by student in
// allocation order. Used by the statistics service.
func GetChargesByTerm(q DBTX, termID string) ([]*models.Charge, error) {
	query := `SELECT ` + chargeColumns + `
			  FROM charges
			  WHERE term_id = $1
			  ORDER BY student_id, carried_over DESC, created_at, purpose`
	rows, err := q.Query(query, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCharges(rows)
}

// GetChargesForStudent returns every charge a student has across all
// terms, grouped by term in allocation order.
func GetChargesForStudent(q DBTX, studentID string) ([]*models.Charge, error) {
	query := `SELECT ` + chargeColumns + `
			  FROM charges
			  WHERE student_id = $1
			  ORDER BY term_id, carried_over DESC, created_at, purpose`
	rows, err := q.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCharges(rows)
}

// InsertCharge inserts a charge unless one already exists for the
// (student, term, purpose) key. Returns whether a row was created; a
// false return is how re-runs of charge generation and carry-over stay
// idempotent under concurrency.
func InsertCharge(q DBTX, c *models.Charge) (bool, error) {
	query := `INSERT INTO charges (student_id, term_id, purpose, amount, carried_over, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  ON CONFLICT (student_id, term_id, purpose) DO NOTHING`
	result, err := q.Exec(query, c.StudentID, c.TermID, c.Purpose, int64(c.Amount), c.CarriedOver)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// StudentIDsWithCharges returns the distinct students that have at least
// one charge in a term, in a stable order.
func StudentIDsWithCharges(q DBTX, termID string) ([]string, error) {
	rows, err := q.Query(`SELECT DISTINCT student_id FROM charges WHERE term_id = $1 ORDER BY student_id`, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ChargeKeysForTerm returns the set of existing (student_id, purpose)
// keys in a term, used to plan generation without re-reading row by row.
func ChargeKeysForTerm(q DBTX, termID string) (map[string]bool, error) {
	rows, err := q.Query(`SELECT student_id, purpose FROM charges WHERE term_id = $1`, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var studentID, purpose string
		if err := rows.Scan(&studentID, &purpose); err != nil {
			continue
		}
		keys[studentID+"/"+purpose] = true
	}
	return keys, rows.Err()
}

func scanCharges(rows *sql.Rows) ([]*models.Charge, error) {
	var charges []*models.Charge
	for rows.Next() {
		c := &models.Charge{}
		var amount int64
		err := rows.Scan(&c.ID, &c.StudentID, &c.TermID, &c.Purpose, &amount, &c.CarriedOver, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		c.Amount = models.Money(amount)
		charges = append(charges, c)
	}
	return charges, rows.Err()
}
