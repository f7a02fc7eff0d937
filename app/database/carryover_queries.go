package database

import (
	"yano-school/app/models"
)

// CarriedPurposes returns the set of purposes already carried out of a
// term for a student. Presence in the set means the balance was forwarded
// before and must not be forwarded again.
func CarriedPurposes(q DBTX, studentID, fromTermID string) (map[string]bool, error) {
	query := `SELECT purpose FROM carry_overs WHERE student_id = $1 AND from_term_id = $2`
	rows, err := q.Query(query, studentID, fromTermID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purposes := make(map[string]bool)
	for rows.Next() {
		var purpose string
		if err := rows.Scan(&purpose); err != nil {
			continue
		}
		purposes[purpose] = true
	}
	return purposes, rows.Err()
}

// InsertCarryOver records the proof of one carried balance. The unique
// key on (student_id, from_term_id, purpose) makes a concurrent retry
// insert zero rows instead of a duplicate.
func InsertCarryOver(q DBTX, rec *models.CarryOverRecord) (bool, error) {
	query := `INSERT INTO carry_overs (student_id, from_term_id, to_term_id, purpose, amount, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  ON CONFLICT (student_id, from_term_id, purpose) DO NOTHING`
	result, err := q.Exec(query, rec.StudentID, rec.FromTermID, rec.ToTermID, rec.Purpose, int64(rec.Amount))
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// GetCarryOversByTerm lists the carry-over records out of a term.
func GetCarryOversByTerm(q DBTX, fromTermID string) ([]*models.CarryOverRecord, error) {
	query := `SELECT id, student_id, from_term_id, to_term_id, purpose, amount, created_at
			  FROM carry_overs
			  WHERE from_term_id = $1
			  ORDER BY created_at`
	rows, err := q.Query(query, fromTermID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.CarryOverRecord
	for rows.Next() {
		rec := &models.CarryOverRecord{}
		var amount int64
		err := rows.Scan(&rec.ID, &rec.StudentID, &rec.FromTermID, &rec.ToTermID,
			&rec.Purpose, &amount, &rec.CreatedAt)
		if err != nil {
			continue
		}
		rec.Amount = models.Money(amount)
		records = append(records, rec)
	}
	if records == nil {
		records = []*models.CarryOverRecord{}
	}
	return records, rows.Err()
}
