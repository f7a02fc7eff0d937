package database

import (
	"database/sql"
	"fmt"

	"yano-school/app/models"
)

// GetFeeItems returns the fee structure for a class level in a term.
// Absence of any structure is NotFoundError: callers must treat that as
// "nothing billable yet", never as a zero-fee structure.
func GetFeeItems(db *sql.DB, classLevel, termID string) ([]*models.FeeStructureItem, error) {
	query := `SELECT id, class_level, term_id, purpose, amount, created_at, updated_at
			  FROM fee_structures
			  WHERE class_level = $1 AND term_id = $2
			  ORDER BY purpose`

	rows, err := db.Query(query, classLevel, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.FeeStructureItem
	for rows.Next() {
		item := &models.FeeStructureItem{}
		err := rows.Scan(&item.ID, &item.ClassLevel, &item.TermID, &item.Purpose,
			&item.Amount, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, &models.NotFoundError{
			Resource: "fee structure",
			Key:      fmt.Sprintf("%s/%s", classLevel, termID),
		}
	}
	return items, nil
}

// GetFeeItemsByTerm returns every fee structure item for a term, for all
// class levels, joined with term labels for display.
func GetFeeItemsByTerm(db *sql.DB, termID string) ([]*models.FeeStructureItem, error) {
	query := `SELECT fs.id, fs.class_level, fs.term_id, fs.purpose, fs.amount, fs.created_at, fs.updated_at,
			  t.name, s.name
			  FROM fee_structures fs
			  JOIN terms t ON fs.term_id = t.id
			  JOIN sessions s ON t.session_id = s.id
			  WHERE fs.term_id = $1
			  ORDER BY fs.class_level, fs.purpose`

	rows, err := db.Query(query, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.FeeStructureItem
	for rows.Next() {
		item := &models.FeeStructureItem{}
		err := rows.Scan(&item.ID, &item.ClassLevel, &item.TermID, &item.Purpose,
			&item.Amount, &item.CreatedAt, &item.UpdatedAt, &item.TermName, &item.SessionName)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if items == nil {
		items = []*models.FeeStructureItem{}
	}
	return items, nil
}

// CreateFeeItem inserts one fee structure item.
func CreateFeeItem(db *sql.DB, item *models.FeeStructureItem) error {
	query := `INSERT INTO fee_structures (class_level, term_id, purpose, amount, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, item.ClassLevel, item.TermID, item.Purpose, int64(item.Amount)).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

// UpdateFeeItem changes the amount of one item. Charges already generated
// from the old amount are untouched; regeneration respects the
// (student, term, purpose) idempotency key.
func UpdateFeeItem(db *sql.DB, id string, amount models.Money) error {
	result, err := db.Exec(`UPDATE fee_structures SET amount = $1, updated_at = NOW() WHERE id = $2`,
		int64(amount), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NotFoundError{Resource: "fee structure item", Key: id}
	}
	return nil
}

// DeleteFeeItem removes one item from the structure.
func DeleteFeeItem(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM fee_structures WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NotFoundError{Resource: "fee structure item", Key: id}
	}
	return nil
}
