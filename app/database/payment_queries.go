package database

import (
	"database/sql"

	"yano-school/app/models"
)

const paymentColumns = `id, student_id, term_id, amount, method, COALESCE(description, ''), recorded_at, voided_at`

// GetPaymentsForStudentTerm returns a student's payments in one term in
// recorded order, voided ones included. The ledger replay decides what
// counts.
func GetPaymentsForStudentTerm(q DBTX, studentID, termID string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE student_id = $1 AND term_id = $2
			  ORDER BY recorded_at, id`
	rows, err := q.Query(query, studentID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// GetPaymentsByTerm returns every payment in a term grouped by student in
// recorded order.
func GetPaymentsByTerm(q DBTX, termID string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE term_id = $1
			  ORDER BY student_id, recorded_at, id`
	rows, err := q.Query(query, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// GetPaymentsForStudent returns every payment a student has made across
// all terms, grouped by term in recorded order.
func GetPaymentsForStudent(q DBTX, studentID string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE student_id = $1
			  ORDER BY term_id, recorded_at, id`
	rows, err := q.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListPaymentsWithReceipts returns a student's payments in a term with
// their receipts attached, newest first. Backs the payment history view.
func ListPaymentsWithReceipts(db *sql.DB, studentID, termID string) ([]*models.Payment, error) {
	query := `SELECT p.id, p.student_id, p.term_id, p.amount, p.method, COALESCE(p.description, ''),
			  p.recorded_at, p.voided_at,
			  r.id, r.receipt_no, r.issued_at
			  FROM payments p
			  JOIN receipts r ON r.payment_id = p.id
			  WHERE p.student_id = $1 AND p.term_id = $2
			  ORDER BY p.recorded_at DESC, p.id`
	rows, err := db.Query(query, studentID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		r := &models.Receipt{}
		var amount int64
		var method string
		err := rows.Scan(&p.ID, &p.StudentID, &p.TermID, &amount, &method,
			&p.Description, &p.RecordedAt, &p.VoidedAt,
			&r.ID, &r.ReceiptNo, &r.IssuedAt)
		if err != nil {
			return nil, err
		}
		p.Amount = models.Money(amount)
		p.Method = models.PaymentMethod(method)
		r.PaymentID = p.ID
		p.Receipt = r
		payments = append(payments, p)
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return payments, rows.Err()
}

// InsertPaymentWithReceipt creates a payment and its receipt in one shot.
// Callers run it inside a transaction so either both rows exist or
// neither does; a payment without its receipt must never be observable.
func InsertPaymentWithReceipt(tx *sql.Tx, p *models.Payment) (*models.Receipt, error) {
	queryPayment := `INSERT INTO payments (student_id, term_id, amount, method, description, recorded_at)
	                 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NOW())
					 RETURNING id, recorded_at`
	err := tx.QueryRow(queryPayment,
		p.StudentID, p.TermID, int64(p.Amount), string(p.Method), p.Description,
	).Scan(&p.ID, &p.RecordedAt)
	if err != nil {
		return nil, err
	}

	receipt := &models.Receipt{PaymentID: p.ID}
	queryReceipt := `INSERT INTO receipts (payment_id, issued_at)
	                 VALUES ($1, NOW())
					 RETURNING id, receipt_no, issued_at`
	err = tx.QueryRow(queryReceipt, p.ID).Scan(&receipt.ID, &receipt.ReceiptNo, &receipt.IssuedAt)
	if err != nil {
		return nil, err
	}

	p.Receipt = receipt
	return receipt, nil
}

// VoidPayments marks every live payment for the student and term as
// voided and returns how many were affected. Rows are never deleted; the
// void timestamp preserves the audit trail.
func VoidPayments(q DBTX, studentID, termID string) (int64, error) {
	query := `UPDATE payments SET voided_at = NOW()
			  WHERE student_id = $1 AND term_id = $2 AND voided_at IS NULL`
	result, err := q.Exec(query, studentID, termID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetReceiptByNo returns a receipt by its public number.
func GetReceiptByNo(db *sql.DB, receiptNo int64) (*models.Receipt, error) {
	query := `SELECT id, receipt_no, payment_id, issued_at FROM receipts WHERE receipt_no = $1`

	r := &models.Receipt{}
	err := db.QueryRow(query, receiptNo).Scan(&r.ID, &r.ReceiptNo, &r.PaymentID, &r.IssuedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "receipt", Key: "no such receipt number"}
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetReceiptByPaymentID returns the receipt paired with a payment.
func GetReceiptByPaymentID(db *sql.DB, paymentID string) (*models.Receipt, error) {
	query := `SELECT id, receipt_no, payment_id, issued_at FROM receipts WHERE payment_id = $1`

	r := &models.Receipt{}
	err := db.QueryRow(query, paymentID).Scan(&r.ID, &r.ReceiptNo, &r.PaymentID, &r.IssuedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "receipt", Key: paymentID}
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetPaymentByID returns one payment with its receipt attached.
func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	p := &models.Payment{}
	var amount int64
	var method string
	err := db.QueryRow(query, id).Scan(&p.ID, &p.StudentID, &p.TermID, &amount,
		&method, &p.Description, &p.RecordedAt, &p.VoidedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "payment", Key: id}
	}
	if err != nil {
		return nil, err
	}
	p.Amount = models.Money(amount)
	p.Method = models.PaymentMethod(method)

	if receipt, err := GetReceiptByPaymentID(db, id); err == nil {
		p.Receipt = receipt
	}
	return p, nil
}

func scanPayments(rows *sql.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		var amount int64
		var method string
		err := rows.Scan(&p.ID, &p.StudentID, &p.TermID, &amount, &method,
			&p.Description, &p.RecordedAt, &p.VoidedAt)
		if err != nil {
			return nil, err
		}
		p.Amount = models.Money(amount)
		p.Method = models.PaymentMethod(method)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
