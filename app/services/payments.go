package services

import (
	"database/sql"

	"yano-school/app/database"
	"yano-school/app/logger"
	"yano-school/app/models"
)

// PaymentResult is what the processor hands back for one recorded
// payment. Remaining is any part of the requested amount that exceeded
// the outstanding balance; the caller decides what happens to it — the
// engine never silently keeps money it could not apply.
type PaymentResult struct {
	Payment     *models.Payment `json:"payment,omitempty"`
	Receipt     *models.Receipt `json:"receipt,omitempty"`
	Applied     models.Money    `json:"applied_amount"`
	Remaining   models.Money    `json:"remaining_amount"`
	Capped      bool            `json:"capped"`
	Allocations []Allocation    `json:"allocations"`
}

// RecordPayment applies an incoming payment to a student's outstanding
// charges in a term. The student's charge rows are locked for the whole
// transaction, so two concurrent payments for the same student cannot
// both read the same stale balance; payments for different students
// proceed in parallel. The payment row (applied amount only) and its
// receipt commit together or not at all.
func RecordPayment(db *sql.DB, studentID, termID string, amount models.Money, method models.PaymentMethod, description string) (*PaymentResult, error) {
	if amount <= 0 {
		return nil, &models.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if !models.ValidPaymentMethod(method) {
		return nil, &models.ValidationError{Field: "method", Reason: "unknown payment method"}
	}
	if _, err := database.GetTermByID(db, termID); err != nil {
		return nil, err
	}
	if _, err := database.GetStudentByID(db, studentID); err != nil {
		return nil, err
	}

	var result *PaymentResult
	err := withRetry("record payment", func() error {
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		charges, err := database.LockChargesForStudentTerm(tx, studentID, termID)
		if err != nil {
			return err
		}
		if len(charges) == 0 {
			return &models.NoChargeError{StudentID: studentID, TermID: termID}
		}

		payments, err := database.GetPaymentsForStudentTerm(tx, studentID, termID)
		if err != nil {
			return err
		}

		entries := ReplayLedger(charges, payments)
		alloc := AllocatePayment(entries, amount)

		result = &PaymentResult{
			Applied:     alloc.Applied,
			Remaining:   alloc.Remaining,
			Capped:      alloc.Capped,
			Allocations: alloc.Allocations,
		}

		if alloc.Applied > 0 {
			payment := &models.Payment{
				StudentID:   studentID,
				TermID:      termID,
				Amount:      alloc.Applied,
				Method:      method,
				Description: description,
			}
			receipt, err := database.InsertPaymentWithReceipt(tx, payment)
			if err != nil {
				return err
			}
			result.Payment = payment
			result.Receipt = receipt
		}

		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}

	if result.Capped {
		logger.Log.Infof("payment for student %s capped: requested=%d applied=%d remaining=%d",
			studentID, int64(amount), int64(result.Applied), int64(result.Remaining))
	}
	return result, nil
}

// ResetPayments reverses every live payment a student made in a term by
// voiding the rows. Nothing is deleted: payments and receipts stay in
// place for audit, the ledger simply stops counting them, which reports
// the student fully unpaid again without any balance going negative.
func ResetPayments(db *sql.DB, studentID, termID string) (int64, error) {
	if _, err := database.GetTermByID(db, termID); err != nil {
		return 0, err
	}
	if _, err := database.GetStudentByID(db, studentID); err != nil {
		return 0, err
	}

	voided, err := database.VoidPayments(db, studentID, termID)
	if err != nil {
		return 0, err
	}
	logger.Log.Infof("reset payments for student %s in term %s: %d voided", studentID, termID, voided)
	return voided, nil
}
