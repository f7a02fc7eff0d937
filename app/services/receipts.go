package services

import (
	"database/sql"

	"yano-school/app/database"
	"yano-school/app/models"
)

// GetReceiptByNo resolves a receipt from its public number and attaches
// the payment it proves.
func GetReceiptByNo(db *sql.DB, receiptNo int64) (*models.Payment, error) {
	receipt, err := database.GetReceiptByNo(db, receiptNo)
	if err != nil {
		return nil, err
	}
	return database.GetPaymentByID(db, receipt.PaymentID)
}

// GetReceiptForPayment returns the payment with its receipt, looked up
// by payment id.
func GetReceiptForPayment(db *sql.DB, paymentID string) (*models.Payment, error) {
	return database.GetPaymentByID(db, paymentID)
}
