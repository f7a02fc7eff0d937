package payments

import (
	"database/sql"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yano-school/app/database"
	"yano-school/app/helpers"
	"yano-school/app/models"
	"yano-school/app/services"
)

var validate = validator.New()

type RecordPaymentRequest struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	TermID      string `json:"term_id" validate:"required,uuid"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Method      string `json:"method" validate:"required"`
	Description string `json:"description"`
}

// RecordPaymentAPI records a payment against a student's charges in a
// term. Only the applied portion is stored; any overage comes back in
// remaining_amount for the cashier to handle.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := services.RecordPayment(db, req.StudentID, req.TermID,
		models.Money(req.Amount), models.PaymentMethod(req.Method), req.Description)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}

	status := fiber.StatusCreated
	if result.Payment == nil {
		// nothing outstanding, nothing recorded
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetPaymentsAPI lists a student's payments in a term with their
// receipts, voided ones included so the history stays complete.
func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Query("student_id")
	termID := c.Query("term_id")
	if studentID == "" || termID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "student_id and term_id are required")
	}

	list, err := database.ListPaymentsWithReceipts(db, studentID, termID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

type ResetPaymentsRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	TermID    string `json:"term_id" validate:"required,uuid"`
}

// ResetPaymentsAPI voids every live payment a student made in a term.
func ResetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ResetPaymentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	voided, err := services.ResetPayments(db, req.StudentID, req.TermID)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"voided": voided},
	})
}

// GetReceiptAPI looks a payment up by its receipt number.
func GetReceiptAPI(c *fiber.Ctx, db *sql.DB) error {
	receiptNo, err := strconv.ParseInt(c.Params("receipt_no"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid receipt number")
	}

	payment, err := services.GetReceiptByNo(db, receiptNo)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// GetPaymentReceiptAPI returns the receipt issued for one payment.
func GetPaymentReceiptAPI(c *fiber.Ctx, db *sql.DB) error {
	paymentID := c.Query("payment_id")
	if paymentID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "payment_id is required")
	}

	payment, err := services.GetReceiptForPayment(db, paymentID)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}
