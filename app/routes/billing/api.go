package billing

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yano-school/app/database"
	"yano-school/app/helpers"
	"yano-school/app/logger"
	"yano-school/app/services"
)

var validate = validator.New()

type GenerateChargesRequest struct {
	TermID string `json:"term_id" validate:"required,uuid"`
}

// GenerateChargesAPI bills every active student for a term from the fee
// structure of their class level. Safe to call repeatedly: charges that
// already exist are counted as skipped, not duplicated.
func GenerateChargesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req GenerateChargesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := services.GenerateCharges(c.Context(), db, req.TermID)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}

	logger.Log.Infow("charge generation finished",
		"term_id", req.TermID,
		"created", result.Created,
		"skipped", len(result.Skipped))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetCarryOversAPI lists the carry-over records made out of a term, for
// reconciling forwarded balances against the destination charges.
func GetCarryOversAPI(c *fiber.Ctx, db *sql.DB) error {
	fromTermID := c.Query("from_term_id")
	if fromTermID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "from_term_id is required")
	}

	records, err := database.GetCarryOversByTerm(db, fromTermID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch carry-over records")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}

type CarryOverRequest struct {
	FromTermID string   `json:"from_term_id" validate:"required,uuid"`
	ToTermID   string   `json:"to_term_id" validate:"required,uuid"`
	StudentIDs []string `json:"student_ids" validate:"omitempty,dive,uuid"`
}

// CarryOverAPI moves unpaid balances from one term into a later one.
// With no student_ids it processes every student owing in the source term.
func CarryOverAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CarryOverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := services.CarryOver(c.Context(), db, req.FromTermID, req.ToTermID, req.StudentIDs)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}

	logger.Log.Infow("carry-over finished",
		"from_term_id", req.FromTermID,
		"to_term_id", req.ToTermID,
		"carried", result.Carried,
		"conflicts", len(result.Conflicts))

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
