package feestructure

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yano-school/app/database"
	"yano-school/app/helpers"
	"yano-school/app/models"
)

var validate = validator.New()

// GetFeeItemsAPI returns the fee structure for a class level and term
func GetFeeItemsAPI(c *fiber.Ctx, db *sql.DB) error {
	classLevel := c.Query("class_level")
	termID := c.Query("term_id")
	if termID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "term_id is required")
	}

	if classLevel == "" {
		items, err := database.GetFeeItemsByTerm(db, termID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee structure")
		}
		return c.JSON(fiber.Map{"success": true, "data": items})
	}

	items, err := database.GetFeeItems(db, classLevel, termID)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

type CreateFeeItemRequest struct {
	ClassLevel string `json:"class_level" validate:"required"`
	TermID     string `json:"term_id" validate:"required,uuid"`
	Purpose    string `json:"purpose" validate:"required"`
	Amount     int64  `json:"amount" validate:"gte=0"`
}

// CreateFeeItemAPI adds one purpose to a class level's fee structure
func CreateFeeItemAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateFeeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	item := &models.FeeStructureItem{
		ClassLevel: req.ClassLevel,
		TermID:     req.TermID,
		Purpose:    req.Purpose,
		Amount:     models.Money(req.Amount),
	}
	if err := database.CreateFeeItem(db, item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee structure item")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

type UpdateFeeItemRequest struct {
	Amount int64 `json:"amount" validate:"gte=0"`
}

// UpdateFeeItemAPI changes the amount of one fee structure item. Charges
// already generated keep their original amount; only future generation
// sees the change.
func UpdateFeeItemAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpdateFeeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := database.UpdateFeeItem(db, c.Params("id"), models.Money(req.Amount)); err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee structure item updated successfully",
	})
}

// DeleteFeeItemAPI removes one fee structure item
func DeleteFeeItemAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteFeeItem(db, c.Params("id")); err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee structure item deleted successfully",
	})
}
