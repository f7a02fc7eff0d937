package academic

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yano-school/app/database"
	"yano-school/app/helpers"
	"yano-school/app/models"
)

var validate = validator.New()

// GetSessionsAPI returns all sessions with their terms
func GetSessionsAPI(c *fiber.Ctx, db *sql.DB) error {
	sessions, err := database.GetSessions(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sessions")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    sessions,
	})
}

type CreateSessionRequest struct {
	Name      string            `json:"name" validate:"required"`
	StartDate models.CustomDate `json:"start_date" validate:"required"`
	EndDate   models.CustomDate `json:"end_date" validate:"required"`
	IsActive  bool              `json:"is_active"`
}

// CreateSessionAPI creates a new academic session
func CreateSessionAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	session := &models.Session{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  req.IsActive,
	}
	if err := database.CreateSession(db, session); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    session,
	})
}

type CreateTermRequest struct {
	SessionID string            `json:"session_id" validate:"required,uuid"`
	Name      string            `json:"name" validate:"required"`
	StartDate models.CustomDate `json:"start_date" validate:"required"`
	EndDate   models.CustomDate `json:"end_date" validate:"required"`
}

// CreateTermAPI creates a new term inside a session. The term's ordinal
// is assigned by the registry, not the caller.
func CreateTermAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	term := &models.Term{
		SessionID: req.SessionID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := database.CreateTerm(db, term); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create term")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    term,
	})
}

// GetTermAPI returns one term by ID
func GetTermAPI(c *fiber.Ctx, db *sql.DB) error {
	term, err := database.GetTermByID(db, c.Params("id"))
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    term,
	})
}

// GetCurrentTermAPI returns the term currently flagged active
func GetCurrentTermAPI(c *fiber.Ctx, db *sql.DB) error {
	term, err := database.GetCurrentTerm(db)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    term,
	})
}

// GetNextTermAPI returns the term that follows the given one in ordinal
// order, crossing sessions when needed.
func GetNextTermAPI(c *fiber.Ctx, db *sql.DB) error {
	term, err := database.GetNextTerm(db, c.Params("id"))
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    term,
	})
}

// ActivateTermAPI hands the is_current flag to the given term
func ActivateTermAPI(c *fiber.Ctx, db *sql.DB) error {
	termID := c.Params("id")
	if err := database.SetCurrentTerm(db, termID); err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Term activated successfully",
	})
}
