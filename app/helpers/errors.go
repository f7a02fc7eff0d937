package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"yano-school/app/models"
)

// ErrorResponse maps engine errors onto HTTP statuses. Validation maps
// to 400, missing resources to 404, billing conflicts to 409, lost write
// races to 503 with a retry hint. Anything unrecognized is a plain 500
// without leaking internals.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var ve *models.ValidationError
	var nf *models.NotFoundError
	var nc *models.NoChargeError
	var cc *models.CarryOverConflict

	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": ve.Error()})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": nf.Error()})
	case errors.As(err, &nc):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": nc.Error()})
	case errors.As(err, &cc):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": cc.Error()})
	case errors.Is(err, models.ErrConcurrencyConflict):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"retry":   true,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
}
