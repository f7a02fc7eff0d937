package ledger

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"yano-school/app/helpers"
	"yano-school/app/services"
)

// GetLedgerAPI returns aggregated ledger entries. Filter by student_id,
// term_id, or both; at least one is required.
func GetLedgerAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Query("student_id")
	termID := c.Query("term_id")

	entries, err := services.GetLedger(db, studentID, termID)
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    entries,
	})
}

// GetStatisticsAPI returns collection statistics for one term.
func GetStatisticsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := services.GetStatistics(db, c.Params("term_id"))
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
