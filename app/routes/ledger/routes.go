package ledger

import (
	"github.com/gofiber/fiber/v2"

	"yano-school/app/config"
	"yano-school/app/routes/auth"
)

func SetupLedgerRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)

	api.Get("/ledger", func(c *fiber.Ctx) error {
		return GetLedgerAPI(c, config.GetDB())
	})

	api.Get("/statistics/:term_id", func(c *fiber.Ctx) error {
		return GetStatisticsAPI(c, config.GetDB())
	})
}
