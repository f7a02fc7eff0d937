package billing

import (
	"github.com/gofiber/fiber/v2"

	"yano-school/app/config"
	"yano-school/app/routes/auth"
)

func SetupBillingRoutes(app *fiber.App) {
	api := app.Group("/api/billing")
	api.Use(auth.AuthMiddleware)

	api.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateChargesAPI(c, config.GetDB())
	})

	api.Post("/carry-over", func(c *fiber.Ctx) error {
		return CarryOverAPI(c, config.GetDB())
	})

	api.Get("/carry-overs", func(c *fiber.Ctx) error {
		return GetCarryOversAPI(c, config.GetDB())
	})
}
