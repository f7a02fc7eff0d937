package feestructure

import (
	"github.com/gofiber/fiber/v2"

	"yano-school/app/config"
	"yano-school/app/routes/auth"
)

func SetupFeeStructureRoutes(app *fiber.App) {
	api := app.Group("/api/fee-structures")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetFeeItemsAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeItemAPI(c, config.GetDB())
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateFeeItemAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeItemAPI(c, config.GetDB())
	})
}
