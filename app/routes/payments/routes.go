package payments

import (
	"github.com/gofiber/fiber/v2"

	"yano-school/app/config"
	"yano-school/app/routes/auth"
)

func SetupPaymentRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})

	api.Post("/reset", func(c *fiber.Ctx) error {
		return ResetPaymentsAPI(c, config.GetDB())
	})

	receipts := app.Group("/api/receipts")
	receipts.Use(auth.AuthMiddleware)

	receipts.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentReceiptAPI(c, config.GetDB())
	})

	receipts.Get("/:receipt_no", func(c *fiber.Ctx) error {
		return GetReceiptAPI(c, config.GetDB())
	})
}
