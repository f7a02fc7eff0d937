package academic

import (
	"github.com/gofiber/fiber/v2"

	"yano-school/app/config"
	"yano-school/app/routes/auth"
)

// SetupAcademicRoutes sets up the session/term registry routes
func SetupAcademicRoutes(app *fiber.App) {
	api := app.Group("/api/academic")
	api.Use(auth.AuthMiddleware)

	api.Get("/sessions", func(c *fiber.Ctx) error {
		return GetSessionsAPI(c, config.GetDB())
	})

	api.Post("/sessions", func(c *fiber.Ctx) error {
		return CreateSessionAPI(c, config.GetDB())
	})

	api.Post("/terms", func(c *fiber.Ctx) error {
		return CreateTermAPI(c, config.GetDB())
	})

	api.Get("/terms/current", func(c *fiber.Ctx) error {
		return GetCurrentTermAPI(c, config.GetDB())
	})

	api.Get("/terms/:id", func(c *fiber.Ctx) error {
		return GetTermAPI(c, config.GetDB())
	})

	api.Get("/terms/:id/next", func(c *fiber.Ctx) error {
		return GetNextTermAPI(c, config.GetDB())
	})

	api.Post("/terms/:id/activate", func(c *fiber.Ctx) error {
		return ActivateTermAPI(c, config.GetDB())
	})
}
