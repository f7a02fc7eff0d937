package students

import (
	"github.com/gofiber/fiber/v2"

	"yano-school/app/config"
	"yano-school/app/routes/auth"
)

// SetupStudentsRoutes sets up the student roster routes
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetStudentByIDAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, config.GetDB())
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})
}
