package main

import (
	"yano-school/app/config"
	"yano-school/app/database"
	applog "yano-school/app/logger"
	"yano-school/app/routes/academic"
	"yano-school/app/routes/auth"
	"yano-school/app/routes/billing"
	"yano-school/app/routes/feestructure"
	"yano-school/app/routes/ledger"
	"yano-school/app/routes/payments"
	"yano-school/app/routes/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// apiErrorHandler shapes every error that escapes a handler into the
// standard envelope.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	applog.Init("yano-school")
	defer applog.Sync()

	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		applog.Log.Fatalw("failed to run migrations", "error", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	academic.SetupAcademicRoutes(app)
	students.SetupStudentsRoutes(app)
	feestructure.SetupFeeStructureRoutes(app)
	billing.SetupBillingRoutes(app)
	payments.SetupPaymentRoutes(app)
	ledger.SetupLedgerRoutes(app)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	addr := ":" + config.AppConfig.Port
	applog.Log.Infow("server starting", "addr", addr)
	applog.Log.Fatal(app.Listen(addr))
}
