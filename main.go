package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/routes/assignments"
	"github.com/pmoore111/homeschoolapp/app/routes/attendance"
	"github.com/pmoore111/homeschoolapp/app/routes/dashboard"
	"github.com/pmoore111/homeschoolapp/app/routes/grades"
	"github.com/pmoore111/homeschoolapp/app/routes/gradingschemes"
	"github.com/pmoore111/homeschoolapp/app/routes/servicehours"
	"github.com/pmoore111/homeschoolapp/app/routes/students"
	"github.com/pmoore111/homeschoolapp/app/routes/subjects"
	"github.com/pmoore111/homeschoolapp/app/routes/terms"
)

// errorHandler turns any *fiber.Error into the API's JSON error shape
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	students.SetupStudentsRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	terms.SetupTermsRoutes(app)
	assignments.SetupAssignmentsRoutes(app)
	grades.SetupGradesRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	servicehours.SetupServiceHoursRoutes(app)
	gradingschemes.SetupGradingSchemesRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
