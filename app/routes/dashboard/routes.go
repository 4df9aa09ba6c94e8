package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/students/:studentId/overview", GetStudentOverviewAPI)
}
