package servicehours

import (
	"github.com/gofiber/fiber/v2"
)

func SetupServiceHoursRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/students/:studentId/service-hours/total", GetServiceHourTotalsAPI)
	api.Get("/students/:studentId/service-hours", GetServiceHoursByStudentAPI)
	api.Post("/students/:studentId/service-hours", CreateServiceHourAPI)
	api.Get("/service-hours/:id", GetServiceHourByIDAPI)
	api.Put("/service-hours/:id", UpdateServiceHourAPI)
	api.Delete("/service-hours/:id", DeleteServiceHourAPI)
}
