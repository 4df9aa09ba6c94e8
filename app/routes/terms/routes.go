package terms

import (
	"github.com/gofiber/fiber/v2"
)

func SetupTermsRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/students/:studentId/terms/active", GetActiveTermAPI)
	api.Get("/students/:studentId/terms", GetTermsByStudentAPI)
	api.Post("/students/:studentId/terms", CreateTermAPI)
	api.Get("/terms/:id", GetTermByIDAPI)
	api.Put("/terms/:id", UpdateTermAPI)
	api.Delete("/terms/:id", DeleteTermAPI)
}
