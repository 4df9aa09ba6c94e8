package gradingschemes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupGradingSchemesRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/students/:studentId/grading-schemes", GetGradingSchemesByStudentAPI)
	api.Post("/students/:studentId/grading-schemes", CreateGradingSchemeAPI)
	api.Get("/grading-schemes/:id", GetGradingSchemeByIDAPI)
	api.Put("/grading-schemes/:id", UpdateGradingSchemeAPI)
	api.Delete("/grading-schemes/:id", DeleteGradingSchemeAPI)
}
