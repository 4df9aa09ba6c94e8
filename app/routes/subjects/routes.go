package subjects

import (
	"github.com/gofiber/fiber/v2"
)

func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/students/:studentId/subjects", GetSubjectsByStudentAPI)
	api.Post("/students/:studentId/subjects", CreateSubjectAPI)
	api.Get("/subjects/:id", GetSubjectByIDAPI)
	api.Put("/subjects/:id", UpdateSubjectAPI)
	api.Delete("/subjects/:id", DeleteSubjectAPI)
}
