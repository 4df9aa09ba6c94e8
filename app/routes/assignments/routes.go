package assignments

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentsRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/subjects/:subjectId/assignments", GetAssignmentsBySubjectAPI)
	api.Post("/subjects/:subjectId/assignments", CreateAssignmentAPI)
	api.Get("/assignments/:id", GetAssignmentByIDAPI)
	api.Put("/assignments/:id", UpdateAssignmentAPI)
	api.Delete("/assignments/:id", DeleteAssignmentAPI)
}
