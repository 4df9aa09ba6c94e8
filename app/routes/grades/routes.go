package grades

import (
	"github.com/gofiber/fiber/v2"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Grade CRUD
	api.Get("/assignments/:assignmentId/grades", GetGradesByAssignmentAPI)
	api.Post("/assignments/:assignmentId/grades", CreateGradeAPI)
	api.Get("/grades/:id", GetGradeByIDAPI)
	api.Put("/grades/:id", UpdateGradeAPI)
	api.Delete("/grades/:id", DeleteGradeAPI)

	// Aggregation
	api.Get("/subjects/:subjectId/grades/summary", GetSubjectGradeSummaryAPI)
	api.Get("/students/:studentId/gpa", GetStudentGPAAPI)
}
