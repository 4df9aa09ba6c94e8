package attendance

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Reports before the parameterized CRUD routes so /report and
	// /statistics are not swallowed by /:id
	api.Get("/students/:studentId/attendance/statistics", GetStatisticsAPI)
	api.Get("/students/:studentId/attendance/report/monthly", GetMonthlyReportAPI)
	api.Get("/students/:studentId/attendance/report", GetRangeReportAPI)

	api.Get("/students/:studentId/attendance", GetAttendanceByStudentAPI)
	api.Post("/students/:studentId/attendance", CreateAttendanceAPI)
	api.Get("/attendance/:id", GetAttendanceByIDAPI)
	api.Put("/attendance/:id", UpdateAttendanceAPI)
	api.Delete("/attendance/:id", DeleteAttendanceAPI)
}
