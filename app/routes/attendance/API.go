package attendance

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/validation"
)

func GetAttendanceByStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	records, err := database.GetAttendanceByStudent(config.GetDB(), studentID, startDate, endDate)
	if err != nil {
		log.Printf("Error fetching attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
	})
}

func GetAttendanceByIDAPI(c *fiber.Ctx) error {
	record, err := database.GetAttendanceByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching attendance record: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance record"})
	}
	if record == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	return c.JSON(record)
}

func CreateAttendanceAPI(c *fiber.Ctx) error {
	type AttendanceRequest struct {
		Date      string  `json:"date" validate:"required"`
		Status    string  `json:"status" validate:"required,oneof=Present Absent Excused"`
		TimeOfDay *string `json:"timeOfDay"`
		Minutes   *int    `json:"minutes" validate:"omitempty,gte=0"`
		Notes     *string `json:"notes"`
	}

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !validation.IsValidDate(req.Date) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	var date models.CustomDate
	if err := date.UnmarshalJSON([]byte(`"` + req.Date + `"`)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	record := &models.Attendance{
		StudentID: c.Params("studentId"),
		Date:      date,
		Status:    models.AttendanceStatus(req.Status),
		TimeOfDay: req.TimeOfDay,
		Minutes:   req.Minutes,
		Notes:     req.Notes,
	}

	if err := database.CreateAttendance(config.GetDB(), record); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Attendance already recorded for this date"})
		}
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Student does not exist"})
		}
		log.Printf("Error creating attendance record: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create attendance record"})
	}
	return c.JSON(record)
}

// UpdateAttendanceAPI applies a partial update. The owning student cannot
// be changed here.
func UpdateAttendanceAPI(c *fiber.Ctx) error {
	type AttendanceUpdateRequest struct {
		Date      *string `json:"date"`
		Status    *string `json:"status" validate:"omitempty,oneof=Present Absent Excused"`
		TimeOfDay *string `json:"timeOfDay"`
		Minutes   *int    `json:"minutes" validate:"omitempty,gte=0"`
		Notes     *string `json:"notes"`
	}

	var req AttendanceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	record, err := database.GetAttendanceByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Error fetching attendance record: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance record"})
	}
	if record == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
	}

	if req.Date != nil {
		if !validation.IsValidDate(*req.Date) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		var date models.CustomDate
		if err := date.UnmarshalJSON([]byte(`"` + *req.Date + `"`)); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		record.Date = date
	}
	if req.Status != nil {
		record.Status = models.AttendanceStatus(*req.Status)
	}
	if req.TimeOfDay != nil {
		record.TimeOfDay = req.TimeOfDay
	}
	if req.Minutes != nil {
		record.Minutes = req.Minutes
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := database.UpdateAttendance(db, record); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Attendance already recorded for this date"})
		}
		log.Printf("Error updating attendance record: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update attendance record"})
	}
	return c.JSON(record)
}

func DeleteAttendanceAPI(c *fiber.Ctx) error {
	if err := database.DeleteAttendance(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Error deleting attendance record: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete attendance record"})
	}
	return c.SendStatus(204)
}

func GetStatisticsAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if err := validation.ValidateDateRange(startDate, endDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	stats, err := GetStatistics(config.GetDB(), studentID, startDate, endDate)
	if err != nil {
		log.Printf("Error fetching attendance statistics: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance statistics"})
	}
	return c.JSON(stats)
}

func GetMonthlyReportAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	year := c.QueryInt("year")
	month := c.QueryInt("month")

	if err := validation.ValidateYearMonth(year, month); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := GetMonthlyReport(config.GetDB(), studentID, year, month)
	if err != nil {
		log.Printf("Error fetching monthly attendance report: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly attendance report"})
	}
	return c.JSON(report)
}

func GetRangeReportAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if startDate == "" || endDate == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Both startDate and endDate are required"})
	}
	if err := validation.ValidateDateRange(startDate, endDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := GetRangeReport(config.GetDB(), studentID, startDate, endDate)
	if err != nil {
		log.Printf("Error fetching attendance report: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance report"})
	}
	return c.JSON(report)
}
