package dashboard

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/routes/attendance"
	"github.com/pmoore111/homeschoolapp/app/routes/grades"
)

type subjectOverview struct {
	Subject *models.Subject             `json:"subject"`
	Summary *models.SubjectGradeSummary `json:"summary"`
}

// GetStudentOverviewAPI assembles the dashboard for one student: per-subject
// grade summaries, GPA, the last 30 days of attendance, service hour totals
// and the active terms.
func GetStudentOverviewAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := c.Params("studentId")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		log.Printf("Error fetching student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	if student == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	subjects, err := database.GetSubjectsByStudent(db, studentID)
	if err != nil {
		log.Printf("Error fetching subjects: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	overviews := make([]subjectOverview, 0, len(subjects))
	for _, subject := range subjects {
		summary, err := grades.GetSubjectGradeSummary(db, subject.ID, nil)
		if err != nil {
			log.Printf("Error summarizing subject %s: %v", subject.ID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build overview"})
		}
		overviews = append(overviews, subjectOverview{Subject: subject, Summary: summary})
	}

	gpa, err := grades.CalculateOverallGPA(db, studentID, nil)
	if err != nil {
		log.Printf("Error calculating GPA: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build overview"})
	}

	end := time.Now()
	start := end.AddDate(0, 0, -30)
	stats, err := attendance.GetStatistics(db, studentID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		log.Printf("Error fetching attendance statistics: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build overview"})
	}

	totalHours, hoursByCategory, err := database.GetServiceHourTotals(db, studentID)
	if err != nil {
		log.Printf("Error totaling service hours: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build overview"})
	}

	activeTerms, err := database.GetActiveTerms(db, studentID)
	if err != nil {
		log.Printf("Error fetching active terms: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build overview"})
	}

	counts, err := database.GetStudentCounts(db, studentID)
	if err != nil {
		log.Printf("Error counting student records: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build overview"})
	}

	return c.JSON(fiber.Map{
		"student":    student,
		"gpa":        gpa,
		"subjects":   overviews,
		"counts":     counts,
		"attendance": stats,
		"serviceHours": fiber.Map{
			"totalHours": totalHours,
			"byCategory": hoursByCategory,
		},
		"activeTerms": activeTerms,
	})
}
