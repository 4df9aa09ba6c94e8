package grades

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/validation"
)

func GetGradesByAssignmentAPI(c *fiber.Ctx) error {
	assignmentID := c.Params("assignmentId")

	grades, err := database.GetGradesByAssignment(config.GetDB(), assignmentID)
	if err != nil {
		log.Printf("Error fetching grades: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grades"})
	}

	return c.JSON(fiber.Map{
		"grades": grades,
		"count":  len(grades),
	})
}

func GetGradeByIDAPI(c *fiber.Ctx) error {
	grade, err := database.GetGradeByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching grade: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grade"})
	}
	if grade == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Grade not found"})
	}
	return c.JSON(grade)
}

func CreateGradeAPI(c *fiber.Ctx) error {
	type GradeRequest struct {
		PointsEarned *float64 `json:"pointsEarned" validate:"omitempty,gte=0"`
		Comment      *string  `json:"comment"`
	}

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	grade := &models.Grade{
		AssignmentID: c.Params("assignmentId"),
		PointsEarned: req.PointsEarned,
		Comment:      req.Comment,
	}

	if err := database.CreateGrade(config.GetDB(), grade); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Assignment does not exist"})
		}
		log.Printf("Error creating grade: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create grade"})
	}
	return c.JSON(grade)
}

// UpdateGradeAPI applies a partial update. The owning assignment cannot be
// changed here.
func UpdateGradeAPI(c *fiber.Ctx) error {
	type GradeUpdateRequest struct {
		PointsEarned *float64 `json:"pointsEarned" validate:"omitempty,gte=0"`
		Comment      *string  `json:"comment"`
	}

	var req GradeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	grade, err := database.GetGradeByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Error fetching grade: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grade"})
	}
	if grade == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Grade not found"})
	}

	if req.PointsEarned != nil {
		grade.PointsEarned = req.PointsEarned
	}
	if req.Comment != nil {
		grade.Comment = req.Comment
	}

	if err := database.UpdateGrade(db, grade); err != nil {
		log.Printf("Error updating grade: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update grade"})
	}
	return c.JSON(grade)
}

func DeleteGradeAPI(c *fiber.Ctx) error {
	if err := database.DeleteGrade(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Error deleting grade: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete grade"})
	}
	return c.SendStatus(204)
}

func GetSubjectGradeSummaryAPI(c *fiber.Ctx) error {
	subjectID := c.Params("subjectId")

	var termID *string
	if t := c.Query("termId"); t != "" {
		termID = &t
	}

	summary, err := GetSubjectGradeSummary(config.GetDB(), subjectID, termID)
	if err != nil {
		log.Printf("Error calculating grade summary: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to calculate grade summary"})
	}
	return c.JSON(summary)
}

func GetStudentGPAAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var termID *string
	if t := c.Query("termId"); t != "" {
		termID = &t
	}

	gpa, err := CalculateOverallGPA(config.GetDB(), studentID, termID)
	if err != nil {
		log.Printf("Error calculating GPA: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to calculate GPA"})
	}

	// gpa stays null when no subject average is computable
	return c.JSON(fiber.Map{"gpa": gpa})
}
