package assignments

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/validation"
)

func GetAssignmentsBySubjectAPI(c *fiber.Ctx) error {
	subjectID := c.Params("subjectId")

	var termID *string
	if t := c.Query("termId"); t != "" {
		termID = &t
	}

	assignments, err := database.GetAssignmentsBySubject(config.GetDB(), subjectID, termID)
	if err != nil {
		log.Printf("Error fetching assignments: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
	}

	return c.JSON(fiber.Map{
		"assignments": assignments,
		"count":       len(assignments),
	})
}

func GetAssignmentByIDAPI(c *fiber.Ctx) error {
	assignment, err := database.GetAssignmentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching assignment: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignment"})
	}
	if assignment == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
	}
	return c.JSON(assignment)
}

func CreateAssignmentAPI(c *fiber.Ctx) error {
	type AssignmentRequest struct {
		TermID       string   `json:"termId" validate:"required,uuid"`
		Title        string   `json:"title" validate:"required"`
		Category     string   `json:"category" validate:"required,oneof=Homework Quiz Test Project Practice Lesson"`
		MaxPoints    *float64 `json:"maxPoints" validate:"omitempty,gt=0"`
		DateAssigned *string  `json:"dateAssigned"`
		DateDue      *string  `json:"dateDue"`
		LessonType   *string  `json:"lessonType" validate:"omitempty,oneof=practice quiz test lesson"`
		Status       *string  `json:"status" validate:"omitempty,oneof=unfamiliar familiar proficient mastered 'not started' attempted"`
		IsKhanLesson bool     `json:"isKhanLesson"`
	}

	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	assignment := &models.Assignment{
		SubjectID:    c.Params("subjectId"),
		TermID:       req.TermID,
		Title:        req.Title,
		Category:     req.Category,
		MaxPoints:    req.MaxPoints,
		LessonType:   req.LessonType,
		Status:       req.Status,
		IsKhanLesson: req.IsKhanLesson,
	}

	var err error
	if assignment.DateAssigned, err = parseOptionalDate(req.DateAssigned); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dateAssigned. Use YYYY-MM-DD"})
	}
	if assignment.DateDue, err = parseOptionalDate(req.DateDue); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid dateDue. Use YYYY-MM-DD"})
	}

	if err := database.CreateAssignment(config.GetDB(), assignment); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Subject or term does not exist"})
		}
		log.Printf("Error creating assignment: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment"})
	}
	return c.JSON(assignment)
}

// UpdateAssignmentAPI applies a partial update. The owning subject and term
// cannot be changed here.
func UpdateAssignmentAPI(c *fiber.Ctx) error {
	type AssignmentUpdateRequest struct {
		Title        *string  `json:"title"`
		Category     *string  `json:"category" validate:"omitempty,oneof=Homework Quiz Test Project Practice Lesson"`
		MaxPoints    *float64 `json:"maxPoints" validate:"omitempty,gt=0"`
		DateAssigned *string  `json:"dateAssigned"`
		DateDue      *string  `json:"dateDue"`
		LessonType   *string  `json:"lessonType" validate:"omitempty,oneof=practice quiz test lesson"`
		Status       *string  `json:"status" validate:"omitempty,oneof=unfamiliar familiar proficient mastered 'not started' attempted"`
		IsKhanLesson *bool    `json:"isKhanLesson"`
	}

	var req AssignmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	assignment, err := database.GetAssignmentByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Error fetching assignment: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignment"})
	}
	if assignment == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Category != nil {
		assignment.Category = *req.Category
	}
	if req.MaxPoints != nil {
		assignment.MaxPoints = req.MaxPoints
	}
	if req.DateAssigned != nil {
		if assignment.DateAssigned, err = parseOptionalDate(req.DateAssigned); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid dateAssigned. Use YYYY-MM-DD"})
		}
	}
	if req.DateDue != nil {
		if assignment.DateDue, err = parseOptionalDate(req.DateDue); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid dateDue. Use YYYY-MM-DD"})
		}
	}
	if req.LessonType != nil {
		assignment.LessonType = req.LessonType
	}
	if req.Status != nil {
		assignment.Status = req.Status
	}
	if req.IsKhanLesson != nil {
		assignment.IsKhanLesson = *req.IsKhanLesson
	}

	if err := database.UpdateAssignment(db, assignment); err != nil {
		log.Printf("Error updating assignment: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update assignment"})
	}
	return c.JSON(assignment)
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	if err := database.DeleteAssignment(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Error deleting assignment: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assignment"})
	}
	return c.SendStatus(204)
}

func parseOptionalDate(s *string) (*models.CustomDate, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	var date models.CustomDate
	if err := date.UnmarshalJSON([]byte(`"` + *s + `"`)); err != nil {
		return nil, err
	}
	return &date, nil
}
