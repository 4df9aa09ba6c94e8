package subjects

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/validation"
)

func GetSubjectsByStudentAPI(c *fiber.Ctx) error {
	subjects, err := database.GetSubjectsByStudent(config.GetDB(), c.Params("studentId"))
	if err != nil {
		log.Printf("Error fetching subjects: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	return c.JSON(fiber.Map{
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func GetSubjectByIDAPI(c *fiber.Ctx) error {
	subject, err := database.GetSubjectByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}
	if subject == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
	}
	return c.JSON(subject)
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	type SubjectRequest struct {
		Name     string `json:"name" validate:"required"`
		IsActive *bool  `json:"isActive"`
	}

	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subject := &models.Subject{
		StudentID: c.Params("studentId"),
		Name:      req.Name,
		IsActive:  true,
	}
	if req.IsActive != nil {
		subject.IsActive = *req.IsActive
	}

	if err := database.CreateSubject(config.GetDB(), subject); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Student does not exist"})
		}
		log.Printf("Error creating subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}
	return c.JSON(subject)
}

// UpdateSubjectAPI applies a partial update. The owning student cannot be
// changed here.
func UpdateSubjectAPI(c *fiber.Ctx) error {
	type SubjectUpdateRequest struct {
		Name     *string `json:"name"`
		IsActive *bool   `json:"isActive"`
	}

	var req SubjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	subject, err := database.GetSubjectByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Error fetching subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}
	if subject == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.IsActive != nil {
		subject.IsActive = *req.IsActive
	}

	if err := database.UpdateSubject(db, subject); err != nil {
		log.Printf("Error updating subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}
	return c.JSON(subject)
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	if err := database.DeleteSubject(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Error deleting subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	return c.SendStatus(204)
}
