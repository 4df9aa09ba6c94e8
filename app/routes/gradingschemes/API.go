package gradingschemes

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/validation"
)

func GetGradingSchemesByStudentAPI(c *fiber.Ctx) error {
	schemes, err := database.GetGradingSchemesByStudent(config.GetDB(), c.Params("studentId"))
	if err != nil {
		log.Printf("Error fetching grading schemes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grading schemes"})
	}

	return c.JSON(fiber.Map{
		"gradingSchemes": schemes,
		"count":          len(schemes),
	})
}

func GetGradingSchemeByIDAPI(c *fiber.Ctx) error {
	scheme, err := database.GetGradingSchemeByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching grading scheme: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grading scheme"})
	}
	if scheme == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Grading scheme not found"})
	}
	return c.JSON(scheme)
}

// CreateGradingSchemeAPI stores a scheme for the student, optionally bound
// to one subject. Cutoffs and weights are accepted either as JSON objects
// or as JSON strings containing an object, validated, and persisted in
// canonical form.
func CreateGradingSchemeAPI(c *fiber.Ctx) error {
	type GradingSchemeRequest struct {
		SubjectID       *string         `json:"subjectId" validate:"omitempty,uuid"`
		LetterCutoffs   json.RawMessage `json:"letterCutoffs" validate:"required"`
		CategoryWeights json.RawMessage `json:"categoryWeights" validate:"required"`
	}

	var req GradingSchemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.LetterCutoffs) == 0 || len(req.CategoryWeights) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "letterCutoffs and categoryWeights are required"})
	}

	cutoffs, err := validation.NormalizeLetterCutoffs(req.LetterCutoffs)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	weights, err := validation.NormalizeCategoryWeights(req.CategoryWeights)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	scheme := &models.GradingScheme{
		StudentID:       c.Params("studentId"),
		SubjectID:       req.SubjectID,
		LetterCutoffs:   cutoffs,
		CategoryWeights: weights,
	}

	if err := database.CreateGradingScheme(config.GetDB(), scheme); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Student or subject does not exist"})
		}
		log.Printf("Error creating grading scheme: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create grading scheme"})
	}
	return c.JSON(scheme)
}

func UpdateGradingSchemeAPI(c *fiber.Ctx) error {
	type GradingSchemeUpdateRequest struct {
		SubjectID       *string         `json:"subjectId" validate:"omitempty,uuid"`
		LetterCutoffs   json.RawMessage `json:"letterCutoffs"`
		CategoryWeights json.RawMessage `json:"categoryWeights"`
	}

	var req GradingSchemeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	scheme, err := database.GetGradingSchemeByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Error fetching grading scheme: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grading scheme"})
	}
	if scheme == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Grading scheme not found"})
	}

	if req.SubjectID != nil {
		scheme.SubjectID = req.SubjectID
	}
	if len(req.LetterCutoffs) > 0 {
		cutoffs, err := validation.NormalizeLetterCutoffs(req.LetterCutoffs)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		scheme.LetterCutoffs = cutoffs
	}
	if len(req.CategoryWeights) > 0 {
		weights, err := validation.NormalizeCategoryWeights(req.CategoryWeights)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		scheme.CategoryWeights = weights
	}

	if err := database.UpdateGradingScheme(db, scheme); err != nil {
		log.Printf("Error updating grading scheme: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update grading scheme"})
	}
	return c.JSON(scheme)
}

func DeleteGradingSchemeAPI(c *fiber.Ctx) error {
	if err := database.DeleteGradingScheme(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Error deleting grading scheme: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete grading scheme"})
	}
	return c.SendStatus(204)
}
