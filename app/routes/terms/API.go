package terms

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/validation"
)

func GetTermsByStudentAPI(c *fiber.Ctx) error {
	terms, err := database.GetTermsByStudent(config.GetDB(), c.Params("studentId"))
	if err != nil {
		log.Printf("Error fetching terms: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch terms"})
	}

	return c.JSON(fiber.Map{
		"terms": terms,
		"count": len(terms),
	})
}

// GetActiveTermAPI returns the most recently started active term, or null.
// The data model allows several active terms; this endpoint picks one for
// UI convenience.
func GetActiveTermAPI(c *fiber.Ctx) error {
	term, err := database.GetActiveTerm(config.GetDB(), c.Params("studentId"))
	if err != nil {
		log.Printf("Error fetching active term: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch active term"})
	}
	return c.JSON(term)
}

func GetTermByIDAPI(c *fiber.Ctx) error {
	term, err := database.GetTermByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching term: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch term"})
	}
	if term == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Term not found"})
	}
	return c.JSON(term)
}

func CreateTermAPI(c *fiber.Ctx) error {
	type TermRequest struct {
		Name      string `json:"name" validate:"required"`
		StartDate string `json:"startDate" validate:"required"`
		EndDate   string `json:"endDate" validate:"required"`
		IsActive  *bool  `json:"isActive"`
	}

	var req TermRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validation.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	term := &models.Term{
		StudentID: c.Params("studentId"),
		Name:      req.Name,
		IsActive:  true,
	}
	if req.IsActive != nil {
		term.IsActive = *req.IsActive
	}
	if err := term.StartDate.UnmarshalJSON([]byte(`"` + req.StartDate + `"`)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date. Use YYYY-MM-DD"})
	}
	if err := term.EndDate.UnmarshalJSON([]byte(`"` + req.EndDate + `"`)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date. Use YYYY-MM-DD"})
	}

	if err := database.CreateTerm(config.GetDB(), term); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Student does not exist"})
		}
		log.Printf("Error creating term: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create term"})
	}
	return c.JSON(term)
}

// UpdateTermAPI applies a partial update. The owning student cannot be
// changed here.
func UpdateTermAPI(c *fiber.Ctx) error {
	type TermUpdateRequest struct {
		Name      *string `json:"name"`
		StartDate *string `json:"startDate"`
		EndDate   *string `json:"endDate"`
		IsActive  *bool   `json:"isActive"`
	}

	var req TermUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	term, err := database.GetTermByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Error fetching term: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch term"})
	}
	if term == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Term not found"})
	}

	if req.Name != nil {
		term.Name = *req.Name
	}
	if req.StartDate != nil {
		if err := term.StartDate.UnmarshalJSON([]byte(`"` + *req.StartDate + `"`)); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start date. Use YYYY-MM-DD"})
		}
	}
	if req.EndDate != nil {
		if err := term.EndDate.UnmarshalJSON([]byte(`"` + *req.EndDate + `"`)); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end date. Use YYYY-MM-DD"})
		}
	}
	if req.IsActive != nil {
		term.IsActive = *req.IsActive
	}
	if term.StartDate.Time.After(term.EndDate.Time) {
		return c.Status(400).JSON(fiber.Map{"error": "start date must be before end date"})
	}

	if err := database.UpdateTerm(db, term); err != nil {
		log.Printf("Error updating term: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update term"})
	}
	return c.JSON(term)
}

func DeleteTermAPI(c *fiber.Ctx) error {
	if err := database.DeleteTerm(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Error deleting term: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete term"})
	}
	return c.SendStatus(204)
}
