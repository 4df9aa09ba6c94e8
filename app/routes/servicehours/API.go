package servicehours

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/validation"
)

func GetServiceHoursByStudentAPI(c *fiber.Ctx) error {
	serviceHours, err := database.GetServiceHoursByStudent(config.GetDB(), c.Params("studentId"))
	if err != nil {
		log.Printf("Error fetching service hours: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch service hours"})
	}

	return c.JSON(fiber.Map{
		"serviceHours": serviceHours,
		"count":        len(serviceHours),
	})
}

func GetServiceHourTotalsAPI(c *fiber.Ctx) error {
	total, byCategory, err := database.GetServiceHourTotals(config.GetDB(), c.Params("studentId"))
	if err != nil {
		log.Printf("Error totaling service hours: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to total service hours"})
	}

	return c.JSON(fiber.Map{
		"totalHours": total,
		"byCategory": byCategory,
	})
}

func GetServiceHourByIDAPI(c *fiber.Ctx) error {
	sh, err := database.GetServiceHourByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching service hour: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch service hour"})
	}
	if sh == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Service hour not found"})
	}
	return c.JSON(sh)
}

func CreateServiceHourAPI(c *fiber.Ctx) error {
	type ServiceHourRequest struct {
		Date        string  `json:"date" validate:"required"`
		Hours       float64 `json:"hours" validate:"required,gt=0"`
		Description string  `json:"description" validate:"required"`
		Category    string  `json:"category"`
	}

	var req ServiceHourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !validation.IsValidDate(req.Date) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	sh := &models.ServiceHour{
		StudentID:   c.Params("studentId"),
		Hours:       req.Hours,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := sh.Date.UnmarshalJSON([]byte(`"` + req.Date + `"`)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	if err := database.CreateServiceHour(config.GetDB(), sh); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Student does not exist"})
		}
		log.Printf("Error creating service hour: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create service hour"})
	}
	return c.JSON(sh)
}

// UpdateServiceHourAPI applies a partial update. The owning student cannot
// be changed here.
func UpdateServiceHourAPI(c *fiber.Ctx) error {
	type ServiceHourUpdateRequest struct {
		Date        *string  `json:"date"`
		Hours       *float64 `json:"hours" validate:"omitempty,gt=0"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"`
	}

	var req ServiceHourUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	sh, err := database.GetServiceHourByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Error fetching service hour: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch service hour"})
	}
	if sh == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Service hour not found"})
	}

	if req.Date != nil {
		if !validation.IsValidDate(*req.Date) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		if err := sh.Date.UnmarshalJSON([]byte(`"` + *req.Date + `"`)); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
	}
	if req.Hours != nil {
		sh.Hours = *req.Hours
	}
	if req.Description != nil {
		sh.Description = *req.Description
	}
	if req.Category != nil {
		sh.Category = *req.Category
	}

	if err := database.UpdateServiceHour(db, sh); err != nil {
		log.Printf("Error updating service hour: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update service hour"})
	}
	return c.JSON(sh)
}

func DeleteServiceHourAPI(c *fiber.Ctx) error {
	if err := database.DeleteServiceHour(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Error deleting service hour: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete service hour"})
	}
	return c.SendStatus(204)
}
