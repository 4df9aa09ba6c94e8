package students

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pmoore111/homeschoolapp/app/config"
	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
	"github.com/pmoore111/homeschoolapp/app/validation"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		log.Printf("Error fetching students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Error fetching student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	if student == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type StudentRequest struct {
		FirstName   string  `json:"firstName" validate:"required"`
		LastName    string  `json:"lastName" validate:"required"`
		GradeLevel  *string `json:"gradeLevel"`
		DateOfBirth *string `json:"dateOfBirth"`
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		GradeLevel: req.GradeLevel,
	}
	if req.DateOfBirth != nil {
		if !validation.IsValidDate(*req.DateOfBirth) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth. Use YYYY-MM-DD"})
		}
		var dob models.CustomDate
		if err := dob.UnmarshalJSON([]byte(`"` + *req.DateOfBirth + `"`)); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth. Use YYYY-MM-DD"})
		}
		student.DateOfBirth = &dob
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		log.Printf("Error creating student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	type StudentUpdateRequest struct {
		FirstName   *string `json:"firstName"`
		LastName    *string `json:"lastName"`
		GradeLevel  *string `json:"gradeLevel"`
		DateOfBirth *string `json:"dateOfBirth"`
	}

	var req StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Error fetching student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	if student == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.GradeLevel != nil {
		student.GradeLevel = req.GradeLevel
	}
	if req.DateOfBirth != nil {
		if !validation.IsValidDate(*req.DateOfBirth) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth. Use YYYY-MM-DD"})
		}
		var dob models.CustomDate
		if err := dob.UnmarshalJSON([]byte(`"` + *req.DateOfBirth + `"`)); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth. Use YYYY-MM-DD"})
		}
		student.DateOfBirth = &dob
	}

	if err := database.UpdateStudent(db, student); err != nil {
		log.Printf("Error updating student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(student)
}

// DeleteStudentAPI removes the student and, through the schema's cascades,
// everything that belongs to them.
func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Error deleting student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.SendStatus(204)
}
