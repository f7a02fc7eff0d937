package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yano-school/app/database"
	"yano-school/app/helpers"
	"yano-school/app/models"
)

var validate = validator.New()

// GetStudentsAPI returns all active students
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetActiveStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
	})
}

// GetStudentByIDAPI returns a single student by ID
func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		return helpers.ErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

type CreateStudentRequest struct {
	StudentNo  string `json:"student_no" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Gender     string `json:"gender" validate:"omitempty,oneof=male female other"`
	ClassLevel string `json:"class_level" validate:"required"`
}

// CreateStudentAPI creates a new student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	student := &models.Student{
		StudentNo:  req.StudentNo,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     models.Gender(req.Gender),
		ClassLevel: req.ClassLevel,
	}
	if err := database.CreateStudent(db, student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student created successfully",
	})
}

type UpdateStudentRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Gender     string `json:"gender" validate:"omitempty,oneof=male female other"`
	ClassLevel string `json:"class_level" validate:"required"`
	IsActive   bool   `json:"is_active"`
}

// UpdateStudentAPI updates an existing student
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	student := &models.Student{
		ID:         c.Params("id"),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     models.Gender(req.Gender),
		ClassLevel: req.ClassLevel,
		IsActive:   req.IsActive,
	}
	if err := database.UpdateStudent(db, student); err != nil {
		return helpers.ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
	})
}
