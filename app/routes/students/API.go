package students

import (
	"database/sql"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetStudentsAPI returns students with filtering support and pagination
func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:       c.Query("search"),
		Status:       c.Query("status"),
		StudentType:  c.Query("student_type"),
		DepartmentID: c.Query("department_id"),
		YearLevelID:  c.Query("year_level_id"),
		SectionID:    c.Query("section_id"),
		SortBy:       c.Query("sort_by", "last_name"),
		SortOrder:    c.Query("sort_order", "asc"),
		Limit:        c.QueryInt("limit", 10),
		Offset:       c.QueryInt("offset", 0),
	}

	students, totalCount, err := database.GetStudentsWithFiltersAndPagination(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": totalCount,
	})
}

// GetStudentsStatsAPI returns students statistics for the students page
func GetStudentsStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetStudentsStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch students statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func GetStudentRequirementsAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	requirements, err := database.GetStudentRequirements(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requirements"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    requirements,
	})
}

// CreateStudentAPI enrolls a student and assigns the requirements that apply
// to their classification.
func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if student.StudentNo == "" || student.FirstName == "" || student.LastName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student number, first name and last name are required"})
	}

	switch student.StudentType {
	case models.NewEnrollee, models.Transferee, models.Returnee:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student type"})
	}

	if err := validate.StructPartial(&student, "StudentNo", "FirstName", "LastName", "StudentType"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student", "details": err.Error()})
	}

	assignedCount, err := database.AssignRequirementsToStudent(config.GetDB(), student.ID, student.StudentType)
	if err != nil {
		// Enrollment succeeded; surface the assignment failure without rolling back
		return c.Status(201).JSON(fiber.Map{
			"success": true,
			"data":    student,
			"warning": "Student created but requirement assignment failed",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":               true,
		"data":                  student,
		"requirements_assigned": assignedCount,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	student.ID = studentID

	switch student.StudentType {
	case models.NewEnrollee, models.Transferee, models.Returnee:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student type"})
	}

	if err := database.UpdateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := database.DeleteStudent(config.GetDB(), studentID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deactivated",
	})
}

func GetDepartmentsAPI(c *fiber.Ctx) error {
	departments, err := database.GetAllDepartments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch departments"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    departments,
	})
}

func GetYearLevelsAPI(c *fiber.Ctx) error {
	yearLevels, err := database.GetYearLevels(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch year levels"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    yearLevels,
	})
}

func GetSectionsAPI(c *fiber.Ctx) error {
	sections, err := database.GetSections(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sections"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sections,
	})
}
