package fees

import (
	"database/sql"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetFeeItemsAPI(c *fiber.Ctx) error {
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())

	if !models.ValidSchoolYear(schoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	items, err := database.GetFeeItemsForYear(config.GetDB(), schoolYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee items"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        items,
		"school_year": schoolYear,
	})
}

func GetFeeStatsAPI(c *fiber.Ctx) error {
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())

	stats, err := database.GetFeeStats(config.GetDB(), schoolYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee statistics"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func GetFeeItemAPI(c *fiber.Ctx) error {
	feeItemID := c.Params("id")

	item, err := database.GetFeeItemByID(config.GetDB(), feeItemID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee item"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func CreateFeeItemAPI(c *fiber.Ctx) error {
	var item models.FeeItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if item.SchoolYear == "" {
		item.SchoolYear = config.CurrentSchoolYear()
	}
	if !models.ValidSchoolYear(item.SchoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}
	if item.Scope == "" {
		item.Scope = models.ScopeScoped
	}

	if err := validate.StructPartial(&item, "Name", "Price", "SchoolYear", "Scope"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.CreateFeeItem(config.GetDB(), &item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee item"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func UpdateFeeItemAPI(c *fiber.Ctx) error {
	feeItemID := c.Params("id")

	var item models.FeeItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	item.ID = feeItemID

	if !models.ValidSchoolYear(item.SchoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	if err := validate.StructPartial(&item, "Name", "Price", "SchoolYear", "Scope"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.UpdateFeeItem(config.GetDB(), &item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee item"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

func DeactivateFeeItemAPI(c *fiber.Ctx) error {
	feeItemID := c.Params("id")

	if err := database.SetFeeItemActive(config.GetDB(), feeItemID, false); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate fee item"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee item deactivated",
	})
}

func CreateAssignmentAPI(c *fiber.Ctx) error {
	feeItemID := c.Params("id")

	var assignment models.FeeItemAssignment
	if err := c.BodyParser(&assignment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	assignment.FeeItemID = feeItemID

	if assignment.SchoolYear == "" {
		assignment.SchoolYear = config.CurrentSchoolYear()
	}
	if !models.ValidSchoolYear(assignment.SchoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	if err := database.CreateFeeItemAssignment(config.GetDB(), &assignment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    assignment,
	})
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	assignmentID := c.Params("id")

	if err := database.DeleteFeeItemAssignment(config.GetDB(), assignmentID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assignment"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Assignment removed",
	})
}

// GetStudentBalanceAPI runs the full balance pipeline for one student.
func GetStudentBalanceAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())

	if !models.ValidSchoolYear(schoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	summary, err := database.GetStudentBalanceSummary(config.GetDB(), studentID, schoolYear)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute balance"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
