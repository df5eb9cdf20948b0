package requirements

import (
	"database/sql"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetRequirementsAPI(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("include_inactive", false)

	requirements, err := database.GetRequirements(config.GetDB(), includeInactive)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requirements"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    requirements,
	})
}

// CreateRequirementAPI creates a catalog entry and assigns it to existing
// students matching its applies_to flags. A requirement with no flags is
// created but assigned to nobody.
func CreateRequirementAPI(c *fiber.Ctx) error {
	var requirement models.Requirement
	if err := c.BodyParser(&requirement); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if requirement.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Requirement name is required"})
	}

	if err := database.CreateRequirement(config.GetDB(), &requirement); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create requirement"})
	}

	assignedCount, err := services.AssignRequirementToExistingStudents(config.GetDB(), &requirement)
	if err != nil {
		return c.Status(201).JSON(fiber.Map{
			"success": true,
			"data":    requirement,
			"warning": "Requirement created but assignment failed: " + err.Error(),
		})
	}

	response := fiber.Map{
		"success":        true,
		"data":           requirement,
		"assigned_count": assignedCount,
	}
	if !requirement.HasApplicability() {
		response["warning"] = "Requirement has no applicability flags and was not assigned to any student"
	}

	return c.Status(201).JSON(response)
}

func UpdateRequirementAPI(c *fiber.Ctx) error {
	requirementID := c.Params("id")

	var requirement models.Requirement
	if err := c.BodyParser(&requirement); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	requirement.ID = requirementID

	if err := database.UpdateRequirement(config.GetDB(), &requirement); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update requirement"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    requirement,
	})
}

// AssignRequirementAPI re-runs auto-assignment for one requirement. Safe to
// call repeatedly; students already holding the requirement are skipped.
func AssignRequirementAPI(c *fiber.Ctx) error {
	requirementID := c.Params("id")

	requirement, err := database.GetRequirementByID(config.GetDB(), requirementID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Requirement not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requirement"})
	}

	assignedCount, err := services.AssignRequirementToExistingStudents(config.GetDB(), requirement)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign requirement"})
	}

	response := fiber.Map{
		"success":        true,
		"assigned_count": assignedCount,
	}
	if !requirement.HasApplicability() {
		response["warning"] = "Requirement has no applicability flags and was not assigned to any student"
	}

	return c.JSON(response)
}

func SubmitRequirementAPI(c *fiber.Ctx) error {
	studentRequirementID := c.Params("id")

	type SubmitRequest struct {
		FilePath *string `json:"file_path"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.SubmitStudentRequirement(config.GetDB(), studentRequirementID, req.FilePath); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Requirement submitted",
	})
}

func ReviewRequirementAPI(c *fiber.Ctx) error {
	studentRequirementID := c.Params("id")

	type ReviewRequest struct {
		Status  models.RequirementStatus `json:"status"`
		Remarks *string                  `json:"remarks"`
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	switch req.Status {
	case models.RequirementApproved, models.RequirementRejected:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Status must be approved or rejected"})
	}

	if err := database.ReviewStudentRequirement(config.GetDB(), studentRequirementID, req.Status, req.Remarks); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Requirement reviewed",
	})
}

// GetCompletionAPI returns a student's requirement completion summary.
func GetCompletionAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	rows, err := database.GetStudentRequirements(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requirements"})
	}

	summary := services.ComputeCompletion(rows)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
