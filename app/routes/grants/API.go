package grants

import (
	"database/sql"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetGrantsAPI(c *fiber.Ctx) error {
	grants, err := database.GetGrants(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grants"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    grants,
	})
}

func GetGrantAPI(c *fiber.Ctx) error {
	grantID := c.Params("id")
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())

	grant, err := database.GetGrantByID(config.GetDB(), grantID, schoolYear)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Grant not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grant"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    grant,
	})
}

func CreateGrantAPI(c *fiber.Ctx) error {
	var grant models.Grant
	if err := c.BodyParser(&grant); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if grant.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Grant name is required"})
	}

	if err := database.CreateGrant(config.GetDB(), &grant); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create grant"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    grant,
	})
}

func UpdateGrantAPI(c *fiber.Ctx) error {
	grantID := c.Params("id")

	var grant models.Grant
	if err := c.BodyParser(&grant); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	grant.ID = grantID

	if err := database.UpdateGrant(config.GetDB(), &grant); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update grant"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    grant,
	})
}

// AddRecipientAPI awards a grant to a student for a school year.
func AddRecipientAPI(c *fiber.Ctx) error {
	grantID := c.Params("id")

	var recipient models.GrantRecipient
	if err := c.BodyParser(&recipient); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	recipient.GrantID = grantID

	if recipient.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if recipient.DiscountAmount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Discount amount must be positive"})
	}
	if recipient.SchoolYear == "" {
		recipient.SchoolYear = config.CurrentSchoolYear()
	}
	if !models.ValidSchoolYear(recipient.SchoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	if err := database.AddGrantRecipient(config.GetDB(), &recipient); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    recipient,
	})
}

func UpdateRecipientStatusAPI(c *fiber.Ctx) error {
	recipientID := c.Params("id")

	type StatusRequest struct {
		Status models.GrantStatus `json:"status"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	switch req.Status {
	case models.GrantActive, models.GrantInactive, models.GrantRevoked:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	if err := database.UpdateGrantRecipientStatus(config.GetDB(), recipientID, req.Status); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Award status updated",
	})
}

func UpdateRecipientAmountAPI(c *fiber.Ctx) error {
	recipientID := c.Params("id")

	type AmountRequest struct {
		DiscountAmount float64 `json:"discount_amount"`
	}

	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.DiscountAmount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Discount amount must be positive"})
	}

	if err := database.UpdateGrantRecipientAmount(config.GetDB(), recipientID, req.DiscountAmount); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Award amount updated",
	})
}
