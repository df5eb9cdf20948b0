package promissory

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetNotesAPI(c *fiber.Ctx) error {
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())
	status := c.Query("status")

	notes, err := database.GetPromissoryNotes(config.GetDB(), schoolYear, status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch promissory notes"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notes,
	})
}

func CreateNoteAPI(c *fiber.Ctx) error {
	var note models.PromissoryNote
	if err := c.BodyParser(&note); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if note.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if note.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if note.Reason == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Reason is required"})
	}
	if note.SchoolYear == "" {
		note.SchoolYear = config.CurrentSchoolYear()
	}
	if !models.ValidSchoolYear(note.SchoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	if err := database.CreatePromissoryNote(config.GetDB(), &note); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create promissory note"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    note,
	})
}

// ApproveNoteAPI approves a pending note so it reduces the student's
// effective balance.
func ApproveNoteAPI(c *fiber.Ctx) error {
	noteID := c.Params("id")
	reviewerID := c.Locals("user_id").(string)

	err := database.ReviewPromissoryNote(config.GetDB(), noteID, models.PromissoryApproved, reviewerID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Promissory note approved",
	})
}

func DeclineNoteAPI(c *fiber.Ctx) error {
	noteID := c.Params("id")
	reviewerID := c.Locals("user_id").(string)

	err := database.ReviewPromissoryNote(config.GetDB(), noteID, models.PromissoryDeclined, reviewerID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Promissory note declined",
	})
}
