package guidance

import (
	"database/sql"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetRecordsAPI(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	recordType := c.Query("record_type")
	status := c.Query("status")

	records, err := database.GetGuidanceRecords(config.GetDB(), studentID, recordType, status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch guidance records"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}

func GetRecordAPI(c *fiber.Ctx) error {
	recordID := c.Params("id")

	record, err := database.GetGuidanceRecordByID(config.GetDB(), recordID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Guidance record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch guidance record"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

func CreateRecordAPI(c *fiber.Ctx) error {
	var record models.GuidanceRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if record.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if record.Summary == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Summary is required"})
	}
	switch record.RecordType {
	case "counseling", "incident", "commendation", "home_visit":
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record type"})
	}

	record.CounselorID = c.Locals("user_id").(string)

	if err := database.CreateGuidanceRecord(config.GetDB(), &record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create guidance record"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

func UpdateRecordAPI(c *fiber.Ctx) error {
	recordID := c.Params("id")

	var record models.GuidanceRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	record.ID = recordID

	switch record.Status {
	case "open", "closed", "follow_up":
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	if err := database.UpdateGuidanceRecord(config.GetDB(), &record); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

func DeleteRecordAPI(c *fiber.Ctx) error {
	recordID := c.Params("id")

	if err := database.DeleteGuidanceRecord(config.GetDB(), recordID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Guidance record deleted",
	})
}
