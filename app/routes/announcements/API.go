package announcements

import (
	"time"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"

	"github.com/gofiber/fiber/v2"
)

// audienceForUser maps the signed-in user's primary role to the audience
// bucket used for filtering.
func audienceForUser(c *fiber.Ctx) models.AnnouncementAudience {
	roles, ok := c.Locals("user_roles").([]*models.Role)
	if !ok || len(roles) == 0 {
		return models.AudienceAll
	}
	switch roles[0].Name {
	case "parent":
		return models.AudienceParents
	case "student":
		return models.AudienceStudents
	default:
		return models.AudienceStaff
	}
}

func GetAnnouncementsAPI(c *fiber.Ctx) error {
	announcements, err := database.GetVisibleAnnouncements(config.GetDB(), audienceForUser(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch announcements"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    announcements,
	})
}

func GetAllAnnouncementsAPI(c *fiber.Ctx) error {
	announcements, err := database.GetAllAnnouncements(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch announcements"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    announcements,
	})
}

func CreateAnnouncementAPI(c *fiber.Ctx) error {
	var announcement models.Announcement
	if err := c.BodyParser(&announcement); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if announcement.Title == "" || announcement.Body == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title and body are required"})
	}
	if announcement.Audience == "" {
		announcement.Audience = models.AudienceAll
	}
	if announcement.PublishAt.IsZero() {
		announcement.PublishAt = time.Now()
	}
	if announcement.ExpiresAt != nil && !announcement.ExpiresAt.After(announcement.PublishAt) {
		return c.Status(400).JSON(fiber.Map{"error": "Expiry must be after publish time"})
	}

	announcement.PostedBy = c.Locals("user_id").(string)

	if err := database.CreateAnnouncement(config.GetDB(), &announcement); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create announcement"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    announcement,
	})
}

func UpdateAnnouncementAPI(c *fiber.Ctx) error {
	announcementID := c.Params("id")

	var announcement models.Announcement
	if err := c.BodyParser(&announcement); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	announcement.ID = announcementID

	if announcement.ExpiresAt != nil && !announcement.ExpiresAt.After(announcement.PublishAt) {
		return c.Status(400).JSON(fiber.Map{"error": "Expiry must be after publish time"})
	}

	if err := database.UpdateAnnouncement(config.GetDB(), &announcement); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    announcement,
	})
}

func DeleteAnnouncementAPI(c *fiber.Ctx) error {
	announcementID := c.Params("id")

	if err := database.DeleteAnnouncement(config.GetDB(), announcementID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Announcement deleted",
	})
}
