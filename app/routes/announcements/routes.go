package announcements

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAnnouncementsRoutes(app *fiber.App) {
	api := app.Group("/api/announcements")
	api.Use(auth.AuthMiddleware)

	// Visible listing for any signed-in user
	api.Get("/", GetAnnouncementsAPI)

	// Management endpoints
	manage := auth.RoleMiddleware("admin", "registrar")
	api.Get("/all", manage, GetAllAnnouncementsAPI)
	api.Post("/", manage, CreateAnnouncementAPI)
	api.Put("/:id", manage, UpdateAnnouncementAPI)
	api.Delete("/:id", manage, DeleteAnnouncementAPI)
}
