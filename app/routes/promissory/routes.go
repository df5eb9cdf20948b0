package promissory

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPromissoryRoutes(app *fiber.App) {
	api := app.Group("/api/promissory-notes")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "accounting"))

	api.Get("/", GetNotesAPI)              // List notes for a school year
	api.Post("/", CreateNoteAPI)           // File a note on behalf of a student
	api.Post("/:id/approve", ApproveNoteAPI)
	api.Post("/:id/decline", DeclineNoteAPI)
}
