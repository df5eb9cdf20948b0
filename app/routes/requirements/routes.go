package requirements

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupRequirementsRoutes(app *fiber.App) {
	api := app.Group("/api/requirements")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "registrar"))

	api.Get("/", GetRequirementsAPI)          // Catalog listing
	api.Post("/", CreateRequirementAPI)       // Create and auto-assign
	api.Put("/:id", UpdateRequirementAPI)     // Update catalog entry
	api.Post("/:id/assign", AssignRequirementAPI) // Re-run auto-assignment

	// Per-student tracking
	tracking := app.Group("/api/student-requirements")
	tracking.Use(auth.AuthMiddleware)
	tracking.Use(auth.RoleMiddleware("admin", "registrar"))
	tracking.Post("/:id/submit", SubmitRequirementAPI)
	tracking.Post("/:id/review", ReviewRequirementAPI)

	// Completion summary is readable by any signed-in staff role
	completion := app.Group("/api/students/:id/requirements/completion")
	completion.Use(auth.AuthMiddleware)
	completion.Get("/", GetCompletionAPI)
}
