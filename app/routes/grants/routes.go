package grants

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGrantsRoutes(app *fiber.App) {
	api := app.Group("/api/grants")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "accounting"))

	api.Get("/", GetGrantsAPI)                         // List discount programs
	api.Get("/:id", GetGrantAPI)                       // Grant with recipients
	api.Post("/", CreateGrantAPI)                      // Create program
	api.Put("/:id", UpdateGrantAPI)                    // Update program
	api.Post("/:id/recipients", AddRecipientAPI)       // Award to student
	api.Put("/recipients/:id/status", UpdateRecipientStatusAPI)
	api.Put("/recipients/:id/amount", UpdateRecipientAmountAPI)
}
