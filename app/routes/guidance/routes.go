package guidance

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGuidanceRoutes(app *fiber.App) {
	api := app.Group("/api/guidance")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "guidance"))

	api.Get("/", GetRecordsAPI)
	api.Get("/:id", GetRecordAPI)
	api.Post("/", CreateRecordAPI)
	api.Put("/:id", UpdateRecordAPI)
	api.Delete("/:id", DeleteRecordAPI)
}
