package parents

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupParentsRoutes(app *fiber.App) {
	api := app.Group("/api/portal")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("parent"))

	api.Get("/children", GetChildrenAPI)
	api.Get("/children/:id/balance", GetChildBalanceAPI)
	api.Get("/children/:id/requirements", GetChildRequirementsAPI)
	api.Post("/children/:id/transactions", SubmitTransactionAPI)
	api.Get("/children/:id/transactions", GetChildTransactionsAPI)

	// Registrar-side parent management
	manage := app.Group("/api/parents")
	manage.Use(auth.AuthMiddleware)
	manage.Use(auth.RoleMiddleware("admin", "registrar"))
	manage.Post("/", CreateParentAPI)
	manage.Post("/:id/link", LinkStudentAPI)
}
