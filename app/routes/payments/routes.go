package payments

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentsRoutes(app *fiber.App) {
	payments := app.Group("/payments")
	payments.Use(auth.AuthMiddleware)
	payments.Use(auth.RoleMiddleware("admin", "accounting"))

	// Routes
	payments.Get("/", PaymentsPage)

	// API routes
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "accounting"))
	api.Post("/", CreatePaymentAPI)                      // Record cashier payment
	api.Get("/student/:id", GetStudentPaymentHistoryAPI) // Combined payment history

	// Online transaction review
	tx := app.Group("/api/transactions")
	tx.Use(auth.AuthMiddleware)
	tx.Use(auth.RoleMiddleware("admin", "accounting"))
	tx.Get("/", GetTransactionsAPI)          // List submissions for review
	tx.Post("/:id/verify", VerifyTransactionAPI)
	tx.Post("/:id/reject", RejectTransactionAPI)
}
