package library

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupLibraryRoutes(app *fiber.App) {
	api := app.Group("/api/library")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "librarian"))

	// Catalog
	api.Get("/books", GetBooksAPI)
	api.Get("/books/:id", GetBookAPI)
	api.Post("/books", CreateBookAPI)
	api.Put("/books/:id", UpdateBookAPI)

	// Circulation
	api.Post("/borrow", BorrowBookAPI)
	api.Post("/return/:id", ReturnBookAPI)
	api.Get("/borrowed", GetBorrowedAPI)
	api.Get("/overdue", GetOverdueAPI)
	api.Get("/students/:id/records", GetStudentRecordsAPI)
}
