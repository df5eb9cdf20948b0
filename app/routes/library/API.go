package library

import (
	"database/sql"
	"time"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetBooksAPI(c *fiber.Ctx) error {
	search := c.Query("search")

	books, err := database.GetBooks(config.GetDB(), search)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch books"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    books,
	})
}

func GetBookAPI(c *fiber.Ctx) error {
	bookID := c.Params("id")

	book, err := database.GetBookByID(config.GetDB(), bookID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Book not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch book"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    book,
	})
}

func CreateBookAPI(c *fiber.Ctx) error {
	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if book.Title == "" || book.Author == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title and author are required"})
	}
	if book.TotalQuantity < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Total quantity must be at least 1"})
	}

	if err := database.CreateBook(config.GetDB(), &book); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create book"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    book,
	})
}

func UpdateBookAPI(c *fiber.Ctx) error {
	bookID := c.Params("id")

	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	book.ID = bookID

	if book.TotalQuantity < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Total quantity must be at least 1"})
	}

	if err := database.UpdateBook(config.GetDB(), &book); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    book,
	})
}

// BorrowBookAPI checks out one copy. Returns 409 when the last copy was
// taken by a concurrent borrow.
func BorrowBookAPI(c *fiber.Ctx) error {
	type BorrowRequest struct {
		BookID    string `json:"book_id"`
		StudentID string `json:"student_id"`
		DueDate   string `json:"due_date"`
	}

	var req BorrowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.BookID == "" || req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Book and student are required"})
	}

	dueDate := time.Now().AddDate(0, 0, 7)
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid due date, expected YYYY-MM-DD"})
		}
		dueDate = parsed
	}

	issuedBy := c.Locals("user_id").(string)

	record, err := database.BorrowBook(config.GetDB(), req.BookID, req.StudentID, issuedBy, dueDate)
	if err != nil {
		if err == database.ErrBookUnavailable {
			return c.Status(409).JSON(fiber.Map{"error": "No available copies of this book"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to borrow book"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

func ReturnBookAPI(c *fiber.Ctx) error {
	recordID := c.Params("id")

	if err := database.ReturnBook(config.GetDB(), recordID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Book returned",
	})
}

func GetBorrowedAPI(c *fiber.Ctx) error {
	records, err := database.GetBorrowRecords(config.GetDB(), false)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch borrow records"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}

func GetOverdueAPI(c *fiber.Ctx) error {
	records, err := database.GetBorrowRecords(config.GetDB(), true)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch overdue records"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}

func GetStudentRecordsAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	records, err := database.GetBorrowRecordsForStudent(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch borrow records"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}
