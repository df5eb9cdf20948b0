package payments

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"

	"github.com/gofiber/fiber/v2"
)

func PaymentsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())

	transactions, err := database.GetOnlineTransactions(config.GetDB(), schoolYear, "pending")
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - SchoolHub",
			"CurrentPage":  "payments",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load payments. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	return c.Render("payments/index", fiber.Map{
		"Title":        "Payments - SchoolHub",
		"CurrentPage":  "payments",
		"transactions": transactions,
		"schoolYear":   schoolYear,
		"user":         user,
		"FirstName":    user.FirstName,
		"LastName":     user.LastName,
		"Email":        user.Email,
	})
}

// CreatePaymentAPI records a cashier payment against a student's ledger.
func CreatePaymentAPI(c *fiber.Ctx) error {
	type PaymentRequest struct {
		StudentID     string  `json:"student_id"`
		SchoolYear    string  `json:"school_year"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
		ORNumber      *string `json:"or_number"`
		Remarks       *string `json:"remarks"`
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}
	if req.SchoolYear == "" {
		req.SchoolYear = config.CurrentSchoolYear()
	}
	if !models.ValidSchoolYear(req.SchoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	payment := &models.StudentPayment{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		ORNumber:      req.ORNumber,
		Remarks:       req.Remarks,
		ReceivedBy:    c.Locals("user_id").(string),
	}

	if err := database.CreateStudentPayment(config.GetDB(), req.StudentID, req.SchoolYear, payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment", "details": err.Error()})
	}

	// Return the refreshed balance alongside the payment
	summary, err := database.GetStudentBalanceSummary(config.GetDB(), req.StudentID, req.SchoolYear)
	if err != nil {
		return c.Status(201).JSON(fiber.Map{
			"success": true,
			"data":    payment,
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    payment,
		"balance": summary,
	})
}

func GetStudentPaymentHistoryAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	history, err := database.GetPaymentHistory(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment history"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    history,
	})
}

func GetTransactionsAPI(c *fiber.Ctx) error {
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())
	status := c.Query("status")

	transactions, err := database.GetOnlineTransactions(config.GetDB(), schoolYear, status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
	})
}

// VerifyTransactionAPI marks a pending submission verified so it counts
// toward the student's paid total.
func VerifyTransactionAPI(c *fiber.Ctx) error {
	transactionID := c.Params("id")
	reviewerID := c.Locals("user_id").(string)

	err := database.UpdateOnlineTransactionStatus(config.GetDB(), transactionID, models.TransactionVerified, reviewerID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Transaction verified",
	})
}

func RejectTransactionAPI(c *fiber.Ctx) error {
	transactionID := c.Params("id")
	reviewerID := c.Locals("user_id").(string)

	err := database.UpdateOnlineTransactionStatus(config.GetDB(), transactionID, models.TransactionFailed, reviewerID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Transaction rejected",
	})
}
