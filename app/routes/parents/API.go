package parents

import (
	"database/sql"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/services"

	"github.com/gofiber/fiber/v2"
)

// resolveChild checks that the requested student is linked to the signed-in
// parent. Portal endpoints never expose other students' data.
func resolveChild(c *fiber.Ctx, studentID string) (*models.Student, error) {
	userID := c.Locals("user_id").(string)

	parent, err := database.GetParentByUserID(config.GetDB(), userID)
	if err != nil {
		return nil, err
	}

	children, err := database.GetStudentsForParent(config.GetDB(), parent.ID)
	if err != nil {
		return nil, err
	}

	for _, child := range children {
		if child.ID == studentID {
			return child, nil
		}
	}
	return nil, sql.ErrNoRows
}

func GetChildrenAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	parent, err := database.GetParentByUserID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No parent record linked to this account"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve parent"})
	}

	children, err := database.GetStudentsForParent(config.GetDB(), parent.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch children"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    children,
	})
}

// GetChildBalanceAPI returns the full balance summary for one of the
// parent's children.
func GetChildBalanceAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())

	if !models.ValidSchoolYear(schoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	if _, err := resolveChild(c, studentID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	summary, err := database.GetStudentBalanceSummary(config.GetDB(), studentID, schoolYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute balance"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

func GetChildRequirementsAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if _, err := resolveChild(c, studentID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	rows, err := database.GetStudentRequirements(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch requirements"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       rows,
		"completion": services.ComputeCompletion(rows),
	})
}

// SubmitTransactionAPI files an online payment for review. The submission
// stays pending and does not affect the balance until accounting verifies it.
func SubmitTransactionAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if _, err := resolveChild(c, studentID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	var transaction models.OnlineTransaction
	if err := c.BodyParser(&transaction); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	transaction.StudentID = studentID

	if transaction.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if transaction.ReferenceNo == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Reference number is required"})
	}
	if transaction.SchoolYear == "" {
		transaction.SchoolYear = config.CurrentSchoolYear()
	}
	if !models.ValidSchoolYear(transaction.SchoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	if err := database.CreateOnlineTransaction(config.GetDB(), &transaction); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit transaction"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    transaction,
		"message": "Payment submitted for verification",
	})
}

func GetChildTransactionsAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if _, err := resolveChild(c, studentID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	transactions, err := database.GetOnlineTransactionsForStudent(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch transactions"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
	})
}

func CreateParentAPI(c *fiber.Ctx) error {
	var parent models.Parent
	if err := c.BodyParser(&parent); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if parent.FirstName == "" || parent.LastName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "First name and last name are required"})
	}

	if err := database.CreateParent(config.GetDB(), &parent); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create parent"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    parent,
	})
}

func LinkStudentAPI(c *fiber.Ctx) error {
	parentID := c.Params("id")

	type LinkRequest struct {
		StudentID    string                  `json:"student_id"`
		Relationship models.RelationshipType `json:"relationship"`
	}

	var req LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if req.Relationship == "" {
		req.Relationship = models.Guardian
	}

	if err := database.LinkStudentToParent(config.GetDB(), req.StudentID, parentID, req.Relationship); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student linked to parent",
	})
}
