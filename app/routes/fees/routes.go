package fees

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFeesRoutes(app *fiber.App) {
	fees := app.Group("/fees")
	fees.Use(auth.AuthMiddleware)
	fees.Use(auth.RoleMiddleware("admin", "accounting"))

	// Routes
	fees.Get("/", FeesPage)

	// API routes
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "accounting"))
	api.Get("/", GetFeeItemsAPI)                       // List fee items for a school year
	api.Get("/stats", GetFeeStatsAPI)                  // Collection statistics
	api.Get("/:id", GetFeeItemAPI)                     // Single fee item with assignments
	api.Post("/", CreateFeeItemAPI)                    // Create fee item
	api.Put("/:id", UpdateFeeItemAPI)                  // Update fee item
	api.Delete("/:id", DeactivateFeeItemAPI)           // Deactivate fee item
	api.Post("/:id/assignments", CreateAssignmentAPI)  // Add assignment rule
	api.Delete("/assignments/:id", DeleteAssignmentAPI)

	// Balance API is readable by every signed-in staff role
	balance := app.Group("/api/students/:id/balance")
	balance.Use(auth.AuthMiddleware)
	balance.Get("/", GetStudentBalanceAPI)
}

func FeesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())

	items, err := database.GetFeeItemsForYear(config.GetDB(), schoolYear)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - SchoolHub",
			"CurrentPage":  "fees",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load fee items. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	return c.Render("fees/index", fiber.Map{
		"Title":       "Fee Management - SchoolHub",
		"CurrentPage": "fees",
		"feeItems":    items,
		"schoolYear":  schoolYear,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
