package dashboard

import (
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)
	dashboard.Get("/", DashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "registrar", "accounting"))
	api.Get("/stats", GetDashboardStatsAPI)
}

func DashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - SchoolHub",
		"CurrentPage": "dashboard",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	schoolYear := c.Query("school_year", config.CurrentSchoolYear())

	if !models.ValidSchoolYear(schoolYear) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid school year format, expected YYYY-YYYY"})
	}

	stats, err := database.GetDashboardStats(config.GetDB(), schoolYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
