package students

import (
	"fmt"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/models"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)
	students.Use(auth.RoleMiddleware("admin", "registrar", "accounting", "guidance"))

	// Routes
	students.Get("/", StudentsPage)
	students.Get("/:id", StudentViewPage)

	// API routes
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "registrar", "accounting", "guidance"))
	api.Get("/", GetStudentsAPI)                        // Get students with filters and pagination
	api.Get("/stats", GetStudentsStatsAPI)              // Get students statistics
	api.Get("/:id", GetStudentByIDAPI)                  // Get single student by ID
	api.Get("/:id/requirements", GetStudentRequirementsAPI)
	api.Post("/", CreateStudentAPI)                     // Create new student
	api.Put("/:id", UpdateStudentAPI)                   // Update existing student
	api.Delete("/:id", DeleteStudentAPI)                // Deactivate student

	// Lookup APIs for form dropdowns
	app.Get("/api/departments", auth.AuthMiddleware, GetDepartmentsAPI)
	app.Get("/api/year-levels", auth.AuthMiddleware, GetYearLevelsAPI)
	app.Get("/api/sections", auth.AuthMiddleware, GetSectionsAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("students/index", fiber.Map{
		"Title":       "Students - SchoolHub",
		"CurrentPage": "students",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}

func StudentViewPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	studentID := c.Params("id")

	// Get student details to show name in title if possible
	student, _ := database.GetStudentByID(config.GetDB(), studentID)

	title := "Student Profile - SchoolHub"
	if student != nil {
		title = fmt.Sprintf("%s %s - Profile", student.FirstName, student.LastName)
	}

	return c.Render("students/view", fiber.Map{
		"Title":       title,
		"CurrentPage": "students",
		"studentID":   studentID,
		"student":     student,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
