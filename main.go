package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/LeeDev428/uplb-schoolhub-sub004/app/config"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/database"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/announcements"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/auth"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/dashboard"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/fees"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/grants"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/guidance"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/library"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/parents"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/payments"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/promissory"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/requirements"
	"github.com/LeeDev428/uplb-schoolhub-sub004/app/routes/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - SchoolHub",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - SchoolHub",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - SchoolHub",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - SchoolHub",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - SchoolHub",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Set global time zone to Philippine Time
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Manila location, falling back to UTC+8: %v", err)
		time.Local = time.FixedZone("PHT", 8*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Printf("Active school year: %s", config.CurrentSchoolYear())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(true) // Enable template reloading for development
	engine.Debug(false) // Disable debug mode to reduce verbose logs

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendFile("./static/favicon.ico")
	})

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup fees routes
	fees.SetupFeesRoutes(app)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app)

	// Setup grants routes
	grants.SetupGrantsRoutes(app)

	// Setup promissory note routes
	promissory.SetupPromissoryRoutes(app)

	// Setup requirements routes
	requirements.SetupRequirementsRoutes(app)

	// Setup library routes
	library.SetupLibraryRoutes(app)

	// Setup guidance routes
	guidance.SetupGuidanceRoutes(app)

	// Setup announcements routes
	announcements.SetupAnnouncementsRoutes(app)

	// Setup parent portal routes
	parents.SetupParentsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
