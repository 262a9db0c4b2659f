package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"

	"github.com/Vasuishere/vasudevchemopharma/config"
	"github.com/Vasuishere/vasudevchemopharma/models"
	"github.com/Vasuishere/vasudevchemopharma/web/handlers"
	"github.com/Vasuishere/vasudevchemopharma/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer(cfg *config.Config) *Server {
	// Initialize template engine
	engine := html.New(cfg.App.TemplatesDir, ".html")
	engine.Reload(cfg.App.Environment == "development")

	// Add custom template functions
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("02 Jan 2006")
	})
	engine.AddFunc("currentYear", func() int {
		return time.Now().Year()
	})

	// Create Fiber app with template engine
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			if code >= fiber.StatusInternalServerError {
				logrus.WithError(err).Errorf("%s %s failed", c.Method(), c.Path())
			}

			// The error may have surfaced before the company middleware ran
			company := c.Locals("Company")
			if company == nil {
				company = &models.CompanyDetails{}
			}

			return c.Status(code).Render("pages/error", fiber.Map{
				"Title":   "Error",
				"Active":  "",
				"Code":    code,
				"Message": err.Error(),
				"Company": company,
			}, "layouts/base")
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Company details for every template
	app.Use(middleware.CompanyDetails())

	// Legacy / dead-URL redirects (302, the mapping may change again).
	// Registered before the static mount so the dead PDF path wins.
	app.Get("/product/+", redirectTo("/products/"))
	app.Get("/blog/+", redirectTo("/insights/"))
	app.Get("/static/media/VCP-003-TDS.pdf", redirectTo("/products/"))

	// Static files
	app.Static("/static", cfg.App.StaticDir)

	// Setup routes
	setupRoutes(app, cfg)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	logrus.Infof("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// redirectTo returns a handler issuing a temporary redirect
func redirectTo(target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Redirect(target, fiber.StatusFound)
	}
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, cfg *config.Config) {
	// Static pages
	app.Get("/", handlers.Home)
	app.Get("/aboutus/", handlers.About)
	app.Get("/ourservices/", handlers.Services)

	// Product catalogue
	app.Get("/products/", handlers.ProductList)
	app.Get("/products/:slug/", handlers.ProductDetail)

	// Articles (database backed, published only)
	app.Get("/articles/", handlers.ArticleList)
	app.Get("/articles/:slug/", handlers.ArticleDetail)

	// Insights (static content)
	app.Get("/insights/", handlers.InsightList)
	app.Get("/insights/:slug/", handlers.InsightDetail)

	// SEO feeds
	app.Get("/robots.txt", handlers.RobotsTxt(cfg.Site.Domain))
	app.Get("/sitemap.xml", handlers.SitemapXML(cfg.Site.Domain))
}
