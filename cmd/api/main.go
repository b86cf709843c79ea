package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	"resumatch/resume-job-matcher/internal/config"
	"resumatch/resume-job-matcher/internal/handlers"
	"resumatch/resume-job-matcher/internal/models"
	"resumatch/resume-job-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.TempDir)
	if err := storageService.EnsureTempDir(); err != nil {
		log.Fatalf("❌ Failed to create temp directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	// The annotator is required for keyword extraction; without it the
	// service cannot run.
	annotator, err := services.NewProseAnnotator()
	if err != nil {
		log.Fatalf("❌ Failed to initialize annotator: %v", err)
	}
	log.Println("✅ Annotator initialized successfully")

	extractor := services.NewKeywordExtractor(annotator)

	if cfg.JobSearch.APIKey == "" {
		log.Println("⚠️  RAPIDAPI_KEY not set. Job searches will fail with an auth error.")
	}
	jobSearchClient := services.NewRapidAPIClient(cfg.JobSearch, nil)
	log.Println("✅ Services initialized successfully")

	// Session store holds per-session keyword state only; nothing is
	// persisted beyond expiration.
	store := session.New(session.Config{
		Expiration: cfg.Session.Expiration,
	})

	// Initialize handlers
	resumeHandler := handlers.NewResumeHandler(
		store,
		storageService,
		pdfParser,
		extractor,
		cfg.Storage.MaxFileSize,
		cfg.Keywords.TopN,
	)
	keywordsHandler := handlers.NewKeywordsHandler(store)
	searchHandler := handlers.NewSearchHandler(store, jobSearchClient)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume-to-Job Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/options", func(c *fiber.Ctx) error {
		return c.JSON(models.OptionsResponse{
			Locations: models.Locations,
			JobTypes:  models.JobTypes,
		})
	})

	// API endpoints
	api.Post("/resume", resumeHandler.HandleAnalyze)
	api.Get("/keywords", keywordsHandler.HandleGet)
	api.Put("/keywords", keywordsHandler.HandleUpdate)
	api.Post("/jobs/search", searchHandler.HandleSearch)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume-to-Job Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resume",
				"GET /api/v1/keywords",
				"PUT /api/v1/keywords",
				"POST /api/v1/jobs/search",
				"GET /api/v1/options",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
