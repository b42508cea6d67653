package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/config"
	"talentsift/resume-screener/internal/handlers"
	"talentsift/resume-screener/internal/logger"
	"talentsift/resume-screener/internal/matching"
	"talentsift/resume-screener/internal/repositories"
	"talentsift/resume-screener/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env != "development", cfg.Server.Env == "development")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	zlog.Info("database connected and migrated")

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	candRepo := repositories.NewCandidateRepository(db)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("failed to create upload directory", zap.Error(err))
	}

	pdfParser := services.NewPDFParserService()
	ingestService := services.NewIngestService(candRepo, pdfParser, zlog)

	engine := matching.NewEngine()
	engine.FallbackSize = cfg.Matching.FallbackSize
	slots := matching.NewSlotGenerator()

	screener := services.NewScreenerService(jobRepo, candRepo, engine, slots, zlog)
	mailer := services.NewInterviewMailer(cfg.SMTP, zlog)

	// Initialize and start the ingestion worker
	worker := services.NewWorker(candRepo, ingestService, cfg.Worker.Concurrency, cfg.Worker.PollInterval, zlog)
	worker.Start(context.Background())
	zlog.Info("ingestion worker started", zap.Int("concurrency", cfg.Worker.Concurrency))

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(candRepo, storageService, worker, cfg.Storage.MaxFileSize)
	resumeHandler := handlers.NewResumeHandler(candRepo)
	jobsHandler := handlers.NewJobsHandler(jobRepo)
	candidatesHandler := handlers.NewCandidatesHandler(screener, cfg.Matching)
	interviewHandler := handlers.NewInterviewHandler(mailer, slots)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
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

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/jobs", jobsHandler.HandleListJobs)
	api.Get("/jobs/:title", jobsHandler.HandleGetJob)
	api.Get("/jobs/:title/candidates", candidatesHandler.HandleShortlist)
	api.Post("/resumes", uploadHandler.HandleUpload)
	api.Get("/resumes/:id", resumeHandler.HandleGetResume)
	api.Post("/interviews/send", interviewHandler.HandleSendInvite)
	api.Post("/interviews/bulk", interviewHandler.HandleSendBulk)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET  /api/v1/jobs",
				"GET  /api/v1/jobs/:title",
				"GET  /api/v1/jobs/:title/candidates",
				"POST /api/v1/resumes",
				"GET  /api/v1/resumes/:id",
				"POST /api/v1/interviews/send",
				"POST /api/v1/interviews/bulk",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
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
