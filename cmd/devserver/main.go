package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"navkar-inquiry/internal/adapters/http/middleware"
	"navkar-inquiry/internal/adapters/http/routes"
	"navkar-inquiry/internal/adapters/persistence/models"
	"navkar-inquiry/internal/adapters/persistence/repositories"
	"navkar-inquiry/internal/config"
	"navkar-inquiry/internal/core/services"
	"navkar-inquiry/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Local stand-in for the remote inquiry service. It exposes the same
// REST contract the terminal client talks to, backed by SQLite, so the
// client can be developed and integration-tested without the real
// backend.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.IsDev())

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	// Seed demo accounts in dev mode
	if cfg.IsDev() {
		if err := config.SeedDefaultUsers(db); err != nil {
			log.Printf("Warning: failed to seed default users: %v", err)
		}
	}

	// Start scheduled status summary
	summaryService := services.NewSummaryService(repositories.NewInquiryRepository(db), cfg.Server.SummarySchedule)
	if err := summaryService.Start(); err != nil {
		log.Fatalf("Failed to start summary job: %v", err)
	}
	defer summaryService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Navkar Inquiry Dev Server",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Dev server starting on port %s [MODE: %s]", cfg.Server.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
