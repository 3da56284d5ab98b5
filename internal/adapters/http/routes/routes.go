package routes

import (
	"navkar-inquiry/internal/adapters/http/handlers"
	"navkar-inquiry/internal/adapters/http/middleware"
	"navkar-inquiry/internal/adapters/persistence/repositories"
	"navkar-inquiry/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	inquiryHandler := handlers.NewInquiryHandler(inquiryRepo)

	// Health check
	app.Get("/health", healthHandler.HealthCheck)

	// Auth routes (public)
	auth := app.Group("/api/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Inquiry routes (bearer credential required)
	inquiries := app.Group("/api/inquiries", middleware.AuthMiddleware(cfg))
	inquiries.Get("/", middleware.AdminOnly(), inquiryHandler.ListAll)
	inquiries.Get("/my", inquiryHandler.ListMine)
	inquiries.Post("/inquiry", inquiryHandler.Create)
	inquiries.Get("/:id", inquiryHandler.GetByID)
	inquiries.Put("/:id", inquiryHandler.Update)
	inquiries.Delete("/:id", inquiryHandler.Delete)
	inquiries.Patch("/:id/status", middleware.AdminOnly(), inquiryHandler.SetStatus)
}
