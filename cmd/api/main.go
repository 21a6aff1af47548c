package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/dukahub-api/internal/application/service"
	"github.com/mkamau/dukahub-api/internal/config"
	"github.com/mkamau/dukahub-api/internal/infrastructure/database"
	"github.com/mkamau/dukahub-api/internal/infrastructure/repository"
	"github.com/mkamau/dukahub-api/internal/presentation/http/handler"
	"github.com/mkamau/dukahub-api/internal/presentation/http/routes"
	"github.com/mkamau/dukahub-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial shop owner account when configured
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	inventoryService := service.NewInventoryService(itemRepo, cfg.Metrics)
	orderService := service.NewOrderService(orderRepo, itemRepo)
	customerService := service.NewCustomerService(customerRepo, orderRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	dashboardService := service.NewDashboardService(itemRepo, orderRepo, analyticsRepo, cfg.Metrics)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Item:      handler.NewItemHandler(inventoryService),
		Order:     handler.NewOrderHandler(orderService),
		Customer:  handler.NewCustomerHandler(customerService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
