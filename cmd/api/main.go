package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/config"
	"github.com/sangkips/bizledger-api/internal/infrastructure/database"
	"github.com/sangkips/bizledger-api/internal/infrastructure/repository"
	"github.com/sangkips/bizledger-api/internal/presentation/http/handler"
	"github.com/sangkips/bizledger-api/internal/presentation/http/routes"
	"github.com/sangkips/bizledger-api/pkg/ai"
	"github.com/sangkips/bizledger-api/pkg/notify"
	"github.com/sangkips/bizledger-api/pkg/utils"
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

	// Seed default data
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
	businessRepo := repository.NewBusinessRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	itemRepo := repository.NewItemRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	planRepo := repository.NewPlanRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize outbound messaging
	var messenger notify.Messenger
	if cfg.Messaging.WebhookURL != "" {
		messenger = notify.NewWebhookMessenger(notify.Config{
			WebhookURL: cfg.Messaging.WebhookURL,
			APIKey:     cfg.Messaging.APIKey,
			Timeout:    time.Duration(cfg.Messaging.TimeoutSeconds) * time.Second,
		})
	} else {
		messenger = notify.NewNullMessenger()
	}

	// Initialize assistant client
	assistantClient := ai.NewClient(ai.Config{
		BaseURL: cfg.Assistant.BaseURL,
		APIKey:  cfg.Assistant.APIKey,
		Timeout: time.Duration(cfg.Assistant.TimeoutSeconds) * time.Second,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, businessRepo, employeeRepo, auditRepo, jwtManager, cfg.Subscription.TrialDays)
	customerService := service.NewCustomerService(customerRepo, businessRepo, auditRepo, messenger)
	inventoryService := service.NewInventoryService(itemRepo, saleRepo, supplierRepo, businessRepo, auditRepo, messenger)
	salesService := service.NewSalesService(saleRepo, itemRepo, customerService, auditRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, itemRepo, businessRepo, customerService, salesService, auditRepo, messenger)
	expenseService := service.NewExpenseService(expenseRepo, auditRepo)
	supplierService := service.NewSupplierService(supplierRepo, auditRepo)
	subscriptionService := service.NewSubscriptionService(businessRepo, planRepo, auditRepo, cfg.Subscription.TrialDays)
	settingsService := service.NewSettingsService(settingsRepo, auditRepo)
	dashboardService := service.NewDashboardService(saleRepo, itemRepo, appointmentRepo, expenseRepo)
	auditService := service.NewAuditService(auditRepo)
	assistantService := service.NewAssistantService(assistantClient, itemRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Item:         handler.NewItemHandler(inventoryService),
		Sale:         handler.NewSaleHandler(salesService),
		Appointment:  handler.NewAppointmentHandler(appointmentService),
		Expense:      handler.NewExpenseHandler(expenseService),
		Customer:     handler.NewCustomerHandler(customerService),
		Supplier:     handler.NewSupplierHandler(supplierService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		Settings:     handler.NewSettingsHandler(settingsService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Audit:        handler.NewAuditHandler(auditService),
		Assistant:    handler.NewAssistantHandler(assistantService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		BusinessRepo:    businessRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
