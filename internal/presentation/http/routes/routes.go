package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/bizledger-api/internal/application/service"
	"github.com/sangkips/bizledger-api/internal/config"
	domainRepo "github.com/sangkips/bizledger-api/internal/domain/repository"
	"github.com/sangkips/bizledger-api/internal/presentation/http/handler"
	"github.com/sangkips/bizledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/bizledger-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Item         *handler.ItemHandler
	Sale         *handler.SaleHandler
	Appointment  *handler.AppointmentHandler
	Expense      *handler.ExpenseHandler
	Customer     *handler.CustomerHandler
	Supplier     *handler.SupplierHandler
	Subscription *handler.SubscriptionHandler
	Settings     *handler.SettingsHandler
	Dashboard    *handler.DashboardHandler
	Audit        *handler.AuditHandler
	Assistant    *handler.AssistantHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	BusinessRepo    domainRepo.BusinessRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.BusinessMiddleware(deps.BusinessRepo))

		// Per-business rate limiter
		rateLimiter := middleware.NewBusinessRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerAccountRoutes(protected, h)

		// Business routes additionally require an active subscription so an
		// expired owner can still log in, renew and manage their account
		active := protected.Group("")
		active.Use(middleware.RequireActiveSubscription(deps.BusinessRepo))
		registerBusinessRoutes(active, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

// registerAccountRoutes wires the endpoints that must stay reachable while a
// subscription is expired.
func registerAccountRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	subscriptions := protected.Group("/subscriptions")
	{
		subscriptions.GET("/plans", h.Subscription.ListPlans)
		subscriptions.POST("/renew", middleware.RequireOwner(), h.Subscription.Renew)
	}

	businesses := protected.Group("/businesses")
	businesses.Use(middleware.RequireOwner())
	{
		businesses.GET("", h.Subscription.ListBusinesses)
		businesses.POST("", h.Subscription.CreateBusiness)
	}
}

func registerBusinessRoutes(active *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Dashboard
	active.GET("/dashboard", h.Dashboard.Summary)

	// Settings
	settings := active.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", middleware.RequirePermission(service.PermSettings), h.Settings.Save)
	}

	// Employees
	employees := active.Group("/employees")
	employees.Use(middleware.RequireOwner())
	{
		employees.GET("", h.Auth.ListEmployees)
		employees.POST("", h.Auth.CreateEmployee)
		employees.PUT("/:id", h.Auth.UpdateEmployee)
		employees.DELETE("/:id", h.Auth.DeleteEmployee)
	}

	registerItemRoutes(active, h)
	registerSaleRoutes(active, h, deps)
	registerAppointmentRoutes(active, h)
	registerExpenseRoutes(active, h)
	registerCustomerRoutes(active, h)
	registerSupplierRoutes(active, h)
	registerAuditRoutes(active, h)
	registerAssistantRoutes(active, h)
}

func registerItemRoutes(active *gin.RouterGroup, h *Handlers) {
	items := active.Group("/items")
	{
		items.GET("", h.Item.List)
		items.GET("/low-stock", h.Item.LowStock)
		items.GET("/:id", h.Item.Get)

		mutating := items.Group("")
		mutating.Use(middleware.RequirePermission(service.PermInventory))
		{
			mutating.POST("", h.Item.Save)
			mutating.DELETE("", h.Item.Clear)
			mutating.DELETE("/:id", h.Item.Delete)
			mutating.POST("/:id/restock", h.Item.Restock)
		}
	}
}

func registerSaleRoutes(active *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := active.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Checkout uses idempotency middleware to prevent duplicate submissions
		sales.POST("", middleware.RequirePermission(service.PermSales), middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Create)
		sales.POST("/close-register", middleware.RequirePermission(service.PermReports), h.Sale.CloseRegister)
	}
}

func registerAppointmentRoutes(active *gin.RouterGroup, h *Handlers) {
	appointments := active.Group("/appointments")
	{
		appointments.GET("", h.Appointment.List)
		appointments.GET("/slots", h.Appointment.DaySlots)
		appointments.GET("/check-overlap", h.Appointment.CheckOverlap)
		appointments.GET("/:id", h.Appointment.Get)

		mutating := appointments.Group("")
		mutating.Use(middleware.RequirePermission(service.PermAppointments))
		{
			mutating.POST("", h.Appointment.Create)
			mutating.POST("/:id/reschedule", h.Appointment.Reschedule)
			mutating.PUT("/:id/status", h.Appointment.UpdateStatus)
			mutating.POST("/:id/complete", h.Appointment.Complete)
		}
	}
}

func registerExpenseRoutes(active *gin.RouterGroup, h *Handlers) {
	expenses := active.Group("/expenses")
	expenses.Use(middleware.RequirePermission(service.PermExpenses))
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.POST("/:id/pay", h.Expense.MarkPaid)
		expenses.POST("/:id/unpay", h.Expense.MarkUnpaid)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerCustomerRoutes(active *gin.RouterGroup, h *Handlers) {
	customers := active.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/dormant", h.Customer.ListDormant)
		customers.GET("/:id", h.Customer.Get)

		mutating := customers.Group("")
		mutating.Use(middleware.RequirePermission(service.PermCustomers))
		{
			mutating.POST("", h.Customer.Create)
			mutating.PUT("/:id", h.Customer.Update)
			mutating.DELETE("/:id", h.Customer.Delete)
			mutating.POST("/:id/re-engage", h.Customer.ReEngage)
		}
	}
}

func registerSupplierRoutes(active *gin.RouterGroup, h *Handlers) {
	suppliers := active.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)

		mutating := suppliers.Group("")
		mutating.Use(middleware.RequirePermission(service.PermInventory))
		{
			mutating.POST("", h.Supplier.Create)
			mutating.PUT("/:id", h.Supplier.Update)
			mutating.DELETE("/:id", h.Supplier.Delete)
			mutating.POST("/:id/contact", h.Item.ContactSupplier)
		}
	}
}

func registerAuditRoutes(active *gin.RouterGroup, h *Handlers) {
	audit := active.Group("/audit-logs")
	audit.Use(middleware.RequirePermission(service.PermReports))
	{
		audit.GET("", h.Audit.List)
	}
}

func registerAssistantRoutes(active *gin.RouterGroup, h *Handlers) {
	assistant := active.Group("/assistant")
	{
		assistant.POST("/analyze-image", h.Assistant.AnalyzeImage)
		assistant.POST("/chat", h.Assistant.Chat)
		assistant.GET("/recipes", h.Assistant.Recipes)
	}
}
