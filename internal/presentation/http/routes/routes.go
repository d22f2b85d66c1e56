package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ventaspos/ledger-api/internal/config"
	"github.com/ventaspos/ledger-api/internal/presentation/http/handler"
	"github.com/ventaspos/ledger-api/internal/presentation/http/middleware"
	"github.com/ventaspos/ledger-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Sale     *handler.SaleHandler
	Customer *handler.CustomerHandler
	Stats    *handler.StatsHandler
	Loyalty  *handler.LoyaltyHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/profile", h.Auth.GetProfile)

	// Sales ledger
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/items", h.Sale.ListItems)
		sales.PUT("/:id/customer", h.Sale.AssignCustomer)
		sales.DELETE("/:id", middleware.RequireRole("admin"), h.Sale.Delete)
	}

	// Dashboard stats
	protected.GET("/stats", h.Stats.GetStats)
	protected.GET("/stats/methods", h.Stats.GetMethods)

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
	}

	// Loyalty
	protected.GET("/loyalty", h.Loyalty.List)
	protected.GET("/loyalty/top", h.Loyalty.TopSpenders)

	// Reports
	protected.GET("/reports/sales", h.Report.GetSalesReport)
	protected.POST("/reports/sales/print", h.Report.PrintSalesReport)
}
