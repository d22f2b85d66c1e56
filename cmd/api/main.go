package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ventaspos/ledger-api/internal/application/service"
	"github.com/ventaspos/ledger-api/internal/cache"
	"github.com/ventaspos/ledger-api/internal/config"
	"github.com/ventaspos/ledger-api/internal/infrastructure/database"
	"github.com/ventaspos/ledger-api/internal/infrastructure/repository"
	"github.com/ventaspos/ledger-api/internal/presentation/http/handler"
	"github.com/ventaspos/ledger-api/internal/presentation/http/routes"
	"github.com/ventaspos/ledger-api/pkg/printer"
	"github.com/ventaspos/ledger-api/pkg/utils"
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

	// Seed the admin account when configured
	if err := database.SeedAdminUser(db); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.App.Name, cfg.JWT.ExpiryHours)

	// Initialize the stats cache (Redis when enabled, no-op otherwise)
	var statsCache cache.StatsCache = cache.NoopStatsCache{}
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisStatsCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("Warning: Redis unreachable, stats caching disabled: %v", err)
		} else {
			log.Println("Connected to Redis, stats caching enabled")
			statsCache = redisCache
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	saleService := service.NewSaleService(saleRepo, customerRepo, statsCache)
	statsService := service.NewStatsService(saleRepo, statsCache, cfg.Redis.StatsTTL)
	loyaltyService := service.NewLoyaltyService(customerRepo, saleRepo)
	reportService := service.NewReportService(saleService, statsService, thermalPrinter, cfg.Report, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Sale:     handler.NewSaleHandler(saleService),
		Customer: handler.NewCustomerHandler(customerService),
		Stats:    handler.NewStatsHandler(statsService),
		Loyalty:  handler.NewLoyaltyHandler(loyaltyService),
		Report:   handler.NewReportHandler(reportService),
	}

	// Setup routes and start the server
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
