package main

import (
	"log"

	"github.com/billify/billify-api/internal/application/service"
	"github.com/billify/billify-api/internal/config"
	"github.com/billify/billify-api/internal/infrastructure/database"
	"github.com/billify/billify-api/internal/infrastructure/gateway"
	"github.com/billify/billify-api/internal/infrastructure/repository"
	"github.com/billify/billify-api/internal/presentation/http/handler"
	"github.com/billify/billify-api/internal/presentation/http/routes"
	"github.com/billify/billify-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed demo catalog
	if err := database.SeedDemoProducts(db, logger); err != nil {
		logger.Warn("Failed to seed demo products", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	supportRepo := repository.NewSupportTicketRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize payment gateway client
	gatewayClient := gateway.NewClient(&cfg.Razorpay, logger)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	billService := service.NewBillService(billRepo)
	paymentService := service.NewPaymentService(paymentRepo, gatewayClient, logger)
	supportService := service.NewSupportService(supportRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Product: handler.NewProductHandler(productService),
		Bill:    handler.NewBillHandler(billService),
		Payment: handler.NewPaymentHandler(paymentService),
		Support: handler.NewSupportHandler(supportService),
	}

	// Setup router and start server
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Log:             logger,
		IdempotencyRepo: idempotencyRepo,
	})

	logger.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
