package routes

import (
	"time"

	"github.com/billify/billify-api/internal/config"
	domainRepo "github.com/billify/billify-api/internal/domain/repository"
	"github.com/billify/billify-api/internal/presentation/http/handler"
	"github.com/billify/billify-api/internal/presentation/http/middleware"
	"github.com/billify/billify-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Bill    *handler.BillHandler
	Payment *handler.PaymentHandler
	Support *handler.SupportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Log             *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
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

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/profile", h.Auth.UpdateProfile)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:barcode", h.Product.GetByBarcode)
	}

	// Bills
	bills := protected.Group("/bills")
	{
		bills.POST("/create", idempotent, h.Bill.Create)
		bills.GET("/my", h.Bill.List)
		bills.GET("/:id", h.Bill.Get)
		bills.DELETE("/:id", h.Bill.Delete)
	}

	// Payments
	payments := protected.Group("/payments")
	{
		payments.POST("/create-order", h.Payment.CreateOrder)
		payments.POST("/verify", idempotent, h.Payment.Verify)
		payments.GET("/my", h.Payment.List)
	}

	// Support tickets
	support := protected.Group("/support")
	{
		support.POST("", h.Support.Create)
		support.GET("/my", h.Support.List)
	}
}
