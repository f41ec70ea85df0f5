package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tridash/internal/auth"
	"tridash/internal/domain"
	"tridash/internal/handler"
	"tridash/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler      *handler.AuthHandler
	DashboardHandler *handler.DashboardHandler
	DriverHandler    *handler.DriverHandler
	UserHandler      *handler.UserHandler
	RideHandler      *handler.RideHandler
	PaymentHandler   *handler.PaymentHandler
	TokenManager     *auth.Manager
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")

	// Login is the only unauthenticated route.
	v1.POST("/auth/login", deps.AuthHandler.Login)

	// Everything else requires a staff token.
	staff := v1.Group("", auth.Middleware(deps.TokenManager, domain.RoleAdmin))
	{
		// Dashboard routes.
		dashboard := staff.Group("/dashboard")
		{
			dashboard.GET("/overview", deps.DashboardHandler.GetOverview)
			dashboard.GET("/trends", deps.DashboardHandler.GetTrends)
		}

		// Driver moderation routes.
		drivers := staff.Group("/drivers")
		{
			drivers.GET("", deps.DriverHandler.GetAll)
			drivers.GET("/:id", deps.DriverHandler.GetDriver)
			drivers.POST("/:id/approve", deps.DriverHandler.Approve)
			drivers.POST("/:id/reject", deps.DriverHandler.Reject)
			drivers.POST("/:id/suspend", deps.DriverHandler.Suspend)
			drivers.POST("/:id/reinstate", deps.DriverHandler.Reinstate)
		}

		// User moderation routes.
		users := staff.Group("/users")
		{
			users.GET("", deps.UserHandler.GetAll)
			users.POST("/:id/enable", deps.UserHandler.Enable)
			users.POST("/:id/disable", deps.UserHandler.Disable)
		}

		// Ride routes.
		rides := staff.Group("/rides")
		{
			rides.GET("", deps.RideHandler.GetAll)
			rides.GET("/:id", deps.RideHandler.GetRide)
		}

		// Payment routes.
		payments := staff.Group("/payments")
		{
			payments.GET("", deps.PaymentHandler.GetAll)
			payments.GET("/:id", deps.PaymentHandler.GetPayment)
			payments.POST("/:id/commission", deps.PaymentHandler.ApplyCommission)
			payments.POST("/:id/verify", deps.PaymentHandler.VerifyPayment)
		}
	}

	return router
}
