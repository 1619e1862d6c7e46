package handler

import (
	"deadletter-watchdog/internal/adapter/http/middleware"
	"deadletter-watchdog/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	DeadletterSvc  ports.DeadletterService
	ActionSvc      ports.ActionService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	authHandler := NewAuthHandler(deps.AuthSvc)
	deadletterHandler := NewDeadletterHandler(deps.DeadletterSvc)
	actionHandler := NewActionHandler(deps.ActionSvc)

	// --- API v1 ---
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	v1.GET("/actions", jwtAuth, actionHandler.ListActionTypes)

	transactions := v1.Group("/deadletter/transactions", jwtAuth)
	{
		transactions.GET("", deadletterHandler.ListByDate)
		transactions.POST("/:transactionId/actions", actionHandler.RecordAction)
		transactions.GET("/:transactionId/actions", actionHandler.ListActions)
	}

	// --- API v2 ---
	v2 := r.Group("/api/v2")

	v2.GET("/deadletter/transactions", jwtAuth, deadletterHandler.ListByDateRange)

	return r
}
