package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/skinchef/backend/internal/middleware"
	"github.com/skinchef/backend/internal/service"
)

// HealthCheck returns the liveness indicator.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RegisterRoutes wires services, middleware and all API routes onto the
// engine. redisClient may be nil, in which case generation routes run
// without rate limiting.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, llm service.CompletionClient, redisClient *redis.Client) {
	router.GET("/health", HealthCheck)

	auditService := service.NewAuditService(db)
	plannerService := service.NewPlannerService(llm, auditService)
	plannerHandler := NewPlannerHandler(plannerService)

	var generationLimiter *middleware.RateLimiter
	var limiterMiddleware gin.HandlerFunc
	if redisClient != nil {
		generationLimiter = middleware.NewGenerationRateLimiter(redisClient)
		limiterMiddleware = generationLimiter.Middleware()
	}

	root := router.Group("")
	plannerHandler.RegisterRoutes(root, limiterMiddleware)

	if generationLimiter != nil {
		registerRateLimitRoutes(root, generationLimiter)
	}
}

// registerRateLimitRoutes exposes the remaining generation quota for the
// calling client.
func registerRateLimitRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter) {
	router.GET("/rate-limits/generation", func(c *gin.Context) {
		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":      limiter.Limit(),
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
			"window":     fmt.Sprintf("%ds", int(limiter.Window().Seconds())),
		})
	})
}
