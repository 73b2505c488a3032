package handler

import (
	"admin-audit-log/internal/adapter/http/middleware"
	redisStore "admin-audit-log/internal/adapter/storage/redis"
	"admin-audit-log/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuditSvc       ports.AuditService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        prometheus.Gatherer // nil = /metrics not served
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (pings the store and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	selfAudit := func(actionType string) gin.HandlerFunc {
		return middleware.SelfAudit(deps.AuditSvc, actionType, deps.Logger)
	}

	// --- JWT-authenticated admin routes ---
	adminAuth := middleware.AdminAuth(deps.TokenSvc, deps.Logger)
	auditHandler := NewAuditHandler(deps.AuditSvc)

	audit := r.Group("/api/v1/admin/audit", adminAuth)
	{
		audit.POST("/actions", rl("audit_write"), auditHandler.AppendAction)
		audit.GET("/actions", rl("audit_read"), auditHandler.ListActions)
		audit.GET("/actions/:id", rl("audit_read"), auditHandler.GetAction)
		audit.GET("/actions/:id/verify", rl("audit_verify"), selfAudit(middleware.ActionAuditLogVerify), auditHandler.VerifyAction)
		audit.GET("/action-types", rl("audit_read"), auditHandler.ActionTypes)
		audit.GET("/export", rl("audit_export"), selfAudit(middleware.ActionAuditLogExport), auditHandler.Export)
		audit.GET("/verify", rl("audit_verify"), selfAudit(middleware.ActionAuditLogVerify), auditHandler.VerifyAll)
	}

	return r
}
