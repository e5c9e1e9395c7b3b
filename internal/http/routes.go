package http

import (
	"time"

	"points_ledger/internal/config"
	"points_ledger/internal/http/handlers"
	"points_ledger/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, handlers.HandlerConfig{
		HistoryLimit:    cfg.HistoryLimit,
		HistoryMaxLimit: cfg.HistoryMaxLimit,
	})
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h, cfg.UserRateLimit, cfg.UserRateWindow)

	// Legacy /api routes (kept for backward compatibility)
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(api, h, cfg.UserRateLimit, cfg.UserRateWindow)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, userRateLimit int, userRateWindow time.Duration) {
	// Per-user limiter for the write path (after JWT so user_id is set)
	userRL := middleware.UserRateLimit(userRateLimit, userRateWindow)

	api.GET("/me", middleware.JWT(), h.Me)
	api.GET("/balance", middleware.JWT(), h.Balance)
	api.POST("/points", middleware.JWT(), userRL, h.Points)
	api.GET("/history", middleware.JWT(), h.History)
}
