package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/dbpool"
	"github.com/sociograph/sociograph/internal/graph"
	"github.com/sociograph/sociograph/internal/middleware"
	"github.com/sociograph/sociograph/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log          *logrus.Logger
	Pool         *dbpool.Pool
	Hub          *ws.Hub
	Graph        *graph.Graph
	Follows      FollowRepository
	Recommend    RecommendRepository
	GraphQueries GraphRepository
	Analytics    AnalyticsRepository
	Admin        AdminRepository
	CORSOrigins  []string
	Version      string
}

// Router-level limits.
const (
	maxBodySize = 10 << 20 // 10 MB
	rateLimit   = 100      // requests per second per IP
	rateBurst   = 200      // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, deps.Hub, deps.Graph, log, deps.Version)
	follows := NewFollowHandler(deps.Follows, log)
	recommend := NewRecommendHandler(deps.Recommend, log)
	paths := NewGraphHandler(deps.GraphQueries, log)
	analytics := NewAnalyticsHandler(deps.Analytics, log)
	admin := NewAdminHandler(deps.Admin, log)

	// Health and readiness.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Follow mutations.
	api.POST("/follows", follows.Create)
	api.DELETE("/follows/:follower_id/:followee_id", follows.Delete)

	// Per-user listings and recommendations.
	api.GET("/users/:id/followers", follows.Followers)
	api.GET("/users/:id/following", follows.Following)
	api.GET("/users/:id/suggestions", recommend.Suggestions)
	api.GET("/users/:id/mutual/:other_id", recommend.Mutual)
	api.GET("/users/:id/popular", recommend.Popular)
	api.GET("/users/:id/stats", analytics.UserStats)

	// Graph traversal and network analytics.
	api.GET("/graph/path/:from/:to", paths.Path)
	api.GET("/graph/community/:id", paths.Community)
	api.GET("/graph/influencers", analytics.Influencers)
	api.GET("/graph/stats", analytics.NetworkStats)

	// Admin.
	api.POST("/admin/resync", admin.Resync)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
