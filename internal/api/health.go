// Package api provides HTTP handlers for the sociograph server.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/dbpool"
	"github.com/sociograph/sociograph/internal/graph"
	"github.com/sociograph/sociograph/internal/ws"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	pool      *dbpool.Pool
	hub       *ws.Hub
	graph     *graph.Graph
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(pool *dbpool.Pool, hub *ws.Hub, g *graph.Graph, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		pool:      pool,
		hub:       hub,
		graph:     g,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	Users         int     `json:"users"`
	Follows       int     `json:"follows"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /health. It returns status with db state, graph
// counts, and uptime.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Database:      "connected",
		Users:         h.graph.NodeCount(),
		Follows:       h.graph.EdgeCount(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	// Best-effort database ping (non-fatal for liveness).
	if h.pool != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.pool.HealthCheck(ctx); err != nil {
			resp.Database = "disconnected"
		}
	} else {
		resp.Database = "not_configured"
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /ready, checking DB, schema, and the WebSocket hub.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{
		"database":  "ok",
		"schema":    "ok",
		"websocket": "ok",
	}
	status := "ready"
	statusCode := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	// Check database connectivity.
	if err := h.pool.HealthCheck(ctx); err != nil {
		h.log.WithError(err).Error("readiness: database health check failed")
		checks["database"] = "error"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	// Check schema by resolving the follows table.
	if checks["database"] == "ok" {
		if err := h.checkSchema(ctx); err != nil {
			h.log.WithError(err).Error("readiness: schema check failed")
			checks["schema"] = "error"
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		}
	} else {
		checks["schema"] = "unknown"
	}

	// A stopped hub means shutdown is in progress; stop routing traffic here.
	if !h.hub.Alive() {
		checks["websocket"] = "error"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, readinessResponse{
		Status: status,
		Checks: checks,
	})
}

// checkSchema verifies that the follows table exists.
func (h *HealthHandler) checkSchema(ctx context.Context) error {
	var present bool
	err := h.pool.QueryRow(ctx, "SELECT to_regclass('follows') IS NOT NULL").Scan(&present)
	if err != nil {
		return fmt.Errorf("schema check: %w", err)
	}

	if !present {
		return fmt.Errorf("schema check: follows table missing")
	}

	return nil
}
