package api

import (
	"context"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/middleware"
	"github.com/sociograph/sociograph/internal/models"
	"github.com/sociograph/sociograph/internal/ws"
)

// userIDParam parses the named path parameter as a user id. On failure it
// writes the 400 response itself and returns false.
func userIDParam(c *gin.Context, name string) (models.UserID, bool) {
	id, err := models.ParseUserID(c.Param(name))
	if err != nil {
		respondError(c, 400, ErrCodeInvalidRequest, "invalid "+name+": must be a positive integer")

		return 0, false
	}

	return id, true
}

func wsHandler(appCtx context.Context, log *logrus.Logger, hub *ws.Hub, corsOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// CORS origins are reused as WebSocket origin patterns. The config
		// validator ensures these are safe host patterns (no wildcards etc.).
		conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
			OriginPatterns:       corsOrigins,
			CompressionMode:      websocket.CompressionContextTakeover,
			CompressionThreshold: 128,
		})
		if err != nil {
			log.WithError(err).Error("websocket accept failed")

			return
		}

		client := ws.NewClient(hub, conn)
		hub.Register(client)

		// Derive a context that cancels when either the server shuts down or the request ends.
		wsCtx, wsCancel := context.WithCancel(appCtx)
		go func() {
			select {
			case <-c.Request.Context().Done():
				wsCancel()
			case <-wsCtx.Done():
			}
		}()

		go client.WritePump(wsCtx)
		client.ReadPump(wsCtx)
		wsCancel()
	}
}

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// maxListLimit caps the maximum number of items a listing may return.
const maxListLimit = 1000

func parseLimit(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	if v > maxListLimit {
		return maxListLimit
	}

	return v
}

// parseCount is parseLimit for parameters where zero is meaningful
// (depth and follower floors): zero passes through, negatives fall back.
func parseCount(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fallback
	}

	return v
}
