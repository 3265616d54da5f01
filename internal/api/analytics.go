package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// defaultMinFollowers is the follower floor applied to the influencer
// listing when the caller does not pass one.
const defaultMinFollowers = 10

// AnalyticsHandler serves network-wide statistics and rankings.
type AnalyticsHandler struct {
	repo AnalyticsRepository
	log  *logrus.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler with the given service and logger.
func NewAnalyticsHandler(repo AnalyticsRepository, log *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{repo: repo, log: log}
}

// Influencers handles GET /api/v1/graph/influencers.
func (h *AnalyticsHandler) Influencers(c *gin.Context) {
	minFollowers := parseCount(c.DefaultQuery("min_followers", "10"), defaultMinFollowers)
	limit := parseLimit(c.DefaultQuery("limit", "10"), defaultRankLimit)

	list, err := h.repo.Influencers(c.Request.Context(), minFollowers, limit)
	if err != nil {
		h.log.WithError(err).Error("ranking influencers")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, list)
}

// NetworkStats handles GET /api/v1/graph/stats.
func (h *AnalyticsHandler) NetworkStats(c *gin.Context) {
	stats, err := h.repo.NetworkStats(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("computing network stats")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, stats)
}

// UserStats handles GET /api/v1/users/:id/stats.
func (h *AnalyticsHandler) UserStats(c *gin.Context) {
	id, ok := userIDParam(c, "id")
	if !ok {
		return
	}

	// Zero falls through to the configured community depth.
	depth := parseCount(c.Query("depth"), 0)

	stats, err := h.repo.UserStats(c.Request.Context(), id, depth)
	if err != nil {
		h.log.WithError(err).Error("computing user stats")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, stats)
}
