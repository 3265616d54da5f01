package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// defaultRankLimit is how many entries ranked listings return when the
// caller does not pass a limit.
const defaultRankLimit = 10

// RecommendHandler serves suggestion and mutual-connection endpoints.
type RecommendHandler struct {
	repo RecommendRepository
	log  *logrus.Logger
}

// NewRecommendHandler creates a RecommendHandler with the given service and logger.
func NewRecommendHandler(repo RecommendRepository, log *logrus.Logger) *RecommendHandler {
	return &RecommendHandler{repo: repo, log: log}
}

// Suggestions handles GET /api/v1/users/:id/suggestions.
func (h *RecommendHandler) Suggestions(c *gin.Context) {
	id, ok := userIDParam(c, "id")
	if !ok {
		return
	}

	limit := parseLimit(c.DefaultQuery("limit", "10"), defaultRankLimit)

	res, err := h.repo.Suggestions(c.Request.Context(), id, limit)
	if err != nil {
		h.log.WithError(err).Error("building suggestions")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}

// Mutual handles GET /api/v1/users/:id/mutual/:other_id.
func (h *RecommendHandler) Mutual(c *gin.Context) {
	id, ok := userIDParam(c, "id")
	if !ok {
		return
	}

	otherID, ok := userIDParam(c, "other_id")
	if !ok {
		return
	}

	res, err := h.repo.Mutual(c.Request.Context(), id, otherID)
	if err != nil {
		h.log.WithError(err).Error("intersecting connections")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}

// Popular handles GET /api/v1/users/:id/popular.
func (h *RecommendHandler) Popular(c *gin.Context) {
	id, ok := userIDParam(c, "id")
	if !ok {
		return
	}

	limit := parseLimit(c.DefaultQuery("limit", "10"), defaultRankLimit)

	list, err := h.repo.Popular(c.Request.Context(), id, limit)
	if err != nil {
		h.log.WithError(err).Error("ranking followees")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": id, "popular": list})
}
