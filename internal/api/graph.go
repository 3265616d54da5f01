package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GraphHandler serves graph traversal endpoints.
type GraphHandler struct {
	repo GraphRepository
	log  *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given service and logger.
func NewGraphHandler(repo GraphRepository, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{repo: repo, log: log}
}

// Path handles GET /api/v1/graph/path/:from/:to. An unconnected pair is a
// valid result, not an error: the response reports connected=false with an
// empty path.
func (h *GraphHandler) Path(c *gin.Context) {
	from, ok := userIDParam(c, "from")
	if !ok {
		return
	}

	to, ok := userIDParam(c, "to")
	if !ok {
		return
	}

	// Zero means "use the configured ceiling"; the service also clamps
	// anything above it.
	maxDepth := parseCount(c.Query("max_depth"), 0)

	res, err := h.repo.ShortestPath(c.Request.Context(), from, to, maxDepth)
	if err != nil {
		h.log.WithError(err).Error("finding shortest path")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}

// Community handles GET /api/v1/graph/community/:id.
func (h *GraphHandler) Community(c *gin.Context) {
	id, ok := userIDParam(c, "id")
	if !ok {
		return
	}

	depth := parseCount(c.Query("depth"), 0)

	size, err := h.repo.CommunitySize(c.Request.Context(), id, depth)
	if err != nil {
		h.log.WithError(err).Error("measuring community")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": id, "community_size": size})
}
