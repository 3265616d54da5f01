package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminHandler serves administrative endpoints.
type AdminHandler struct {
	repo AdminRepository
	log  *logrus.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(repo AdminRepository, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{repo: repo, log: log}
}

// Resync handles POST /api/v1/admin/resync. It rebuilds the in-memory
// graph from the follows table and reports how many edges were loaded.
func (h *AdminHandler) Resync(c *gin.Context) {
	n, err := h.repo.Resync(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("resyncing graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithField("follows", n).Info("graph resynced")

	c.JSON(http.StatusOK, gin.H{"follows": n})
}
