package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/models"
)

// FollowHandler serves follow mutation and listing endpoints.
type FollowHandler struct {
	repo FollowRepository
	log  *logrus.Logger
}

// NewFollowHandler creates a FollowHandler with the given service and logger.
func NewFollowHandler(repo FollowRepository, log *logrus.Logger) *FollowHandler {
	return &FollowHandler{repo: repo, log: log}
}

// Create handles POST /api/v1/follows.
func (h *FollowHandler) Create(c *gin.Context) {
	var req models.CreateFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	res, err := h.repo.Follow(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrMissingFollowerID) || errors.Is(err, models.ErrMissingFolloweeID) ||
			errors.Is(err, models.ErrInvalidUserID) || errors.Is(err, models.ErrSelfFollow) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		if errors.Is(err, models.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())

			return
		}

		if errors.Is(err, models.ErrAlreadyFollowing) {
			respondError(c, http.StatusConflict, ErrCodeConflict, err.Error())

			return
		}

		h.log.WithError(err).Error("creating follow")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"follower_id": res.FollowerID,
		"followee_id": res.FolloweeID,
		"is_mutual":   res.IsMutual,
	}).Info("follow created")

	c.JSON(http.StatusCreated, res)
}

// Delete handles DELETE /api/v1/follows/:follower_id/:followee_id.
func (h *FollowHandler) Delete(c *gin.Context) {
	followerID, ok := userIDParam(c, "follower_id")
	if !ok {
		return
	}

	followeeID, ok := userIDParam(c, "followee_id")
	if !ok {
		return
	}

	if err := h.repo.Unfollow(c.Request.Context(), followerID, followeeID); err != nil {
		if errors.Is(err, models.ErrFollowNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())

			return
		}

		h.log.WithError(err).Error("deleting follow")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"follower_id": followerID,
		"followee_id": followeeID,
	}).Info("follow removed")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Followers handles GET /api/v1/users/:id/followers.
func (h *FollowHandler) Followers(c *gin.Context) {
	id, ok := userIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.repo.Followers(c.Request.Context(), id)
	if err != nil {
		h.log.WithError(err).Error("listing followers")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, list)
}

// Following handles GET /api/v1/users/:id/following.
func (h *FollowHandler) Following(c *gin.Context) {
	id, ok := userIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.repo.Following(c.Request.Context(), id)
	if err != nil {
		h.log.WithError(err).Error("listing following")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, list)
}
