package handlers

import (
	"net/http"
	"time"

	"task-bidding-api/internal/store"

	"github.com/gin-gonic/gin"
)

// UserHandler serves profile reads and updates plus public marketplace stats.
type UserHandler struct {
	store   *store.Store
	timeout time.Duration
}

func NewUserHandler(s *store.Store, timeout time.Duration) *UserHandler {
	return &UserHandler{store: s, timeout: timeout}
}

// GetAuthUser handles GET /api/auth/user
func (h *UserHandler) GetAuthUser(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	user, err := h.store.GetUser(ctx, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	IsWorker *bool   `json:"isWorker"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

// UpdateProfile handles PATCH /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	user, err := h.store.UpdateUserProfile(ctx, userID, store.ProfileUpdate{
		IsWorker: req.IsWorker,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetStats handles GET /api/stats
func (h *UserHandler) GetStats(c *gin.Context) {
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	stats, err := h.store.GetWorkerStats(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
