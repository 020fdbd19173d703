package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"task-bidding-api/internal/middleware"
	"task-bidding-api/internal/models"
	"task-bidding-api/internal/store"
	"task-bidding-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	_, err = testutil.SeedUser(db, "u-1", "u-1@example.com", false)
	require.NoError(t, err)

	st := store.New(db, decimal.RequireFromString("0.10"))
	h := NewUserHandler(st, 10*time.Second)

	r := gin.New()
	r.GET("/api/stats", h.GetStats)
	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.GET("/api/auth/user", h.GetAuthUser)
	protected.PATCH("/api/users/profile", h.UpdateProfile)
	return r
}

func TestGetAuthUser(t *testing.T) {
	r := newUserRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/auth/user", bearer(t, "u-1"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "u-1", user.ID)
	require.Equal(t, "u-1@example.com", user.Email)
}

func TestUpdateProfile_BecomeWorker(t *testing.T) {
	r := newUserRouter(t)
	w := doJSON(t, r, http.MethodPatch, "/api/users/profile", bearer(t, "u-1"), map[string]any{
		"isWorker": true,
		"location": "Uptown",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.True(t, user.IsWorker)
	require.Equal(t, "Uptown", user.Location)
}

func TestGetStats_Public(t *testing.T) {
	r := newUserRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats store.WorkerStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.EqualValues(t, 0, stats.ActiveWorkers)
}
