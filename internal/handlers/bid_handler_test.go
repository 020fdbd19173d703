package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"task-bidding-api/internal/cache"
	"task-bidding-api/internal/middleware"
	"task-bidding-api/internal/models"
	"task-bidding-api/internal/realtime"
	"task-bidding-api/internal/store"
	"task-bidding-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBidRouter(t *testing.T) (*gin.Engine, *store.Store, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	st := store.New(db, decimal.RequireFromString("0.10"))
	hub := realtime.NewHub()
	openCache := cache.New[string, []models.Task]()
	timeout := 10 * time.Second

	th := NewTaskHandler(st, hub, openCache, 5*time.Second, timeout)
	bh := NewBidHandler(st, hub, openCache, timeout)

	r := gin.New()
	r.GET("/api/tasks/:id", th.GetTaskByID)
	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.POST("/api/tasks", th.CreateTask)
	protected.POST("/api/bids", bh.CreateBid)
	protected.GET("/api/tasks/:id/bids", bh.ListBids)
	protected.POST("/api/bids/:bidId/accept", bh.AcceptBid)
	return r, st, db
}

func TestBiddingScenario(t *testing.T) {
	r, _, db := newBidRouter(t)
	for _, u := range []struct {
		id     string
		worker bool
	}{{"c-1", false}, {"w-1", true}, {"w-2", true}, {"w-3", true}} {
		_, err := testutil.SeedUser(db, u.id, u.id+"@example.com", u.worker)
		require.NoError(t, err)
	}

	// customer posts a task with budget 20-40
	w := doJSON(t, r, http.MethodPost, "/api/tasks", bearer(t, "c-1"), map[string]any{
		"title":       "Grocery run",
		"description": "Weekly shop",
		"category":    "grocery_shopping",
		"location":    "East side",
		"budgetMin":   "20",
		"budgetMax":   "40",
		"urgency":     "today",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))

	// two workers bid
	w = doJSON(t, r, http.MethodPost, "/api/bids", bearer(t, "w-1"), map[string]any{
		"taskId": task.ID, "amount": "25", "message": "On my way",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var bid1 models.Bid
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bid1))

	w = doJSON(t, r, http.MethodPost, "/api/bids", bearer(t, "w-2"), map[string]any{
		"taskId": task.ID, "amount": "30",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var bid2 models.Bid
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bid2))

	// listing is ascending by amount
	w = doJSON(t, r, http.MethodGet, "/api/tasks/"+task.ID+"/bids", bearer(t, "c-1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bids []models.Bid
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bids))
	require.Len(t, bids, 2)
	require.Equal(t, "w-1", bids[0].WorkerID)
	require.Equal(t, "w-2", bids[1].WorkerID)

	// a non-owner cannot accept, even before the owner does
	w = doJSON(t, r, http.MethodPost, "/api/bids/"+bid1.ID+"/accept", bearer(t, "w-2"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// the owner accepts the cheaper bid
	w = doJSON(t, r, http.MethodPost, "/api/bids/"+bid1.ID+"/accept", bearer(t, "c-1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var accepted struct {
		Bid     models.Bid     `json:"bid"`
		Task    models.Task    `json:"task"`
		Payment models.Payment `json:"payment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accepted))
	require.Equal(t, models.BidAccepted, accepted.Bid.Status)
	require.Equal(t, models.StatusAssigned, accepted.Task.Status)
	require.NotNil(t, accepted.Task.WorkerID)
	require.Equal(t, "w-1", *accepted.Task.WorkerID)
	require.True(t, accepted.Task.FinalPrice.Valid)
	require.True(t, accepted.Task.FinalPrice.Decimal.Equal(decimal.RequireFromString("25")))
	require.True(t, accepted.Payment.Amount.Equal(decimal.RequireFromString("25")))
	require.True(t, accepted.Payment.PlatformFee.Equal(decimal.RequireFromString("2.50")))
	require.Equal(t, models.PaymentPending, accepted.Payment.Status)

	// the competing bid was rejected
	var rejected models.Bid
	require.NoError(t, db.First(&rejected, "id = ?", bid2.ID).Error)
	require.Equal(t, models.BidRejected, rejected.Status)

	// the task no longer takes bids
	w = doJSON(t, r, http.MethodPost, "/api/bids", bearer(t, "w-3"), map[string]any{
		"taskId": task.ID, "amount": "22",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// accepting again conflicts too
	w = doJSON(t, r, http.MethodPost, "/api/bids/"+bid2.ID+"/accept", bearer(t, "c-1"), nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBid_UnknownTask(t *testing.T) {
	r, _, db := newBidRouter(t)
	_, err := testutil.SeedUser(db, "w-1", "w-1@example.com", true)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/bids", bearer(t, "w-1"), map[string]any{
		"taskId": "missing", "amount": "10",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}
