package handlers

import (
	"net/http"
	"time"

	"task-bidding-api/internal/cache"
	"task-bidding-api/internal/models"
	"task-bidding-api/internal/realtime"
	"task-bidding-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BidHandler serves bid submission, listing, withdrawal and acceptance.
type BidHandler struct {
	store     *store.Store
	hub       *realtime.Hub
	openCache *cache.TTLCache[string, []models.Task]
	timeout   time.Duration
}

func NewBidHandler(s *store.Store, hub *realtime.Hub, openCache *cache.TTLCache[string, []models.Task], timeout time.Duration) *BidHandler {
	return &BidHandler{store: s, hub: hub, openCache: openCache, timeout: timeout}
}

// CreateBidRequest represents the request payload for submitting a bid
type CreateBidRequest struct {
	TaskID            string          `json:"taskId" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Message           string          `json:"message"`
	EstimatedDuration string          `json:"estimatedDuration"`
}

// CreateBid handles POST /api/bids
func (h *BidHandler) CreateBid(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	bid, err := h.store.CreateBid(ctx, store.NewBid{
		TaskID:            req.TaskID,
		WorkerID:          userID,
		Amount:            req.Amount,
		Message:           req.Message,
		EstimatedDuration: req.EstimatedDuration,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	// Notify the task's owner; delivery is best-effort.
	if task, err := h.store.GetTask(ctx, req.TaskID); err == nil {
		h.hub.Send(task.CustomerID, realtime.NewBidEvent(task.ID, bid))
	}

	c.JSON(http.StatusCreated, bid)
}

// ListBids handles GET /api/tasks/:id/bids, cheapest bid first.
func (h *BidHandler) ListBids(c *gin.Context) {
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	bids, err := h.store.GetBidsForTask(ctx, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

// GetMyBids handles GET /api/bids/my
func (h *BidHandler) GetMyBids(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	bids, err := h.store.GetBidsByWorker(ctx, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

// AcceptBid handles POST /api/bids/:bidId/accept
func (h *BidHandler) AcceptBid(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	res, err := h.store.AcceptBid(ctx, c.Param("bidId"), userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.openCache.Clear()
	// Broadcast so the accepted worker and any watching rejected bidders
	// learn immediately; offline parties reconcile on their next fetch.
	h.hub.Broadcast(realtime.BidAcceptedEvent(res.Task.ID, res.Bid.ID, res.Bid.WorkerID), "")

	c.JSON(http.StatusOK, gin.H{
		"bid":     res.Bid,
		"task":    res.Task,
		"payment": res.Payment,
	})
}

// WithdrawBid handles POST /api/bids/:bidId/withdraw
func (h *BidHandler) WithdrawBid(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	bid, err := h.store.WithdrawBid(ctx, c.Param("bidId"), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bid)
}
