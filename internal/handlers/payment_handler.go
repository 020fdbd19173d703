package handlers

import (
	"net/http"
	"time"

	"task-bidding-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentHandler fronts the external payment processor. The processor SDK is
// not wired yet, so intent creation fabricates a reference and records it on
// the task's payment row.
type PaymentHandler struct {
	store   *store.Store
	timeout time.Duration
}

func NewPaymentHandler(s *store.Store, timeout time.Duration) *PaymentHandler {
	return &PaymentHandler{store: s, timeout: timeout}
}

// CreatePaymentIntentRequest represents the payload for funding a task
type CreatePaymentIntentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	TaskID string          `json:"taskId" binding:"required"`
}

// CreatePaymentIntent handles POST /api/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	intentID := "pi_" + uuid.NewString()

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	payment, err := h.store.AttachProviderIntent(ctx, req.TaskID, intentID, userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intentID + "_secret_" + uuid.NewString(),
		"paymentId":    payment.ID,
	})
}
