package handlers

import (
	"net/http"
	"time"

	"task-bidding-api/internal/realtime"
	"task-bidding-api/internal/store"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves the per-task conversation between customer and worker.
type MessageHandler struct {
	store   *store.Store
	hub     *realtime.Hub
	timeout time.Duration
}

func NewMessageHandler(s *store.Store, hub *realtime.Hub, timeout time.Duration) *MessageHandler {
	return &MessageHandler{store: s, hub: hub, timeout: timeout}
}

// CreateMessageRequest represents the payload for sending a message
type CreateMessageRequest struct {
	TaskID      string   `json:"taskId" binding:"required"`
	ReceiverID  string   `json:"receiverId" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Attachments []string `json:"attachments"`
}

// CreateMessage handles POST /api/messages
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	msg, err := h.store.CreateMessage(ctx, store.NewMessage{
		TaskID:      req.TaskID,
		SenderID:    userID,
		ReceiverID:  req.ReceiverID,
		Content:     req.Content,
		Attachments: req.Attachments,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	h.hub.Send(req.ReceiverID, realtime.NewMessageEvent(msg))

	c.JSON(http.StatusCreated, msg)
}

// GetMessages handles GET /api/tasks/:id/messages
func (h *MessageHandler) GetMessages(c *gin.Context) {
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	msgs, err := h.store.GetMessagesForTask(ctx, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
