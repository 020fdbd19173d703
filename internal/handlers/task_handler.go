package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"task-bidding-api/internal/cache"
	"task-bidding-api/internal/models"
	"task-bidding-api/internal/realtime"
	"task-bidding-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TaskHandler serves the task lifecycle endpoints. The open-task listing is
// cached for a few seconds; any mutation that can change it clears the cache.
type TaskHandler struct {
	store     *store.Store
	hub       *realtime.Hub
	openCache *cache.TTLCache[string, []models.Task]
	cacheTTL  time.Duration
	timeout   time.Duration
}

func NewTaskHandler(s *store.Store, hub *realtime.Hub, openCache *cache.TTLCache[string, []models.Task], cacheTTL, timeout time.Duration) *TaskHandler {
	return &TaskHandler{store: s, hub: hub, openCache: openCache, cacheTTL: cacheTTL, timeout: timeout}
}

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Category    models.TaskCategory `json:"category" binding:"required"`
	Location    string              `json:"location" binding:"required"`
	BudgetMin   decimal.Decimal     `json:"budgetMin" binding:"required"`
	BudgetMax   decimal.Decimal     `json:"budgetMax" binding:"required"`
	Urgency     models.TaskUrgency  `json:"urgency" binding:"required"`
	Photos      []string            `json:"photos"`
	DueDate     *time.Time          `json:"dueDate"`
}

// UpdateTaskStatusRequest represents a minimal request to change status
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// CompletionPhotosRequest attaches proof-of-completion photos
type CompletionPhotosRequest struct {
	Photos []string `json:"photos" binding:"required"`
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	task, err := h.store.CreateTask(ctx, store.NewTask{
		CustomerID:  userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Urgency:     req.Urgency,
		Photos:      req.Photos,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	h.openCache.Clear()
	h.hub.Broadcast(realtime.NewTaskEvent(task), userID)

	c.JSON(http.StatusCreated, task)
}

// GetMyTasks handles GET /api/tasks/my
func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	tasks, err := h.store.GetTasksByCustomer(ctx, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetAssignedTasks handles GET /api/tasks/assigned
func (h *TaskHandler) GetAssignedTasks(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	tasks, err := h.store.GetTasksByWorker(ctx, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetOpenTasks handles GET /api/tasks/open?limit=
func (h *TaskHandler) GetOpenTasks(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	key := fmt.Sprintf("open:%d", limit)
	if tasks, ok := h.openCache.Get(key); ok {
		c.JSON(http.StatusOK, tasks)
		return
	}

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	tasks, err := h.store.GetOpenTasks(ctx, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	h.openCache.Set(key, tasks, h.cacheTTL)
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID handles GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	task, err := h.store.GetTask(ctx, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	task, err := h.store.UpdateTaskStatus(ctx, c.Param("id"), req.Status, userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.openCache.Clear()
	h.hub.Broadcast(realtime.TaskStatusEvent(task.ID, task.Status), "")

	c.JSON(http.StatusOK, task)
}

// AddCompletionPhotos handles POST /api/tasks/:id/completion-photos
func (h *TaskHandler) AddCompletionPhotos(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req CompletionPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqCtx(c, h.timeout)
	defer cancel()
	task, err := h.store.AddCompletionPhotos(ctx, c.Param("id"), req.Photos, userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
