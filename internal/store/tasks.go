package store

import (
	"context"
	"time"

	"task-bidding-api/internal/apperrors"
	"task-bidding-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewTask carries the fields a customer supplies when posting a task.
type NewTask struct {
	CustomerID  string
	Title       string
	Description string
	Category    models.TaskCategory
	Location    string
	BudgetMin   decimal.Decimal
	BudgetMax   decimal.Decimal
	Urgency     models.TaskUrgency
	Photos      []string
	DueDate     *time.Time
}

// CreateTask validates and inserts a new open task.
func (s *Store) CreateTask(ctx context.Context, in NewTask) (*models.Task, error) {
	if !in.Category.Valid() {
		return nil, apperrors.Validation("unknown category")
	}
	if !in.Urgency.Valid() {
		return nil, apperrors.Validation("unknown urgency")
	}
	if !in.BudgetMin.IsPositive() || !in.BudgetMax.IsPositive() {
		return nil, apperrors.Validation("budget bounds must be positive")
	}
	if in.BudgetMax.LessThan(in.BudgetMin) {
		return nil, apperrors.Validation("budgetMax must not be less than budgetMin")
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		CustomerID:  in.CustomerID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		BudgetMin:   in.BudgetMin,
		BudgetMax:   in.BudgetMax,
		Urgency:     in.Urgency,
		Status:      models.StatusOpen,
		Photos:      in.Photos,
		DueDate:     in.DueDate,
	}
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, dbErr(err, "task not found")
	}
	return task, nil
}

// GetTask returns a task with its customer, worker and bids preloaded.
func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Worker").
		Preload("Bids").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, dbErr(err, "task not found")
	}
	return &task, nil
}

// GetTasksByCustomer returns the tasks a customer posted, newest first.
func (s *Store) GetTasksByCustomer(ctx context.Context, customerID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Preload("Worker").
		Preload("Bids").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&tasks).Error
	if err != nil {
		return nil, dbErr(err, "task not found")
	}
	return tasks, nil
}

// GetTasksByWorker returns the tasks assigned to a worker, newest first.
func (s *Store) GetTasksByWorker(ctx context.Context, workerID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Where("worker_id = ?", workerID).
		Order("created_at desc").
		Find(&tasks).Error
	if err != nil {
		return nil, dbErr(err, "task not found")
	}
	return tasks, nil
}

// GetOpenTasks returns up to limit open tasks, newest first.
func (s *Store) GetOpenTasks(ctx context.Context, limit int) ([]models.Task, error) {
	if limit <= 0 {
		limit = 50
	}
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Bids").
		Where("status = ?", models.StatusOpen).
		Order("created_at desc").
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, dbErr(err, "task not found")
	}
	return tasks, nil
}

// UpdateTaskStatus moves a task through its state machine. Only the owning
// customer or the assigned worker may call it, and "assigned" is never a
// valid target here: assignment happens exclusively through AcceptBid, which
// also sets workerId and finalPrice.
func (s *Store) UpdateTaskStatus(ctx context.Context, taskID string, next models.TaskStatus, callerID string) (*models.Task, error) {
	if !next.Valid() {
		return nil, apperrors.Validation("unknown status")
	}
	if next == models.StatusAssigned {
		return nil, apperrors.InvalidState("tasks are assigned by accepting a bid, not by a status update")
	}

	lock := s.lockTask(taskID)
	lock.Lock()
	defer lock.Unlock()

	var task models.Task
	if err := s.db.WithContext(ctx).First(&task, "id = ?", taskID).Error; err != nil {
		return nil, dbErr(err, "task not found")
	}
	if task.CustomerID != callerID && (task.WorkerID == nil || *task.WorkerID != callerID) {
		return nil, apperrors.Forbidden("only the customer or the assigned worker may update this task")
	}
	if !task.Status.CanTransitionTo(next) {
		return nil, apperrors.InvalidState("cannot move task from " + string(task.Status) + " to " + string(next))
	}

	task.Status = next
	if next == models.StatusCompleted {
		now := time.Now()
		task.CompletedAt = &now
	}
	if err := s.db.WithContext(ctx).Save(&task).Error; err != nil {
		return nil, dbErr(err, "task not found")
	}
	return &task, nil
}

// AddCompletionPhotos attaches completion photos to a completed task.
func (s *Store) AddCompletionPhotos(ctx context.Context, taskID string, photos []string, callerID string) (*models.Task, error) {
	if len(photos) == 0 {
		return nil, apperrors.Validation("photos must not be empty")
	}

	lock := s.lockTask(taskID)
	lock.Lock()
	defer lock.Unlock()

	var task models.Task
	if err := s.db.WithContext(ctx).First(&task, "id = ?", taskID).Error; err != nil {
		return nil, dbErr(err, "task not found")
	}
	if task.CustomerID != callerID && (task.WorkerID == nil || *task.WorkerID != callerID) {
		return nil, apperrors.Forbidden("only the customer or the assigned worker may update this task")
	}
	if task.Status != models.StatusCompleted {
		return nil, apperrors.InvalidState("completion photos require a completed task")
	}

	task.CompletionPhotos = append(task.CompletionPhotos, photos...)
	if err := s.db.WithContext(ctx).Save(&task).Error; err != nil {
		return nil, dbErr(err, "task not found")
	}
	return &task, nil
}
