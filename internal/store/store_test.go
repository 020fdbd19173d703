package store

import (
	"context"
	"testing"

	"task-bidding-api/internal/models"
	"task-bidding-api/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	return New(db, decimal.RequireFromString("0.10")), db
}

func seedUser(t *testing.T, db *gorm.DB, id string, isWorker bool) *models.User {
	t.Helper()
	user, err := testutil.SeedUser(db, id, id+"@example.com", isWorker)
	require.NoError(t, err)
	return user
}

func postTask(t *testing.T, s *Store, customerID string, min, max string) *models.Task {
	t.Helper()
	task, err := s.CreateTask(context.Background(), NewTask{
		CustomerID:  customerID,
		Title:       "Pick up documents",
		Description: "Notary office, before 5pm",
		Category:    models.CategoryDocumentPickup,
		Location:    "Midtown",
		BudgetMin:   decimal.RequireFromString(min),
		BudgetMax:   decimal.RequireFromString(max),
		Urgency:     models.UrgencyToday,
	})
	require.NoError(t, err)
	return task
}

func placeBid(t *testing.T, s *Store, taskID, workerID, amount string) *models.Bid {
	t.Helper()
	bid, err := s.CreateBid(context.Background(), NewBid{
		TaskID:   taskID,
		WorkerID: workerID,
		Amount:   decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return bid
}

// requireWorkerInvariant checks that workerId is set exactly when the task
// has left the open pool without being cancelled, and that finalPrice is set
// exactly when a worker is.
func requireWorkerInvariant(t *testing.T, task *models.Task) {
	t.Helper()
	assignedStates := task.Status == models.StatusAssigned ||
		task.Status == models.StatusInProgress ||
		task.Status == models.StatusCompleted
	require.Equal(t, assignedStates, task.WorkerID != nil, "workerId presence for status %s", task.Status)
	require.Equal(t, task.WorkerID != nil, task.FinalPrice.Valid, "finalPrice presence for status %s", task.Status)
}
