package store

import (
	"context"

	"task-bidding-api/internal/apperrors"
	"task-bidding-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NewBid carries the fields a worker supplies when bidding on a task.
type NewBid struct {
	TaskID            string
	WorkerID          string
	Amount            decimal.Decimal
	Message           string
	EstimatedDuration string
}

// CreateBid inserts a pending bid. The task must still be open; the check
// runs inside the transaction and under the task lock so a submission racing
// an acceptance cannot slip a bid onto an assigned task.
func (s *Store) CreateBid(ctx context.Context, in NewBid) (*models.Bid, error) {
	if !in.Amount.IsPositive() {
		return nil, apperrors.Validation("bid amount must be positive")
	}

	lock := s.lockTask(in.TaskID)
	lock.Lock()
	defer lock.Unlock()

	bid := &models.Bid{
		ID:                uuid.NewString(),
		TaskID:            in.TaskID,
		WorkerID:          in.WorkerID,
		Amount:            in.Amount,
		Message:           in.Message,
		EstimatedDuration: in.EstimatedDuration,
		Status:            models.BidPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, "id = ?", in.TaskID).Error; err != nil {
			return dbErr(err, "task not found")
		}
		if task.Status != models.StatusOpen {
			return apperrors.InvalidState("task is no longer open for bids")
		}
		if err := tx.Create(bid).Error; err != nil {
			return dbErr(err, "task not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bid, nil
}

// GetBidsForTask returns a task's bids joined with the bidding worker,
// cheapest first.
func (s *Store) GetBidsForTask(ctx context.Context, taskID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := s.db.WithContext(ctx).
		Preload("Worker").
		Where("task_id = ?", taskID).
		Order("amount asc").
		Find(&bids).Error
	if err != nil {
		return nil, dbErr(err, "bid not found")
	}
	return bids, nil
}

// GetBidsByWorker returns a worker's bids, newest first.
func (s *Store) GetBidsByWorker(ctx context.Context, workerID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := s.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at desc").
		Find(&bids).Error
	if err != nil {
		return nil, dbErr(err, "bid not found")
	}
	return bids, nil
}

// WithdrawBid lets a worker retract their own pending bid.
func (s *Store) WithdrawBid(ctx context.Context, bidID, callerID string) (*models.Bid, error) {
	var bid models.Bid
	if err := s.db.WithContext(ctx).First(&bid, "id = ?", bidID).Error; err != nil {
		return nil, dbErr(err, "bid not found")
	}
	if bid.WorkerID != callerID {
		return nil, apperrors.Forbidden("only the bidder may withdraw a bid")
	}
	if bid.Status != models.BidPending {
		return nil, apperrors.InvalidState("only pending bids can be withdrawn")
	}

	lock := s.lockTask(bid.TaskID)
	lock.Lock()
	defer lock.Unlock()

	err := s.db.WithContext(ctx).Model(&bid).
		Where("status = ?", models.BidPending).
		Update("status", models.BidWithdrawn).Error
	if err != nil {
		return nil, dbErr(err, "bid not found")
	}
	bid.Status = models.BidWithdrawn
	return &bid, nil
}

// AcceptResult is what a successful bid acceptance produces.
type AcceptResult struct {
	Bid     *models.Bid
	Task    *models.Task
	Payment *models.Payment
}

// AcceptBid accepts one bid on behalf of the task's customer. In a single
// transaction it marks the bid accepted, rejects every other pending bid on
// the task, assigns the task to the bidder at the bid amount, and creates
// the pending payment record with the platform fee. The per-task lock plus
// the status re-check inside the transaction guarantee that of two racing
// accepts exactly one succeeds; the other sees the task already assigned.
func (s *Store) AcceptBid(ctx context.Context, bidID, callerID string) (*AcceptResult, error) {
	var probe models.Bid
	if err := s.db.WithContext(ctx).First(&probe, "id = ?", bidID).Error; err != nil {
		return nil, dbErr(err, "bid not found")
	}

	lock := s.lockTask(probe.TaskID)
	lock.Lock()
	defer lock.Unlock()

	res := &AcceptResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bid models.Bid
		if err := tx.First(&bid, "id = ?", bidID).Error; err != nil {
			return dbErr(err, "bid not found")
		}
		var task models.Task
		if err := tx.First(&task, "id = ?", bid.TaskID).Error; err != nil {
			return dbErr(err, "task not found")
		}
		if task.CustomerID != callerID {
			return apperrors.Forbidden("only the task's customer may accept a bid")
		}
		if task.Status != models.StatusOpen {
			return apperrors.InvalidState("task is no longer open")
		}
		if bid.Status != models.BidPending {
			return apperrors.InvalidState("bid is not pending")
		}

		bid.Status = models.BidAccepted
		if err := tx.Save(&bid).Error; err != nil {
			return dbErr(err, "bid not found")
		}
		err := tx.Model(&models.Bid{}).
			Where("task_id = ? AND id != ? AND status = ?", task.ID, bid.ID, models.BidPending).
			Update("status", models.BidRejected).Error
		if err != nil {
			return dbErr(err, "bid not found")
		}

		task.Status = models.StatusAssigned
		task.WorkerID = &bid.WorkerID
		task.FinalPrice = decimal.NewNullDecimal(bid.Amount)
		if err := tx.Save(&task).Error; err != nil {
			return dbErr(err, "task not found")
		}

		payment := &models.Payment{
			ID:          uuid.NewString(),
			TaskID:      task.ID,
			CustomerID:  task.CustomerID,
			WorkerID:    bid.WorkerID,
			Amount:      bid.Amount,
			PlatformFee: bid.Amount.Mul(s.feeRate).Round(2),
			Status:      models.PaymentPending,
		}
		if err := tx.Create(payment).Error; err != nil {
			return dbErr(err, "payment not found")
		}

		res.Bid = &bid
		res.Task = &task
		res.Payment = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
