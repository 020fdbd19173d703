package store

import (
	"context"

	"task-bidding-api/internal/apperrors"
	"task-bidding-api/internal/models"
)

// GetPaymentByTask returns the payment created when the task's bid was accepted.
func (s *Store) GetPaymentByTask(ctx context.Context, taskID string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, "task_id = ?", taskID).Error; err != nil {
		return nil, dbErr(err, "payment not found")
	}
	return &payment, nil
}

// AttachProviderIntent records the payment processor's reference on a
// task's payment. Only the paying customer may attach it.
func (s *Store) AttachProviderIntent(ctx context.Context, taskID, intentID, callerID string) (*models.Payment, error) {
	payment, err := s.GetPaymentByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if payment.CustomerID != callerID {
		return nil, apperrors.Forbidden("only the paying customer may fund this payment")
	}
	payment.ProviderIntentID = &intentID
	if err := s.db.WithContext(ctx).Save(payment).Error; err != nil {
		return nil, dbErr(err, "payment not found")
	}
	return payment, nil
}

// UpdatePaymentStatus moves a payment through the escrow lifecycle.
func (s *Store) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, dbErr(err, "payment not found")
	}
	payment.Status = status
	if err := s.db.WithContext(ctx).Save(&payment).Error; err != nil {
		return nil, dbErr(err, "payment not found")
	}
	return &payment, nil
}
