package store

import (
	"context"

	"task-bidding-api/internal/apperrors"
	"task-bidding-api/internal/models"

	"github.com/google/uuid"
)

// NewMessage carries the fields of a chat message between task parties.
type NewMessage struct {
	TaskID      string
	SenderID    string
	ReceiverID  string
	Content     string
	Attachments []string
}

// CreateMessage inserts a message on a task's conversation.
func (s *Store) CreateMessage(ctx context.Context, in NewMessage) (*models.Message, error) {
	if in.Content == "" {
		return nil, apperrors.Validation("message content must not be empty")
	}
	if _, err := s.GetTask(ctx, in.TaskID); err != nil {
		return nil, err
	}
	msg := &models.Message{
		ID:          uuid.NewString(),
		TaskID:      in.TaskID,
		SenderID:    in.SenderID,
		ReceiverID:  in.ReceiverID,
		Content:     in.Content,
		Attachments: in.Attachments,
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, dbErr(err, "task not found")
	}
	return msg, nil
}

// GetMessagesForTask returns a task's messages in chronological order.
func (s *Store) GetMessagesForTask(ctx context.Context, taskID string) ([]models.Message, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at asc").
		Find(&msgs).Error
	if err != nil {
		return nil, dbErr(err, "task not found")
	}
	return msgs, nil
}
