package store

import (
	"context"

	"task-bidding-api/internal/models"
)

// GetUser returns the user with the given id.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, dbErr(err, "user not found")
	}
	return &user, nil
}

// GetUserByEmail returns the user with the given email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, dbErr(err, "user not found")
	}
	return &user, nil
}

// CreateUser inserts a new user.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return dbErr(err, "user not found")
	}
	return nil
}

// ProfileUpdate carries the mutable profile fields of a user.
type ProfileUpdate struct {
	IsWorker *bool
	Phone    *string
	Location *string
}

// UpdateUserProfile applies a partial profile update and returns the user.
func (s *Store) UpdateUserProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.IsWorker != nil {
		user.IsWorker = *upd.IsWorker
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Location != nil {
		user.Location = *upd.Location
	}
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, dbErr(err, "user not found")
	}
	return user, nil
}
