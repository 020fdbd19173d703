package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a customer or worker account.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID              string              `json:"id" gorm:"primaryKey"`
	Email           string              `json:"email" gorm:"unique;not null"`
	Password        string              `json:"-" gorm:"not null"`
	FirstName       string              `json:"firstName" gorm:"column:first_name"`
	LastName        string              `json:"lastName" gorm:"column:last_name"`
	ProfileImageURL string              `json:"profileImageUrl" gorm:"column:profile_image_url"`
	Phone           string              `json:"phone"`
	Location        string              `json:"location"`
	IsWorker        bool                `json:"isWorker" gorm:"column:is_worker;default:false"`
	WorkerRating    decimal.NullDecimal `json:"workerRating" gorm:"column:worker_rating;type:decimal(3,2)"`
	CompletedTasks  int                 `json:"completedTasks" gorm:"column:completed_tasks;default:0"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
