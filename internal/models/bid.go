package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BidStatus represents the status of a bid
type BidStatus string

const (
	BidPending   BidStatus = "pending"
	BidAccepted  BidStatus = "accepted"
	BidRejected  BidStatus = "rejected"
	BidWithdrawn BidStatus = "withdrawn"
)

// Terminal reports whether the bid can no longer change status.
func (s BidStatus) Terminal() bool {
	return s != BidPending
}

// Bid represents a worker's priced offer on a task.
// A task holds at most one accepted bid; accepting one rejects the rest.
type Bid struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	TaskID            string          `json:"taskId" gorm:"column:task_id;not null;index"`
	WorkerID          string          `json:"workerId" gorm:"column:worker_id;not null;index"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Message           string          `json:"message"`
	EstimatedDuration string          `json:"estimatedDuration" gorm:"column:estimated_duration"`
	Status            BidStatus       `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`

	Worker *User `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

// TableName specifies the table name for Bid Model
func (Bid) TableName() string {
	return "bids"
}
