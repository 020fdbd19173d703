package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the escrow state of a payment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentHeld     PaymentStatus = "held"
	PaymentReleased PaymentStatus = "released"
	PaymentRefunded PaymentStatus = "refunded"
)

// Payment tracks escrow and the platform fee for an accepted bid.
// Exactly one payment exists per task, created inside the accept transaction.
type Payment struct {
	ID               string          `json:"id" gorm:"primaryKey"`
	TaskID           string          `json:"taskId" gorm:"column:task_id;not null;uniqueIndex"`
	CustomerID       string          `json:"customerId" gorm:"column:customer_id;not null"`
	WorkerID         string          `json:"workerId" gorm:"column:worker_id;not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	PlatformFee      decimal.Decimal `json:"platformFee" gorm:"column:platform_fee;type:decimal(10,2);not null"`
	ProviderIntentID *string         `json:"providerIntentId" gorm:"column:provider_intent_id"`
	Status           PaymentStatus   `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// TableName specifies the table name for Payment Model
func (Payment) TableName() string {
	return "payments"
}
