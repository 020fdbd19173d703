package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusOpen       TaskStatus = "open"
	StatusAssigned   TaskStatus = "assigned"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// taskTransitions is the single source of truth for the task state machine.
// open -> assigned happens only through bid acceptance; every non-terminal
// state may be cancelled.
var taskTransitions = map[TaskStatus][]TaskStatus{
	StatusOpen:       {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	_, ok := taskTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are allowed out of s.
func (s TaskStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether s -> next is a legal transition.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, t := range taskTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// TaskCategory represents the kind of errand a task is
type TaskCategory string

const (
	CategoryGroceryShopping TaskCategory = "grocery_shopping"
	CategoryDocumentPickup  TaskCategory = "document_pickup"
	CategoryQueueStanding   TaskCategory = "queue_standing"
	CategoryDelivery        TaskCategory = "delivery"
	CategoryCleaning        TaskCategory = "cleaning"
	CategoryOther           TaskCategory = "other"
)

// Valid reports whether c is a known category.
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryGroceryShopping, CategoryDocumentPickup, CategoryQueueStanding,
		CategoryDelivery, CategoryCleaning, CategoryOther:
		return true
	}
	return false
}

// TaskUrgency represents how soon the customer needs the task done
type TaskUrgency string

const (
	UrgencyASAP      TaskUrgency = "asap"
	UrgencyToday     TaskUrgency = "today"
	UrgencyTomorrow  TaskUrgency = "tomorrow"
	UrgencyThreeDays TaskUrgency = "3_days"
	UrgencyWeek      TaskUrgency = "week"
	UrgencyFlexible  TaskUrgency = "flexible"
)

// Valid reports whether u is a known urgency.
func (u TaskUrgency) Valid() bool {
	switch u {
	case UrgencyASAP, UrgencyToday, UrgencyTomorrow, UrgencyThreeDays,
		UrgencyWeek, UrgencyFlexible:
		return true
	}
	return false
}

// Task represents a unit of work posted by a customer and open for bidding.
// WorkerID and FinalPrice are set together when a bid is accepted and are
// non-null iff the task has left the open state without being cancelled.
type Task struct {
	ID               string              `json:"id" gorm:"primaryKey"`
	CustomerID       string              `json:"customerId" gorm:"column:customer_id;not null;index"`
	WorkerID         *string             `json:"workerId" gorm:"column:worker_id;index"`
	Title            string              `json:"title" gorm:"not null"`
	Description      string              `json:"description" gorm:"not null"`
	Category         TaskCategory        `json:"category" gorm:"not null"`
	Location         string              `json:"location" gorm:"not null"`
	BudgetMin        decimal.Decimal     `json:"budgetMin" gorm:"column:budget_min;type:decimal(10,2);not null"`
	BudgetMax        decimal.Decimal     `json:"budgetMax" gorm:"column:budget_max;type:decimal(10,2);not null"`
	FinalPrice       decimal.NullDecimal `json:"finalPrice" gorm:"column:final_price;type:decimal(10,2)"`
	Urgency          TaskUrgency         `json:"urgency" gorm:"not null"`
	Status           TaskStatus          `json:"status" gorm:"not null;default:'open';index"`
	Photos           []string            `json:"photos" gorm:"serializer:json"`
	CompletionPhotos []string            `json:"completionPhotos" gorm:"column:completion_photos;serializer:json"`
	DueDate          *time.Time          `json:"dueDate" gorm:"column:due_date"`
	CompletedAt      *time.Time          `json:"completedAt" gorm:"column:completed_at"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`

	Customer *User `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Worker   *User `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Bids     []Bid `json:"bids,omitempty" gorm:"foreignKey:TaskID"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
