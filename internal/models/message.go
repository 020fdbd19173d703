package models

import "time"

// Message is a chat message between the two parties of a task.
type Message struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	TaskID      string    `json:"taskId" gorm:"column:task_id;not null;index"`
	SenderID    string    `json:"senderId" gorm:"column:sender_id;not null"`
	ReceiverID  string    `json:"receiverId" gorm:"column:receiver_id;not null"`
	Content     string    `json:"content" gorm:"not null"`
	Attachments []string  `json:"attachments" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName specifies the table name for Message Model
func (Message) TableName() string {
	return "messages"
}
