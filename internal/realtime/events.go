package realtime

import "task-bidding-api/internal/models"

// EventType enumerates the server-pushed event kinds.
type EventType string

const (
	EventAuthenticated    EventType = "AUTHENTICATED"
	EventNewTask          EventType = "NEW_TASK"
	EventNewBid           EventType = "NEW_BID"
	EventBidAccepted      EventType = "BID_ACCEPTED"
	EventTaskStatusUpdate EventType = "TASK_STATUS_UPDATE"
	EventNewMessage       EventType = "NEW_MESSAGE"
)

// Envelope is the wire form of every pushed event. Data is always one of
// the payload types below, so the shape of each event kind is fixed at
// compile time rather than assembled ad hoc at the call sites.
type Envelope struct {
	Type EventType `json:"type"`
	Data any       `json:"data,omitempty"`
}

// AuthenticatedData acknowledges a successful AUTHENTICATE handshake.
type AuthenticatedData struct {
	UserID string `json:"userId"`
}

// NewBidData announces a bid to the task's owning customer.
type NewBidData struct {
	TaskID string      `json:"taskId"`
	Bid    *models.Bid `json:"bid"`
}

// BidAcceptedData announces that a task has been assigned.
type BidAcceptedData struct {
	TaskID   string `json:"taskId"`
	BidID    string `json:"bidId"`
	WorkerID string `json:"workerId"`
}

// TaskStatusData announces a task status change.
type TaskStatusData struct {
	TaskID string            `json:"taskId"`
	Status models.TaskStatus `json:"status"`
}

func NewTaskEvent(task *models.Task) Envelope {
	return Envelope{Type: EventNewTask, Data: task}
}

func NewBidEvent(taskID string, bid *models.Bid) Envelope {
	return Envelope{Type: EventNewBid, Data: NewBidData{TaskID: taskID, Bid: bid}}
}

func BidAcceptedEvent(taskID, bidID, workerID string) Envelope {
	return Envelope{Type: EventBidAccepted, Data: BidAcceptedData{TaskID: taskID, BidID: bidID, WorkerID: workerID}}
}

func TaskStatusEvent(taskID string, status models.TaskStatus) Envelope {
	return Envelope{Type: EventTaskStatusUpdate, Data: TaskStatusData{TaskID: taskID, Status: status}}
}

func NewMessageEvent(msg *models.Message) Envelope {
	return Envelope{Type: EventNewMessage, Data: msg}
}

func AuthenticatedEvent(userID string) Envelope {
	return Envelope{Type: EventAuthenticated, Data: AuthenticatedData{UserID: userID}}
}
