package service

import (
	"context"
	"time"
)

// Event types carried in the "event_type" message attribute
const (
	EventTypeImportRequested = "import.requested"
	EventTypeImportCompleted = "import.completed"
)

// ImportRequestedEvent asks a worker to import the file at Location.
type ImportRequestedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Location  string `json:"location"`
}

// ImportCompletedEvent is published after an import finishes, successfully or not.
type ImportCompletedEvent struct {
	RequestID     string    `json:"request_id,omitempty"`
	Source        string    `json:"source"`
	TotalRows     int       `json:"total_rows"`
	SuccessRows   int       `json:"success_rows"`
	ErrorRows     int       `json:"error_rows"`
	InsertedCount int       `json:"inserted_count"`
	DuplicateRows int       `json:"duplicate_rows"`
	Failed        bool      `json:"failed"`
	Error         string    `json:"error,omitempty"`
	FinishedAt    time.Time `json:"finished_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishImportRequested queues an import for asynchronous processing
	PublishImportRequested(ctx context.Context, event *ImportRequestedEvent) error

	// PublishImportCompleted announces the outcome of an import
	PublishImportCompleted(ctx context.Context, event *ImportCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
