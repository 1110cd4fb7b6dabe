package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	JobCreated               = "job.created"
	JobDeleted               = "job.deleted"
	ApplicationSubmitted     = "application.submitted"
	ApplicationStatusChanged = "application.status_changed"
)

// Event is the message published after a write commits.
type Event struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	OccurredAt    time.Time `json:"occurred_at"`
	JobID         uint      `json:"job_id,omitempty"`
	EmployerID    uint      `json:"employer_id,omitempty"`
	EmployeeID    uint      `json:"employee_id,omitempty"`
	ApplicationID uint      `json:"application_id,omitempty"`
	Status        string    `json:"status,omitempty"`
}

// New stamps an event of the given type with an id and the current time.
func New(eventType string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
