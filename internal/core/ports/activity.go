package ports

import (
	"context"
	"time"
)

// Actions recorded in the post activity trail.
const (
	ActivityCreated = "created"
	ActivityUpdated = "updated"
	ActivityDeleted = "deleted"
)

// ActivityEvent describes one successful post mutation.
type ActivityEvent struct {
	PostID    string
	Action    string
	ActorID   string
	Timestamp time.Time
}

// ActivityRecorder accepts events for asynchronous processing. Record
// must not block the mutating request beyond queue admission.
type ActivityRecorder interface {
	Record(event ActivityEvent)
}

// ActivityService persists a single activity event.
type ActivityService interface {
	Process(ctx context.Context, event ActivityEvent) error
}

// ActivityRepository is the audit-trail sink.
type ActivityRepository interface {
	Insert(ctx context.Context, event ActivityEvent) error
}
