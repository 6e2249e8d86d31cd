package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the audit-trail writer invoked by the
// dispatcher workers.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists one activity event. Failures are returned to the
// dispatcher for logging; they never reach the request that produced
// the event.
func (s *activityService) Process(ctx context.Context, event ports.ActivityEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("post_id", event.PostID).
		Str("action", event.Action).
		Str("actor_id", event.ActorID).
		Msg("activity recorded")
	return nil
}
