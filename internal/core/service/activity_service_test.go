package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/ports"
)

type stubActivityRepo struct {
	inserted []ports.ActivityEvent
	err      error
}

func (r *stubActivityRepo) Insert(_ context.Context, event ports.ActivityEvent) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func TestActivityService_Process(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	event := ports.ActivityEvent{
		PostID:    "p1",
		Action:    ports.ActivityUpdated,
		ActorID:   "alice",
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), event); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].PostID != "p1" {
		t.Fatalf("event not persisted: %+v", repo.inserted)
	}
}

func TestActivityService_Process_WrapsRepoError(t *testing.T) {
	cause := errors.New("write concern failed")
	svc := NewActivityService(&stubActivityRepo{err: cause}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.ActivityEvent{PostID: "p1"})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}
