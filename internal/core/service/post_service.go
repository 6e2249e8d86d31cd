package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// PostService orchestrates post CRUD. Every mutating operation resolves
// authorization before touching the repository: Unauthenticated, then
// NotFound, then Forbidden, and only then the write. Activity recording
// happens after a successful mutation and never affects the outcome.
type PostService struct {
	posts    ports.PostRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewPostService(posts ports.PostRepository, activity ports.ActivityRecorder, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, activity: activity, log: log}
}

func (s *PostService) Create(ctx context.Context, session *domain.Session, input ports.CreatePostInput) (*domain.Post, error) {
	if session == nil {
		metrics.MutationsDeniedTotal.WithLabelValues("unauthenticated").Inc()
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, domain.ErrInvalidInput
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Body:      input.Body,
		OwnerID:   session.UserID,
		OwnerName: session.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		s.log.Error().Err(err).Str("owner_id", session.UserID).Msg("failed to insert post")
		return nil, domain.ErrInternal
	}

	metrics.PostsMutatedTotal.WithLabelValues(ports.ActivityCreated).Inc()
	s.record(post.ID, ports.ActivityCreated, session.UserID)
	s.log.Info().Str("post_id", post.ID).Str("owner_id", post.OwnerID).Msg("post created")
	return post, nil
}

func (s *PostService) Update(ctx context.Context, session *domain.Session, id string, patch ports.PostPatch) (*domain.Post, error) {
	current, err := s.authorizeMutation(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	updated, err := s.posts.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			// lost a race against a delete on the same id
			return nil, domain.ErrPostNotFound
		}
		s.log.Error().Err(err).Str("post_id", id).Msg("failed to update post")
		return nil, domain.ErrInternal
	}

	metrics.PostsMutatedTotal.WithLabelValues(ports.ActivityUpdated).Inc()
	s.record(id, ports.ActivityUpdated, session.UserID)
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, session *domain.Session, id string) error {
	if _, err := s.authorizeMutation(ctx, session, id); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return domain.ErrPostNotFound
		}
		s.log.Error().Err(err).Str("post_id", id).Msg("failed to delete post")
		return domain.ErrInternal
	}

	metrics.PostsMutatedTotal.WithLabelValues(ports.ActivityDeleted).Inc()
	s.record(id, ports.ActivityDeleted, session.UserID)
	return nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, domain.ErrPostNotFound
		}
		s.log.Error().Err(err).Str("post_id", id).Msg("failed to load post")
		return nil, domain.ErrInternal
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list posts")
		return nil, domain.ErrInternal
	}
	return posts, nil
}

// authorizeMutation runs the shared gate for update and delete:
// session present, post present, session owns post. The returned post
// is the pre-mutation state.
func (s *PostService) authorizeMutation(ctx context.Context, session *domain.Session, id string) (*domain.Post, error) {
	if session == nil {
		metrics.MutationsDeniedTotal.WithLabelValues("unauthenticated").Inc()
		return nil, domain.ErrUnauthenticated
	}

	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, domain.ErrPostNotFound
		}
		s.log.Error().Err(err).Str("post_id", id).Msg("failed to load post")
		return nil, domain.ErrInternal
	}

	if !session.CanMutate(post) {
		metrics.MutationsDeniedTotal.WithLabelValues("forbidden").Inc()
		s.log.Warn().Str("post_id", id).Str("actor_id", session.UserID).Str("owner_id", post.OwnerID).Msg("mutation denied")
		return nil, domain.ErrForbidden
	}
	return post, nil
}

func (s *PostService) record(postID, action, actorID string) {
	if s.activity == nil {
		return
	}
	s.activity.Record(ports.ActivityEvent{
		PostID:    postID,
		Action:    action,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}
