package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// CreatePostInput carries the caller-supplied fields of a new post.
// Owner identity always comes from the session, never from input.
type CreatePostInput struct {
	Title string
	Body  string
}

// PostService defines use-case operations for posts. The session is an
// explicit argument on every operation that needs authorization; nil
// means anonymous.
type PostService interface {
	Create(ctx context.Context, session *domain.Session, input CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, session *domain.Session, id string, patch PostPatch) (*domain.Post, error)
	Delete(ctx context.Context, session *domain.Session, id string) error
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
}
