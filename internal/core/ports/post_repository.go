package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// PostPatch enumerates the only fields a post update may touch. Owner
// fields and the identifier are not representable here, which makes
// mutating them through the service impossible rather than forbidden.
type PostPatch struct {
	Title *string
	Body  *string
}

// Empty reports whether the patch changes nothing.
func (p PostPatch) Empty() bool {
	return p.Title == nil && p.Body == nil
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	// List returns all posts, newest creation time first.
	List(ctx context.Context) ([]*domain.Post, error)
	// Get returns the post or domain.ErrPostNotFound.
	Get(ctx context.Context, id string) (*domain.Post, error)
	Insert(ctx context.Context, post *domain.Post) error
	// Update applies the patch and stamps the updated timestamp in one
	// atomic step, returning the post as stored afterwards. A missing
	// id yields domain.ErrPostNotFound, including when a concurrent
	// delete wins the race.
	Update(ctx context.Context, id string, patch PostPatch) (*domain.Post, error)
	// Delete permanently removes the post or yields domain.ErrPostNotFound.
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}
