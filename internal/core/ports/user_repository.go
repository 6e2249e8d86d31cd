package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// UserRepository is the credential store: the durable mapping from user
// identifier to password verifier.
type UserRepository interface {
	// FindByID returns the user or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts a new user. The identifier uniqueness check and
	// the insert are one atomic step; a duplicate identifier yields
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	EnsureIndexes(ctx context.Context) error
}
