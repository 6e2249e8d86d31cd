package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// AuthService covers registration and the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, id, name, plaintext string) (*domain.User, error)
	// SignIn authenticates and establishes a new session, returning
	// the opaque token and the identity bound to it. Unknown id and
	// wrong password both yield domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, id, plaintext string) (string, *domain.Session, error)
	// SignOut destroys the session behind token. Idempotent; signing
	// out with no active session is not an error.
	SignOut(ctx context.Context, token string) error
}
