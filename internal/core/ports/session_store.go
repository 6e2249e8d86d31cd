package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// SessionStore keeps server-side session state keyed by an opaque
// token. The token is minted by the store, handed to the transport
// layer verbatim, and never parsed by anyone.
type SessionStore interface {
	// Create stores the session under a fresh token and returns it.
	Create(ctx context.Context, session *domain.Session) (string, error)
	// Get resolves a token. Absent, expired, and destroyed sessions
	// are indistinguishable: all yield domain.ErrSessionNotFound.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Delete destroys the session. Deleting a token that no longer
	// exists is not an error.
	Delete(ctx context.Context, token string) error
}
