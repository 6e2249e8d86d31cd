package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
	"github.com/inkwell/blog-api/internal/pkg/password"
)

// AuthService implements registration and the session lifecycle on top
// of the credential store and the session store. It never mutates user
// records outside Register and never stores more than the {id, name}
// projection in a session.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

func (s *AuthService) Register(ctx context.Context, id, name, plaintext string) (*domain.User, error) {
	if id == "" || name == "" || plaintext == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		s.log.Error().Err(err).Msg("hashing password failed")
		return nil, domain.ErrInternal
	}

	user := &domain.User{
		ID:           id,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to create user")
		return nil, domain.ErrInternal
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// SignIn resolves the credential, verifies the password, and issues a
// fresh session token. Unknown identifiers and wrong passwords are
// deliberately indistinguishable: same error, comparable cost.
func (s *AuthService) SignIn(ctx context.Context, id, plaintext string) (string, *domain.Session, error) {
	if id == "" || plaintext == "" {
		return "", nil, domain.ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			password.DummyCompare(plaintext)
			metrics.SignInsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		s.log.Error().Err(err).Str("user_id", id).Msg("credential lookup failed")
		return "", nil, domain.ErrInternal
	}

	if !password.Compare(plaintext, user.PasswordHash) {
		metrics.SignInsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{UserID: user.ID, Name: user.Name}
	token, err := s.sessions.Create(ctx, session)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to establish session")
		return "", nil, domain.ErrInternal
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user signed in")
	return token, session, nil
}

// SignOut destroys the session behind token. Best effort: an empty
// token or a storage failure still resolves to success, since ending a
// session that no longer exists is the requested end state anyway.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("session delete failed")
	}
	return nil
}
