package session_auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reelcritic/core/internal/model"
)

var (
	ErrInternal        = errors.New("internal error")
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrNoSession       = errors.New("no active session")
)

type UserRepository interface {
	Upsert(ctx context.Context, identity model.Identity) (model.User, error)
	LoadByID(ctx context.Context, id string) (model.User, error)
}

type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Service exchanges identity-provider payloads for cookie sessions.
// The provider owns the accounts; this service keeps a local mirror and the
// token -> user id mapping with a TTL.
type Service struct {
	sessionTTL   time.Duration
	users        UserRepository
	sessionCache SessionCache
}

func New(
	sessionTTL time.Duration,
	users UserRepository,
	sessionCache SessionCache,
) *Service {
	return &Service{
		sessionTTL:   sessionTTL,
		users:        users,
		sessionCache: sessionCache,
	}
}

// Login upserts the user mirror and mints a session token.
func (s *Service) Login(ctx context.Context, identity model.Identity) (string, model.User, error) {
	if identity.ID == "" {
		return "", model.User{}, fmt.Errorf("%w: missing user id", ErrInvalidIdentity)
	}

	user, err := s.users.Upsert(ctx, identity)
	if err != nil {
		return "", model.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	token := uuid.New().String()
	if err := s.sessionCache.Set(token, user.ID, s.sessionTTL); err != nil {
		return "", model.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return token, user, nil
}

func (s *Service) Logout(token string) error {
	if err := s.sessionCache.Delete(token); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}

// Resolve maps a session token to the opaque user id, ErrNoSession when the
// token is unknown or expired.
func (s *Service) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}

	userID, err := s.sessionCache.Get(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if userID == "" {
		return "", ErrNoSession
	}

	return userID, nil
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (model.User, error) {
	user, err := s.users.LoadByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return user, nil
}

func (s *Service) TTL() time.Duration {
	return s.sessionTTL
}
