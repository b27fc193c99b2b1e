//go:build !integration
// +build !integration

package session_auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reelcritic/core/internal/model"
	session_mocks "github.com/reelcritic/core/internal/service/auth/session/mocks/session/repository"
)

type SessionAuthSuite struct {
	suite.Suite
}

func TestSessionAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionAuthSuite))
}

const sessionTTL = 168 * time.Hour

type resources struct {
	service      *Service
	users        *session_mocks.UserRepository
	sessionCache *session_mocks.SessionCache
	ctx          context.Context
}

func initResources(t provider.T) *resources {
	users := session_mocks.NewUserRepository(t)
	sessionCache := session_mocks.NewSessionCache(t)
	service := New(sessionTTL, users, sessionCache)

	return &resources{
		service:      service,
		users:        users,
		sessionCache: sessionCache,
		ctx:          context.Background(),
	}
}

func validIdentity() model.Identity {
	return model.Identity{
		ID:        "provider-user-1",
		Email:     "viewer@example.com",
		FirstName: "Asha",
		LastName:  "Rao",
	}
}

func (s *SessionAuthSuite) TestLogin(t provider.T) {
	t.Parallel()

	t.Run("Should upsert the mirror and cache the token with the configured TTL", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		identity := validIdentity()
		r.users.On("Upsert", r.ctx, identity).
			Return(model.User{ID: identity.ID, Email: identity.Email}, nil).Once()
		r.sessionCache.On("Set", mock.AnythingOfType("string"), identity.ID, sessionTTL).
			Return(nil).Once()

		token, user, err := r.service.Login(r.ctx, identity)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, identity.ID, user.ID)
	})

	t.Run("Should reject an identity with no id", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, _, err := r.service.Login(r.ctx, model.Identity{Email: "viewer@example.com"})

		assert.True(t, errors.Is(err, ErrInvalidIdentity))
	})

	t.Run("Should wrap cache failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		identity := validIdentity()
		r.users.On("Upsert", r.ctx, identity).
			Return(model.User{ID: identity.ID}, nil).Once()
		r.sessionCache.On("Set", mock.AnythingOfType("string"), identity.ID, sessionTTL).
			Return(errors.New("redis down")).Once()

		_, _, err := r.service.Login(r.ctx, identity)

		assert.True(t, errors.Is(err, ErrInternal))
	})
}

func (s *SessionAuthSuite) TestResolve(t provider.T) {
	t.Parallel()

	t.Run("Should map a cached token to the user id", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.sessionCache.On("Get", "token-1").Return("provider-user-1", nil).Once()

		userID, err := r.service.Resolve("token-1")

		assert.NoError(t, err)
		assert.Equal(t, "provider-user-1", userID)
	})

	t.Run("Should report no session for an empty token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		_, err := r.service.Resolve("")

		assert.True(t, errors.Is(err, ErrNoSession))
	})

	t.Run("Should report no session for an expired token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.sessionCache.On("Get", "stale-token").Return("", nil).Once()

		_, err := r.service.Resolve("stale-token")

		assert.True(t, errors.Is(err, ErrNoSession))
	})
}

func (s *SessionAuthSuite) TestLogout(t provider.T) {
	t.Parallel()

	t.Run("Should drop the cached token", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.sessionCache.On("Delete", "token-1").Return(nil).Once()

		assert.NoError(t, r.service.Logout("token-1"))
	})
}
