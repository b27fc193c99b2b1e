package http_auth_middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelcritic/core/internal/delivery/http/common"
	session_auth "github.com/reelcritic/core/internal/service/auth/session"
)

const userIDKey = "user_id"

type SessionResolver interface {
	Resolve(token string) (string, error)
}

type Middleware struct {
	sessions   SessionResolver
	cookieName string
	logger     *slog.Logger
}

func New(
	sessions SessionResolver,
	cookieName string,
) *Middleware {
	return &Middleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     slog.Default(),
	}
}

// AuthRequired resolves the session cookie to an opaque user id and puts it
// on the request context. Missing or expired sessions get a 401; the client
// is expected to redirect to the external login.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(m.cookieName)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Error: "Unauthorized",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		userID, err := m.sessions.Resolve(token)
		if err != nil {
			if errors.Is(err, session_auth.ErrNoSession) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
					Error: "Unauthorized",
					Code:  http.StatusUnauthorized,
				})
				return
			}

			m.logger.Error("failed to resolve session", slog.String("error", err.Error()))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error: "Internal error",
				Code:  http.StatusInternalServerError,
			})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// UserID returns the id stored by AuthRequired.
func UserID(ctx *gin.Context) string {
	return ctx.GetString(userIDKey)
}
