package http_auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelcritic/core/internal/delivery/http/common"
	http_auth_middleware "github.com/reelcritic/core/internal/delivery/http/middleware/auth"
	"github.com/reelcritic/core/internal/model"
	session_auth "github.com/reelcritic/core/internal/service/auth/session"
)

// LoginRequestDTO carries the identity payload the external provider hands
// back after a successful login.
type LoginRequestDTO struct {
	ID              string `json:"id" binding:"required" example:"41729634"`
	Email           string `json:"email" example:"critic@example.com"`
	FirstName       string `json:"firstName" example:"Asha"`
	LastName        string `json:"lastName" example:"Nair"`
	ProfileImageURL string `json:"profileImageUrl" example:"https://example.com/avatar.jpg"`
}

type UserResponseDTO struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func (r *LoginRequestDTO) ConvertToIdentity() model.Identity {
	return model.Identity{
		ID:              r.ID,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		ProfileImageURL: r.ProfileImageURL,
	}
}

func ConvertFromUser(u model.User) UserResponseDTO {
	return UserResponseDTO{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
	}
}

type Controller struct {
	service      *session_auth.Service
	auth         *http_auth_middleware.Middleware
	cookieName   string
	cookieSecure bool

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	service *session_auth.Service,
	auth *http_auth_middleware.Middleware,
	cookieName string,
	cookieSecure bool,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		service:      service,
		auth:         auth,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/login", c.login)
	auth.POST("/logout", c.auth.AuthRequired(), c.logout)
	auth.GET("/user", c.auth.AuthRequired(), c.currentUser)
}

// @Summary Login with an identity-provider payload
// @Description Upserts the local user mirror and sets the session cookie
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body LoginRequestDTO true "Identity payload"
// @Success 200 {object} UserResponseDTO "Logged in"
// @Failure 400 {object} http_common.ErrorResponse "Invalid identity payload"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid login payload", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	token, user, err := c.service.Login(ctx.Request.Context(), req.ConvertToIdentity())
	if err != nil {
		c.logger.Error("login failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to log in",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	maxAge := int(c.service.TTL() / time.Second)
	ctx.SetCookie(c.cookieName, token, maxAge, "/", "", c.cookieSecure, true)

	ctx.JSON(http.StatusOK, ConvertFromUser(user))
}

// @Summary Logout
// @Description Destroys the current session and clears the cookie
// @Tags Auth operations
// @Success 204 "Logged out"
// @Failure 401 {object} http_common.ErrorResponse "No active session"
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	token, err := ctx.Cookie(c.cookieName)
	if err == nil {
		if err := c.service.Logout(token); err != nil {
			c.logger.Error("logout failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error: "Failed to log out",
				Code:  http.StatusInternalServerError,
			})
			return
		}
	}

	ctx.SetCookie(c.cookieName, "", -1, "/", "", c.cookieSecure, true)
	ctx.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Returns the local mirror of the logged-in account
// @Tags Auth operations
// @Produce json
// @Success 200 {object} UserResponseDTO "Current user"
// @Failure 401 {object} http_common.ErrorResponse "No active session"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /auth/user [get]
func (c *Controller) currentUser(ctx *gin.Context) {
	userID := http_auth_middleware.UserID(ctx)

	user, err := c.service.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error("failed to fetch current user",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to fetch user",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromUser(user))
}
