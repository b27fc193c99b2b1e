package http_preference

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelcritic/core/internal/delivery/http/common"
	http_auth_middleware "github.com/reelcritic/core/internal/delivery/http/middleware/auth"
	http_movie "github.com/reelcritic/core/internal/delivery/http/movie"
	"github.com/reelcritic/core/internal/model"
	usecase_preference "github.com/reelcritic/core/internal/usecase/preference"
)

type PreferenceResponseDTO struct {
	ID        int64                       `json:"id"`
	UserID    string                      `json:"userId"`
	MovieID   int64                       `json:"movieId"`
	Liked     bool                        `json:"liked"`
	CreatedAt time.Time                   `json:"createdAt"`
	Movie     http_movie.MovieResponseDTO `json:"movie"`
}

func ConvertFromPreferences(prefs []*model.PreferenceWithMovie) []PreferenceResponseDTO {
	out := make([]PreferenceResponseDTO, len(prefs))
	for i, p := range prefs {
		out[i] = PreferenceResponseDTO{
			ID:        p.ID,
			UserID:    p.UserID,
			MovieID:   p.MovieID,
			Liked:     p.Liked,
			CreatedAt: p.CreatedAt,
			Movie:     http_movie.ConvertFromMovieWithStats(model.MovieWithStats{Movie: p.Movie}),
		}
	}
	return out
}

type Controller struct {
	uc   *usecase_preference.Usecase
	auth *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	uc *usecase_preference.Usecase,
	auth *http_auth_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/preferences", c.auth.AuthRequired(), c.getPreferences)
}

// @Summary The caller's preferences
// @Description Returns the caller's derived movie preferences joined with the movies
// @Tags Preferences operations
// @Produce json
// @Success 200 {array} PreferenceResponseDTO "Preferences"
// @Failure 401 {object} http_common.ErrorResponse "No active session"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /preferences [get]
func (c *Controller) getPreferences(ctx *gin.Context) {
	userID := http_auth_middleware.UserID(ctx)

	prefs, err := c.uc.ByUser(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error("failed to load preferences",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to fetch preferences",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromPreferences(prefs))
}
