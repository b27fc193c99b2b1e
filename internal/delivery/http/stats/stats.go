package http_stats

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelcritic/core/internal/delivery/http/common"
	http_auth_middleware "github.com/reelcritic/core/internal/delivery/http/middleware/auth"
	usecase_review "github.com/reelcritic/core/internal/usecase/review"
)

type UserStatsResponseDTO struct {
	TotalReviews    int     `json:"totalReviews"`
	PositiveReviews int     `json:"positiveReviews"`
	NegativeReviews int     `json:"negativeReviews"`
	AvgRating       float64 `json:"avgRating"`
}

type Controller struct {
	uc   *usecase_review.Usecase
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
	uc *usecase_review.Usecase,
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
	router.GET("/stats/user", c.auth.AuthRequired(), c.getUserStats)
}

// @Summary The caller's review statistics
// @Description Returns total, positive and negative review counts and the average rating
// @Tags Stats operations
// @Produce json
// @Success 200 {object} UserStatsResponseDTO "Statistics"
// @Failure 401 {object} http_common.ErrorResponse "No active session"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /stats/user [get]
func (c *Controller) getUserStats(ctx *gin.Context) {
	userID := http_auth_middleware.UserID(ctx)

	stats, err := c.uc.UserStats(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error("failed to load user stats",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to fetch review stats",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, UserStatsResponseDTO{
		TotalReviews:    stats.TotalReviews,
		PositiveReviews: stats.PositiveReviews,
		NegativeReviews: stats.NegativeReviews,
		AvgRating:       stats.AvgRating,
	})
}
