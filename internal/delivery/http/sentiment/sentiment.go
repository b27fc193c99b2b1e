package http_sentiment

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelcritic/core/internal/delivery/http/common"
	http_auth_middleware "github.com/reelcritic/core/internal/delivery/http/middleware/auth"
	service_sentiment "github.com/reelcritic/core/internal/service/sentiment"
)

type AnalyzeRequestDTO struct {
	Text string `json:"text" binding:"required" example:"This movie was absolutely brilliant and touching"`
}

type AnalyzeResponseDTO struct {
	Sentiment     string  `json:"sentiment" example:"positive"`
	Confidence    float64 `json:"confidence" example:"0.87"`
	PositiveScore float64 `json:"positiveScore" example:"0.82"`
	NegativeScore float64 `json:"negativeScore" example:"0.18"`
}

type Controller struct {
	scorer *service_sentiment.Service
	auth   *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	scorer *service_sentiment.Service,
	auth *http_auth_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		scorer: scorer,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sentiment", c.auth.AuthRequired(), c.analyze)
}

// @Summary Score a text's sentiment
// @Description Runs the keyword sentiment scorer over a draft review text
// @Tags Sentiment operations
// @Accept json
// @Produce json
// @Param request body AnalyzeRequestDTO true "Text to score"
// @Success 200 {object} AnalyzeResponseDTO "Sentiment scores"
// @Failure 400 {object} http_common.ErrorResponse "Missing or empty text"
// @Failure 401 {object} http_common.ErrorResponse "No active session"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /sentiment [post]
func (c *Controller) analyze(ctx *gin.Context) {
	var req AnalyzeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Text is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	result, err := c.scorer.Analyze(req.Text)
	if err != nil {
		if errors.Is(err, service_sentiment.ErrEmptyText) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error: "Text is required",
				Code:  http.StatusBadRequest,
			})
			return
		}
		c.logger.Error("sentiment scoring failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to analyze sentiment",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, AnalyzeResponseDTO{
		Sentiment:     string(result.Sentiment),
		Confidence:    result.Confidence,
		PositiveScore: result.PositiveScore,
		NegativeScore: result.NegativeScore,
	})
}
