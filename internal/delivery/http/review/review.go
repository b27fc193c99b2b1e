package http_review

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelcritic/core/internal/delivery/http/common"
	http_auth_middleware "github.com/reelcritic/core/internal/delivery/http/middleware/auth"
	http_movie "github.com/reelcritic/core/internal/delivery/http/movie"
	"github.com/reelcritic/core/internal/model"
	usecase_review "github.com/reelcritic/core/internal/usecase/review"
)

// CreateReviewRequestDTO carries a review submission. The sentiment fields
// are what the client computed via /sentiment earlier; the server re-scores
// the content at submission time, so they are advisory.
type CreateReviewRequestDTO struct {
	MovieID             int64   `json:"movieId" binding:"required" example:"1"`
	Content             string  `json:"content" binding:"required,max=500" example:"This movie was absolutely brilliant and touching"`
	Rating              int     `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Sentiment           string  `json:"sentiment" example:"positive"`
	SentimentConfidence float64 `json:"sentimentConfidence" example:"0.87"`
}

type ReviewResponseDTO struct {
	ID                  int64     `json:"id"`
	UserID              string    `json:"userId"`
	MovieID             int64     `json:"movieId"`
	Content             string    `json:"content"`
	Rating              int       `json:"rating"`
	Sentiment           string    `json:"sentiment"`
	SentimentConfidence float64   `json:"sentimentConfidence"`
	CreatedAt           time.Time `json:"createdAt"`
}

type UserReviewResponseDTO struct {
	ReviewResponseDTO
	Movie http_movie.MovieResponseDTO `json:"movie"`
}

type ReviewerDTO struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type MovieReviewResponseDTO struct {
	ReviewResponseDTO
	User ReviewerDTO `json:"user"`
}

func ConvertFromReview(r model.Review) ReviewResponseDTO {
	return ReviewResponseDTO{
		ID:                  r.ID,
		UserID:              r.UserID,
		MovieID:             r.MovieID,
		Content:             r.Content,
		Rating:              r.Rating,
		Sentiment:           string(r.Sentiment),
		SentimentConfidence: r.SentimentConfidence,
		CreatedAt:           r.CreatedAt,
	}
}

func convertMovie(m model.Movie) http_movie.MovieResponseDTO {
	return http_movie.ConvertFromMovieWithStats(model.MovieWithStats{Movie: m})
}

func ConvertFromUserReviews(reviews []*model.UserReview) []UserReviewResponseDTO {
	out := make([]UserReviewResponseDTO, len(reviews))
	for i, r := range reviews {
		out[i] = UserReviewResponseDTO{
			ReviewResponseDTO: ConvertFromReview(r.Review),
			Movie:             convertMovie(r.Movie),
		}
	}
	return out
}

func ConvertFromMovieReviews(reviews []*model.MovieReview) []MovieReviewResponseDTO {
	out := make([]MovieReviewResponseDTO, len(reviews))
	for i, r := range reviews {
		out[i] = MovieReviewResponseDTO{
			ReviewResponseDTO: ConvertFromReview(r.Review),
			User: ReviewerDTO{
				ID:              r.User.ID,
				Email:           r.User.Email,
				FirstName:       r.User.FirstName,
				LastName:        r.User.LastName,
				ProfileImageURL: r.User.ProfileImageURL,
			},
		}
	}
	return out
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
	reviews := router.Group("/reviews")
	reviews.POST("", c.auth.AuthRequired(), c.createReview)
	reviews.GET("/user", c.auth.AuthRequired(), c.getUserReviews)
	reviews.GET("/movie/:movie_id", c.getMovieReviews)
}

// @Summary Submit a review
// @Description Persists a review for the caller, scores its sentiment and updates the derived preference
// @Tags Reviews operations
// @Accept json
// @Produce json
// @Param request body CreateReviewRequestDTO true "Review submission"
// @Success 200 {object} ReviewResponseDTO "Created review"
// @Failure 400 {object} http_common.ErrorResponse "Validation failure or duplicate review"
// @Failure 401 {object} http_common.ErrorResponse "No active session"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /reviews [post]
func (c *Controller) createReview(ctx *gin.Context) {
	var req CreateReviewRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid review payload", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid review data",
			Code:  http.StatusBadRequest,
		})
		return
	}

	userID := http_auth_middleware.UserID(ctx)

	review, err := c.uc.Submit(ctx.Request.Context(), userID, req.MovieID, req.Content, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, usecase_review.ErrDuplicateReview):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Duplicate review",
				Message: "You have already reviewed this movie",
				Code:    http.StatusBadRequest,
			})
		case errors.Is(err, usecase_review.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Invalid review data",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		case errors.Is(err, usecase_review.ErrMovieNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
		default:
			c.logger.Error("failed to create review",
				slog.String("user_id", userID),
				slog.Int64("movie_id", req.MovieID),
				slog.String("error", err.Error()),
			)
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error: "Failed to create review",
				Code:  http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromReview(review))
}

// @Summary The caller's reviews
// @Description Returns the caller's reviews joined with the reviewed movies
// @Tags Reviews operations
// @Produce json
// @Success 200 {array} UserReviewResponseDTO "Reviews"
// @Failure 401 {object} http_common.ErrorResponse "No active session"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /reviews/user [get]
func (c *Controller) getUserReviews(ctx *gin.Context) {
	userID := http_auth_middleware.UserID(ctx)

	reviews, err := c.uc.ByUser(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error("failed to load user reviews",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to fetch reviews",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromUserReviews(reviews))
}

// @Summary A movie's reviews
// @Description Returns all reviews for a movie joined with their reviewers
// @Tags Reviews operations
// @Produce json
// @Param movie_id path int true "Movie id" example(1)
// @Success 200 {array} MovieReviewResponseDTO "Reviews"
// @Failure 400 {object} http_common.ErrorResponse "Invalid movie id"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /reviews/movie/{movie_id} [get]
func (c *Controller) getMovieReviews(ctx *gin.Context) {
	idParam := ctx.Param("movie_id")
	movieID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.logger.Warn("invalid movie ID", slog.String("id", idParam))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	reviews, err := c.uc.ByMovie(ctx.Request.Context(), movieID)
	if err != nil {
		c.logger.Error("failed to load movie reviews",
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to fetch movie reviews",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovieReviews(reviews))
}
