package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/reelcritic/core/internal/delivery/http/common"
	"github.com/reelcritic/core/internal/model"
	usecase_movie "github.com/reelcritic/core/internal/usecase/movie"
)

// MovieResponseDTO is a movie with its review statistics folded in.
type MovieResponseDTO struct {
	ID              int64   `json:"id" example:"1"`
	Title           string  `json:"title" example:"Jai Bhim"`
	Genre           string  `json:"genre" example:"Crime, Drama"`
	Language        string  `json:"language" example:"tamil"`
	PosterURL       string  `json:"posterUrl" example:"https://example.com/poster.jpg"`
	Description     string  `json:"description" example:"A lawyer fights for justice..."`
	ReleaseYear     int     `json:"releaseYear" example:"2021"`
	Rating          float64 `json:"rating" example:"8.8"`
	TotalReviews    int     `json:"totalReviews" example:"12"`
	PositiveReviews int     `json:"positiveReviews" example:"9"`
	NegativeReviews int     `json:"negativeReviews" example:"3"`
	AvgRating       float64 `json:"avgRating" example:"4.2"`
}

type MoviesListResponseDTO struct {
	Movies []MovieResponseDTO `json:"movies"`
	Total  int                `json:"total"`
}

func ConvertFromMovieWithStats(m model.MovieWithStats) MovieResponseDTO {
	return MovieResponseDTO{
		ID:              m.ID,
		Title:           m.Title,
		Genre:           m.Genre,
		Language:        string(m.Language),
		PosterURL:       m.PosterURL,
		Description:     m.Description,
		ReleaseYear:     m.ReleaseYear,
		Rating:          m.Rating,
		TotalReviews:    m.Stats.TotalReviews,
		PositiveReviews: m.Stats.PositiveReviews,
		NegativeReviews: m.Stats.NegativeReviews,
		AvgRating:       m.Stats.AvgRating,
	}
}

func ConvertFromMovieWithStatsList(movies []*model.MovieWithStats) []MovieResponseDTO {
	out := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		out[i] = ConvertFromMovieWithStats(*m)
	}
	return out
}

type Controller struct {
	uc *usecase_movie.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/:movie_id", c.getMovie)
}

// @Summary List movies
// @Description Returns the catalog with review stats, optionally filtered by language
// @Tags Movies operations
// @Produce json
// @Param language query string false "tamil, telugu, hindi or english"
// @Success 200 {object} MoviesListResponseDTO "Movie list"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /movies [get]
func (c *Controller) getMovies(ctx *gin.Context) {
	language := model.Language(ctx.Query("language"))

	movies, err := c.uc.LoadAll(ctx.Request.Context(), language)
	if err != nil {
		c.logger.Error("failed to load movies", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to load movies",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieWithStatsList(movies),
		Total:  len(movies),
	})
}

// @Summary Get a movie
// @Description Returns a single movie with its review stats
// @Tags Movies operations
// @Produce json
// @Param movie_id path int true "Movie id" example(1)
// @Success 200 {object} MovieResponseDTO "Movie"
// @Failure 400 {object} http_common.ErrorResponse "Invalid movie id"
// @Failure 404 {object} http_common.ErrorResponse "Movie not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
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

	movie, err := c.uc.ByID(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to load movie",
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to load movie",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovieWithStats(movie))
}
