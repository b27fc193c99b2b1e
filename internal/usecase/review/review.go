package usecase_review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/reelcritic/core/internal/model"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateReview = errors.New("review already exists for this movie")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrInternal        = errors.New("internal error")
)

type Scorer interface {
	Analyze(text string) (model.SentimentResult, error)
}

type Repository interface {
	Create(ctx context.Context, review model.Review) (model.Review, error)
	LoadByUser(ctx context.Context, userID string) ([]*model.UserReview, error)
	LoadByMovie(ctx context.Context, movieID int64) ([]*model.MovieReview, error)
	UserStats(ctx context.Context, userID string) (model.ReviewStats, error)
}

type MovieRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type PreferenceRepository interface {
	Upsert(ctx context.Context, preference model.UserPreference) (model.UserPreference, error)
}

type Usecase struct {
	repository           Repository
	movieRepository      MovieRepository
	preferenceRepository PreferenceRepository
	scorer               Scorer

	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	repository Repository,
	movieRepository MovieRepository,
	preferenceRepository PreferenceRepository,
	scorer Scorer,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		repository:           repository,
		movieRepository:      movieRepository,
		preferenceRepository: preferenceRepository,
		scorer:               scorer,
		logger:               slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Submit validates and persists a review, scoring the content server-side.
// The storage layer arbitrates the one-review-per-user-per-movie invariant;
// duplicates come back as ErrDuplicateReview with the first review untouched.
// The derived preference is upserted after the insert with no compensation:
// if it fails the review stays and the caller sees an internal error.
func (u *Usecase) Submit(ctx context.Context, userID string, movieID int64, content string, rating int) (model.Review, error) {
	if content == "" {
		return model.Review{}, fmt.Errorf("%w: content cannot be empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > model.MaxReviewContentLength {
		return model.Review{}, fmt.Errorf("%w: content exceeds %d characters", ErrInvalidInput, model.MaxReviewContentLength)
	}
	if rating < 1 || rating > 5 {
		return model.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	exists, err := u.movieRepository.Exists(ctx, movieID)
	if err != nil {
		return model.Review{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !exists {
		return model.Review{}, ErrMovieNotFound
	}

	// The client's earlier sentiment call is advisory only.
	result, err := u.scorer.Analyze(content)
	if err != nil {
		return model.Review{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	review, err := u.repository.Create(ctx, model.Review{
		UserID:              userID,
		MovieID:             movieID,
		Content:             content,
		Rating:              rating,
		Sentiment:           result.Sentiment,
		SentimentConfidence: result.Confidence,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateReview) {
			return model.Review{}, err
		}
		return model.Review{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if _, err := u.preferenceRepository.Upsert(ctx, model.UserPreference{
		UserID:  userID,
		MovieID: movieID,
		Liked:   result.Sentiment == model.SentimentPositive,
	}); err != nil {
		u.logger.Error("failed to upsert preference after review",
			slog.String("user_id", userID),
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		return model.Review{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return review, nil
}

func (u *Usecase) ByUser(ctx context.Context, userID string) ([]*model.UserReview, error) {
	reviews, err := u.repository.LoadByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return reviews, nil
}

func (u *Usecase) ByMovie(ctx context.Context, movieID int64) ([]*model.MovieReview, error) {
	reviews, err := u.repository.LoadByMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return reviews, nil
}

func (u *Usecase) UserStats(ctx context.Context, userID string) (model.ReviewStats, error) {
	stats, err := u.repository.UserStats(ctx, userID)
	if err != nil {
		return model.ReviewStats{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return stats, nil
}
