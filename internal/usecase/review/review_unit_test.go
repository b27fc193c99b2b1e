//go:build !integration
// +build !integration

package usecase_review

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reelcritic/core/internal/model"
	repo_mocks "github.com/reelcritic/core/internal/usecase/review/mocks/review/repository"
	scorer_mocks "github.com/reelcritic/core/internal/usecase/review/mocks/review/scorer"
)

type UsecaseReviewUnitSuite struct {
	suite.Suite
}

func TestUsecaseReviewUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseReviewUnitSuite))
}

type resources struct {
	usecase              *Usecase
	repository           *repo_mocks.Repository
	movieRepository      *repo_mocks.MovieRepository
	preferenceRepository *repo_mocks.PreferenceRepository
	scorer               *scorer_mocks.Scorer
	ctx                  context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	movieRepository := repo_mocks.NewMovieRepository(t)
	preferenceRepository := repo_mocks.NewPreferenceRepository(t)
	scorer := scorer_mocks.NewScorer(t)
	usecase := New(repository, movieRepository, preferenceRepository, scorer)

	return &resources{
		usecase:              usecase,
		repository:           repository,
		movieRepository:      movieRepository,
		preferenceRepository: preferenceRepository,
		scorer:               scorer,
		ctx:                  context.Background(),
	}
}

func positiveResult() model.SentimentResult {
	return model.SentimentResult{
		Sentiment:     model.SentimentPositive,
		Confidence:    0.87,
		PositiveScore: 0.82,
		NegativeScore: 0.18,
	}
}

func negativeResult() model.SentimentResult {
	return model.SentimentResult{
		Sentiment:     model.SentimentNegative,
		Confidence:    0.79,
		PositiveScore: 0.2,
		NegativeScore: 0.8,
	}
}

func (suite *UsecaseReviewUnitSuite) TestSubmit(t provider.T) {
	t.Parallel()

	const (
		userID  = "user-42"
		movieID = int64(7)
		content = "This movie was absolutely brilliant and touching"
	)

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		content     string
		rating      int
		expectError error
	}{
		{
			name: "Should store review and a liked preference for positive sentiment",
			setupMocks: func(r *resources) {
				r.movieRepository.On("Exists", r.ctx, movieID).Return(true, nil).Once()
				r.scorer.On("Analyze", content).Return(positiveResult(), nil).Once()
				r.repository.On("Create", r.ctx, mock.MatchedBy(func(rv model.Review) bool {
					return rv.UserID == userID &&
						rv.MovieID == movieID &&
						rv.Sentiment == model.SentimentPositive &&
						rv.SentimentConfidence == 0.87
				})).Return(model.Review{ID: 1, UserID: userID, MovieID: movieID}, nil).Once()
				r.preferenceRepository.On("Upsert", r.ctx, mock.MatchedBy(func(p model.UserPreference) bool {
					return p.UserID == userID && p.MovieID == movieID && p.Liked
				})).Return(model.UserPreference{ID: 1}, nil).Once()
			},
			content: content,
			rating:  5,
		},
		{
			name: "Should store a disliked preference for negative sentiment",
			setupMocks: func(r *resources) {
				r.movieRepository.On("Exists", r.ctx, movieID).Return(true, nil).Once()
				r.scorer.On("Analyze", content).Return(negativeResult(), nil).Once()
				r.repository.On("Create", r.ctx, mock.AnythingOfType("model.Review")).
					Return(model.Review{ID: 2, UserID: userID, MovieID: movieID}, nil).Once()
				r.preferenceRepository.On("Upsert", r.ctx, mock.MatchedBy(func(p model.UserPreference) bool {
					return !p.Liked
				})).Return(model.UserPreference{ID: 2}, nil).Once()
			},
			content: content,
			rating:  2,
		},
		{
			name:        "Should reject empty content before touching storage",
			setupMocks:  func(r *resources) {},
			content:     "",
			rating:      3,
			expectError: ErrInvalidInput,
		},
		{
			name:        "Should reject content over the length limit",
			setupMocks:  func(r *resources) {},
			content:     strings.Repeat("x", model.MaxReviewContentLength+1),
			rating:      3,
			expectError: ErrInvalidInput,
		},
		{
			name:        "Should reject a rating outside 1..5",
			setupMocks:  func(r *resources) {},
			content:     content,
			rating:      6,
			expectError: ErrInvalidInput,
		},
		{
			name: "Should report an unknown movie",
			setupMocks: func(r *resources) {
				r.movieRepository.On("Exists", r.ctx, movieID).Return(false, nil).Once()
			},
			content:     content,
			rating:      4,
			expectError: ErrMovieNotFound,
		},
		{
			name: "Should pass a duplicate review through unchanged",
			setupMocks: func(r *resources) {
				r.movieRepository.On("Exists", r.ctx, movieID).Return(true, nil).Once()
				r.scorer.On("Analyze", content).Return(positiveResult(), nil).Once()
				r.repository.On("Create", r.ctx, mock.AnythingOfType("model.Review")).
					Return(model.Review{}, ErrDuplicateReview).Once()
			},
			content:     content,
			rating:      4,
			expectError: ErrDuplicateReview,
		},
		{
			name: "Should surface an internal error when the preference upsert fails",
			setupMocks: func(r *resources) {
				r.movieRepository.On("Exists", r.ctx, movieID).Return(true, nil).Once()
				r.scorer.On("Analyze", content).Return(positiveResult(), nil).Once()
				r.repository.On("Create", r.ctx, mock.AnythingOfType("model.Review")).
					Return(model.Review{ID: 3}, nil).Once()
				r.preferenceRepository.On("Upsert", r.ctx, mock.AnythingOfType("model.UserPreference")).
					Return(model.UserPreference{}, errors.New("connection reset")).Once()
			},
			content:     content,
			rating:      4,
			expectError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			review, err := r.usecase.Submit(r.ctx, userID, movieID, tc.content, tc.rating)

			if tc.expectError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectError))
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, review.ID)
			}
		})
	}
}

func (suite *UsecaseReviewUnitSuite) TestByUser(t provider.T) {
	t.Parallel()

	t.Run("Should return the repository rows", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rows := []*model.UserReview{
			{Review: model.Review{ID: 1, UserID: "user-1"}},
			{Review: model.Review{ID: 2, UserID: "user-1"}},
		}
		r.repository.On("LoadByUser", r.ctx, "user-1").Return(rows, nil).Once()

		got, err := r.usecase.ByUser(r.ctx, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("Should wrap repository failures", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repository.On("LoadByUser", r.ctx, "user-1").
			Return(nil, errors.New("query failed")).Once()

		_, err := r.usecase.ByUser(r.ctx, "user-1")

		assert.True(t, errors.Is(err, ErrInternal))
	})
}

func (suite *UsecaseReviewUnitSuite) TestUserStats(t provider.T) {
	t.Parallel()

	t.Run("Should return zeroed stats for a user with no reviews", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repository.On("UserStats", r.ctx, "user-1").
			Return(model.ReviewStats{}, nil).Once()

		stats, err := r.usecase.UserStats(r.ctx, "user-1")

		assert.NoError(t, err)
		assert.Zero(t, stats.TotalReviews)
		assert.Zero(t, stats.AvgRating)
	})
}
