//go:build !integration
// +build !integration

package infra_postgres_review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/reelcritic/core/internal/model"
	usecase_review "github.com/reelcritic/core/internal/usecase/review"
)

type ReviewInfraUnitSuite struct {
	suite.Suite
}

func TestReviewInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ReviewInfraUnitSuite))
}

type resources struct {
	db         *sqlx.DB
	mock       sqlmock.Sqlmock
	repository *Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repository := New(sqlxDB)

	return &resources{
		db:         sqlxDB,
		mock:       mock,
		repository: repository,
		ctx:        context.Background(),
	}
}

type ReviewBuilder struct {
	r model.Review
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		r: model.Review{
			UserID:              "user-42",
			MovieID:             7,
			Content:             "This movie was absolutely brilliant and touching",
			Rating:              5,
			Sentiment:           model.SentimentPositive,
			SentimentConfidence: 0.87,
		},
	}
}

func (b *ReviewBuilder) Build() model.Review {
	return b.r
}

func (suite *ReviewInfraUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, review model.Review)
		expectedError error
		errorContains string
	}{
		{
			name: "Should insert review and read back id and timestamp",
			setupMocks: func(r *resources, review model.Review) {
				rows := sqlmock.NewRows([]string{"id", "created_at"}).
					AddRow(int64(11), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
				r.mock.ExpectQuery("INSERT INTO reviews").
					WithArgs(review.UserID, review.MovieID, review.Content, review.Rating,
						string(review.Sentiment), review.SentimentConfidence).
					WillReturnRows(rows)
			},
		},
		{
			name: "Should report duplicate when the conflict clause suppresses the row",
			setupMocks: func(r *resources, review model.Review) {
				r.mock.ExpectQuery("INSERT INTO reviews").
					WithArgs(review.UserID, review.MovieID, review.Content, review.Rating,
						string(review.Sentiment), review.SentimentConfidence).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))
			},
			expectedError: usecase_review.ErrDuplicateReview,
		},
		{
			name: "Should wrap other database failures",
			setupMocks: func(r *resources, review model.Review) {
				r.mock.ExpectQuery("INSERT INTO reviews").
					WillReturnError(errors.New("connection reset"))
			},
			errorContains: "connection reset",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			review := NewReviewBuilder().Build()
			tc.setupMocks(r, review)

			created, err := r.repository.Create(r.ctx, review)

			switch {
			case tc.expectedError != nil:
				assert.True(t, errors.Is(err, tc.expectedError))
			case tc.errorContains != "":
				assert.ErrorContains(t, err, tc.errorContains)
			default:
				assert.NoError(t, err)
				assert.Equal(t, int64(11), created.ID)
				assert.False(t, created.CreatedAt.IsZero())
				assert.Equal(t, review.Content, created.Content)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *ReviewInfraUnitSuite) TestUserStats(t provider.T) {
	t.Parallel()

	t.Run("Should return zeroed stats when the user has no reviews", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rows := sqlmock.NewRows(
			[]string{"total_reviews", "positive_reviews", "negative_reviews", "avg_rating"},
		).AddRow(0, 0, 0, 0.0)
		r.mock.ExpectQuery("FROM reviews").WithArgs("user-42").WillReturnRows(rows)

		stats, err := r.repository.UserStats(r.ctx, "user-42")

		assert.NoError(t, err)
		assert.Equal(t, model.ReviewStats{}, stats)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should scan the aggregate columns", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rows := sqlmock.NewRows(
			[]string{"total_reviews", "positive_reviews", "negative_reviews", "avg_rating"},
		).AddRow(5, 3, 2, 3.8)
		r.mock.ExpectQuery("FROM reviews").WithArgs("user-42").WillReturnRows(rows)

		stats, err := r.repository.UserStats(r.ctx, "user-42")

		assert.NoError(t, err)
		assert.Equal(t, model.ReviewStats{
			TotalReviews:    5,
			PositiveReviews: 3,
			NegativeReviews: 2,
			AvgRating:       3.8,
		}, stats)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *ReviewInfraUnitSuite) TestStatsPerMovie(t provider.T) {
	t.Parallel()

	t.Run("Should key the aggregates by movie id", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rows := sqlmock.NewRows(
			[]string{"movie_id", "total_reviews", "positive_reviews", "negative_reviews", "avg_rating"},
		).
			AddRow(int64(1), 3, 2, 1, 4.0).
			AddRow(int64(2), 1, 0, 1, 2.0)
		r.mock.ExpectQuery("GROUP BY movie_id").WillReturnRows(rows)

		stats, err := r.repository.StatsPerMovie(r.ctx)

		assert.NoError(t, err)
		assert.Len(t, stats, 2)
		assert.Equal(t, 3, stats[1].TotalReviews)
		assert.Equal(t, 2.0, stats[2].AvgRating)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}
