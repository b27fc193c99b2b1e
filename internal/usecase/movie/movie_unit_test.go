//go:build !integration
// +build !integration

package usecase_movie

import (
	"context"
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/reelcritic/core/internal/model"
	repo_mocks "github.com/reelcritic/core/internal/usecase/movie/mocks/movie/repository"
)

type UsecaseMovieUnitSuite struct {
	suite.Suite
}

func TestUsecaseMovieUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMovieUnitSuite))
}

type resources struct {
	usecase         *Usecase
	repository      *repo_mocks.Repository
	statsRepository *repo_mocks.StatsRepository
	ctx             context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	statsRepository := repo_mocks.NewStatsRepository(t)
	usecase := New(repository, statsRepository)

	return &resources{
		usecase:         usecase,
		repository:      repository,
		statsRepository: statsRepository,
		ctx:             context.Background(),
	}
}

func sampleCatalog() []model.Movie {
	return []model.Movie{
		{Title: "Dangal", Language: model.LanguageHindi, ReleaseYear: 2016, Rating: 8.4},
		{Title: "RRR", Language: model.LanguageTelugu, ReleaseYear: 2022, Rating: 7.9},
	}
}

func (suite *UsecaseMovieUnitSuite) TestSeed(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expectError bool
	}{
		{
			name: "Should store every catalog row into an empty table",
			setupMocks: func(r *resources) {
				r.repository.On("Count", r.ctx).Return(0, nil).Once()
				r.repository.On("Store", r.ctx, mock.AnythingOfType("model.Movie")).
					Return(nil).Times(2)
			},
		},
		{
			name: "Should skip seeding when movies already exist",
			setupMocks: func(r *resources) {
				r.repository.On("Count", r.ctx).Return(33, nil).Once()
			},
		},
		{
			name: "Should stop on the first store failure",
			setupMocks: func(r *resources) {
				r.repository.On("Count", r.ctx).Return(0, nil).Once()
				r.repository.On("Store", r.ctx, mock.AnythingOfType("model.Movie")).
					Return(errors.New("insert failed")).Once()
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.Seed(r.ctx, sampleCatalog())

			if tc.expectError {
				assert.True(t, errors.Is(err, ErrInternal))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func (suite *UsecaseMovieUnitSuite) TestLoadAll(t provider.T) {
	t.Parallel()

	movies := []*model.Movie{
		{ID: 1, Title: "Dangal", Language: model.LanguageHindi},
		{ID: 2, Title: "RRR", Language: model.LanguageTelugu},
	}

	t.Run("Should merge per-movie stats into the catalog", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repository.On("LoadAll", r.ctx).Return(movies, nil).Once()
		r.statsRepository.On("StatsPerMovie", r.ctx).Return(map[int64]model.ReviewStats{
			1: {TotalReviews: 3, PositiveReviews: 2, NegativeReviews: 1, AvgRating: 4.0},
		}, nil).Once()

		got, err := r.usecase.LoadAll(r.ctx, "")

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 3, got[0].Stats.TotalReviews)
		// Unreviewed movies carry zeroed stats.
		assert.Zero(t, got[1].Stats.TotalReviews)
		assert.Zero(t, got[1].Stats.AvgRating)
	})

	t.Run("Should filter by language through the repository", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repository.On("LoadByLanguage", r.ctx, model.LanguageTamil).
			Return([]*model.Movie{}, nil).Once()
		r.statsRepository.On("StatsPerMovie", r.ctx).
			Return(map[int64]model.ReviewStats{}, nil).Once()

		got, err := r.usecase.LoadAll(r.ctx, model.LanguageTamil)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func (suite *UsecaseMovieUnitSuite) TestByID(t provider.T) {
	t.Parallel()

	t.Run("Should attach stats to the movie", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repository.On("LoadByID", r.ctx, int64(1)).
			Return(model.Movie{ID: 1, Title: "Dangal"}, nil).Once()
		r.statsRepository.On("MovieStats", r.ctx, int64(1)).
			Return(model.ReviewStats{TotalReviews: 5, AvgRating: 4.2}, nil).Once()

		got, err := r.usecase.ByID(r.ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "Dangal", got.Title)
		assert.Equal(t, 5, got.Stats.TotalReviews)
	})

	t.Run("Should pass ErrMovieNotFound through unchanged", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repository.On("LoadByID", r.ctx, int64(404)).
			Return(model.Movie{}, ErrMovieNotFound).Once()

		_, err := r.usecase.ByID(r.ctx, 404)

		assert.True(t, errors.Is(err, ErrMovieNotFound))
	})
}
