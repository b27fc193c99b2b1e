package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/reelcritic/core/internal/model"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrInternal      = errors.New("internal error")
)

type Repository interface {
	Store(ctx context.Context, m model.Movie) error
	Count(ctx context.Context) (int, error)
	LoadAll(ctx context.Context) ([]*model.Movie, error)
	LoadByLanguage(ctx context.Context, language model.Language) ([]*model.Movie, error)
	LoadByID(ctx context.Context, id int64) (model.Movie, error)
}

type StatsRepository interface {
	MovieStats(ctx context.Context, movieID int64) (model.ReviewStats, error)
	StatsPerMovie(ctx context.Context) (map[int64]model.ReviewStats, error)
}

type Usecase struct {
	repository      Repository
	statsRepository StatsRepository

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
	statsRepository StatsRepository,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		repository:      repository,
		statsRepository: statsRepository,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Seed inserts the catalog when the table is empty. Every row insert is
// conflict-tolerant, so two processes racing through first boot still end up
// with a single copy of the catalog.
func (u *Usecase) Seed(ctx context.Context, catalog []model.Movie) error {
	count, err := u.repository.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	u.logger.Info("initializing movie catalog", slog.Int("movies", len(catalog)))

	for _, m := range catalog {
		if err := u.repository.Store(ctx, m); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	return nil
}

// LoadAll returns movies with their review stats, optionally filtered by
// language. An unknown language simply matches nothing.
func (u *Usecase) LoadAll(ctx context.Context, language model.Language) ([]*model.MovieWithStats, error) {
	var (
		movies []*model.Movie
		err    error
	)
	if language == "" {
		movies, err = u.repository.LoadAll(ctx)
	} else {
		movies, err = u.repository.LoadByLanguage(ctx, language)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	stats, err := u.statsRepository.StatsPerMovie(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	withStats := make([]*model.MovieWithStats, len(movies))
	for i, m := range movies {
		withStats[i] = &model.MovieWithStats{
			Movie: *m,
			Stats: stats[m.ID],
		}
	}

	return withStats, nil
}

func (u *Usecase) ByID(ctx context.Context, id int64) (model.MovieWithStats, error) {
	movie, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return model.MovieWithStats{}, err
		}
		return model.MovieWithStats{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	stats, err := u.statsRepository.MovieStats(ctx, id)
	if err != nil {
		return model.MovieWithStats{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return model.MovieWithStats{Movie: movie, Stats: stats}, nil
}
