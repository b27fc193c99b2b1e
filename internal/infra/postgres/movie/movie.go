package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/reelcritic/core/internal/model"
	usecase_movie "github.com/reelcritic/core/internal/usecase/movie"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Store inserts a movie. The unique index on (title, language) makes the
// insert a no-op when the row already exists, so concurrent first-boot seeds
// cannot double-insert.
func (r *Repository) Store(ctx context.Context, m model.Movie) error {
	movieDB := FromDomain(m)

	query := `
		INSERT INTO movies (title, genre, language, poster_url, description, release_year, rating)
		VALUES (:title, :genre, :language, :poster_url, :description, :release_year, :rating)
		ON CONFLICT (title, language) DO NOTHING
	`

	_, err := r.db.NamedExecContext(ctx, query, movieDB)
	if err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}

	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM movies`)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return count, nil
}

func (r *Repository) LoadAll(ctx context.Context) ([]*model.Movie, error) {
	query := `
		SELECT id, title, genre, language, poster_url, description, release_year, rating, created_at
		FROM movies
		ORDER BY rating DESC
	`

	var moviesDB []MovieDB
	err := r.db.SelectContext(ctx, &moviesDB, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	return toDomainList(moviesDB), nil
}

func (r *Repository) LoadByLanguage(ctx context.Context, language model.Language) ([]*model.Movie, error) {
	query := `
		SELECT id, title, genre, language, poster_url, description, release_year, rating, created_at
		FROM movies
		WHERE language = $1
		ORDER BY rating DESC
	`

	var moviesDB []MovieDB
	err := r.db.SelectContext(ctx, &moviesDB, query, string(language))
	if err != nil {
		return nil, fmt.Errorf("failed to query movies by language: %w", err)
	}

	return toDomainList(moviesDB), nil
}

func (r *Repository) LoadByID(ctx context.Context, id int64) (model.Movie, error) {
	query := `
		SELECT id, title, genre, language, poster_url, description, release_year, rating, created_at
		FROM movies
		WHERE id = $1
	`

	var movieDB MovieDB
	err := r.db.GetContext(ctx, &movieDB, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, usecase_movie.ErrMovieNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}

	return movieDB.ToDomain(), nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check movie existence: %w", err)
	}

	return exists, nil
}

func toDomainList(moviesDB []MovieDB) []*model.Movie {
	movies := make([]*model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		domainMovie := movieDB.ToDomain()
		movies[i] = &domainMovie
	}
	return movies
}
