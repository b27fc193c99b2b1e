package infra_postgres_preference

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/reelcritic/core/internal/model"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Upsert writes the derived like/dislike flag. Last write wins under the
// unique index on (user_id, movie_id).
func (r *Repository) Upsert(ctx context.Context, p model.UserPreference) (model.UserPreference, error) {
	query := `
		INSERT INTO user_preferences (user_id, movie_id, liked)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, movie_id) DO UPDATE SET liked = EXCLUDED.liked
		RETURNING id, user_id, movie_id, liked, created_at
	`

	var row PreferenceDB
	err := r.db.GetContext(ctx, &row, query, p.UserID, p.MovieID, p.Liked)
	if err != nil {
		return model.UserPreference{}, fmt.Errorf("failed to upsert preference: %w", err)
	}

	return row.ToDomain(), nil
}

func (r *Repository) LoadByUser(ctx context.Context, userID string) ([]*model.PreferenceWithMovie, error) {
	query := `
		SELECT
			p.id, p.user_id, p.movie_id, p.liked, p.created_at,
			m.title AS movie_title,
			m.genre AS movie_genre,
			m.language AS movie_language,
			m.poster_url AS movie_poster_url,
			m.description AS movie_description,
			m.release_year AS movie_release_year,
			m.rating AS movie_rating
		FROM user_preferences p
		INNER JOIN movies m ON p.movie_id = m.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC
	`

	var rows []preferenceWithMovieDB
	err := r.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences by user: %w", err)
	}

	preferences := make([]*model.PreferenceWithMovie, len(rows))
	for i, row := range rows {
		domainPreference := row.ToDomain()
		preferences[i] = &domainPreference
	}

	return preferences, nil
}
