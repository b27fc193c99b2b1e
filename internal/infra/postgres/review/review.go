package infra_postgres_review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/reelcritic/core/internal/model"
	usecase_review "github.com/reelcritic/core/internal/usecase/review"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the review or reports ErrDuplicateReview. The unique index
// on (user_id, movie_id) arbitrates concurrent submissions: exactly one insert
// wins, losers see no returned row. The first review is never overwritten.
func (r *Repository) Create(ctx context.Context, rv model.Review) (model.Review, error) {
	query := `
		INSERT INTO reviews (user_id, movie_id, content, rating, sentiment, sentiment_confidence)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, movie_id) DO NOTHING
		RETURNING id, created_at
	`

	var inserted struct {
		ID        int64        `db:"id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}
	err := r.db.GetContext(ctx, &inserted, query,
		rv.UserID, rv.MovieID, rv.Content, rv.Rating, string(rv.Sentiment), rv.SentimentConfidence)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, usecase_review.ErrDuplicateReview
		}
		return model.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	rv.ID = inserted.ID
	rv.CreatedAt = inserted.CreatedAt.Time

	return rv, nil
}

func (r *Repository) LoadByUser(ctx context.Context, userID string) ([]*model.UserReview, error) {
	query := `
		SELECT
			r.id, r.user_id, r.movie_id, r.content, r.rating, r.sentiment,
			r.sentiment_confidence, r.created_at,
			m.title AS movie_title,
			m.genre AS movie_genre,
			m.language AS movie_language,
			m.poster_url AS movie_poster_url,
			m.description AS movie_description,
			m.release_year AS movie_release_year,
			m.rating AS movie_rating
		FROM reviews r
		INNER JOIN movies m ON r.movie_id = m.id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`

	var rows []userReviewDB
	err := r.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews by user: %w", err)
	}

	reviews := make([]*model.UserReview, len(rows))
	for i, row := range rows {
		domainReview := row.ToDomain()
		reviews[i] = &domainReview
	}

	return reviews, nil
}

func (r *Repository) LoadByMovie(ctx context.Context, movieID int64) ([]*model.MovieReview, error) {
	query := `
		SELECT
			r.id, r.user_id, r.movie_id, r.content, r.rating, r.sentiment,
			r.sentiment_confidence, r.created_at,
			u.email AS user_email,
			u.first_name AS user_first_name,
			u.last_name AS user_last_name,
			u.profile_image_url AS user_profile_image_url
		FROM reviews r
		INNER JOIN users u ON r.user_id = u.id
		WHERE r.movie_id = $1
		ORDER BY r.created_at DESC
	`

	var rows []movieReviewDB
	err := r.db.SelectContext(ctx, &rows, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews by movie: %w", err)
	}

	reviews := make([]*model.MovieReview, len(rows))
	for i, row := range rows {
		domainReview := row.ToDomain()
		reviews[i] = &domainReview
	}

	return reviews, nil
}

// UserStats aggregates the caller's reviews. Zero rows yield zeroed stats,
// COALESCE keeps AVG away from NULL.
func (r *Repository) UserStats(ctx context.Context, userID string) (model.ReviewStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_reviews,
			COALESCE(SUM(CASE WHEN sentiment = 'positive' THEN 1 ELSE 0 END), 0) AS positive_reviews,
			COALESCE(SUM(CASE WHEN sentiment = 'negative' THEN 1 ELSE 0 END), 0) AS negative_reviews,
			COALESCE(AVG(rating), 0) AS avg_rating
		FROM reviews
		WHERE user_id = $1
	`

	var stats statsDB
	err := r.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return model.ReviewStats{}, fmt.Errorf("failed to query user stats: %w", err)
	}

	return stats.ToDomain(), nil
}

func (r *Repository) MovieStats(ctx context.Context, movieID int64) (model.ReviewStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_reviews,
			COALESCE(SUM(CASE WHEN sentiment = 'positive' THEN 1 ELSE 0 END), 0) AS positive_reviews,
			COALESCE(SUM(CASE WHEN sentiment = 'negative' THEN 1 ELSE 0 END), 0) AS negative_reviews,
			COALESCE(AVG(rating), 0) AS avg_rating
		FROM reviews
		WHERE movie_id = $1
	`

	var stats statsDB
	err := r.db.GetContext(ctx, &stats, query, movieID)
	if err != nil {
		return model.ReviewStats{}, fmt.Errorf("failed to query movie stats: %w", err)
	}

	return stats.ToDomain(), nil
}

// StatsPerMovie returns aggregates for every reviewed movie in one pass.
// Movies with no reviews are absent from the map.
func (r *Repository) StatsPerMovie(ctx context.Context) (map[int64]model.ReviewStats, error) {
	query := `
		SELECT
			movie_id,
			COUNT(*) AS total_reviews,
			COALESCE(SUM(CASE WHEN sentiment = 'positive' THEN 1 ELSE 0 END), 0) AS positive_reviews,
			COALESCE(SUM(CASE WHEN sentiment = 'negative' THEN 1 ELSE 0 END), 0) AS negative_reviews,
			COALESCE(AVG(rating), 0) AS avg_rating
		FROM reviews
		GROUP BY movie_id
	`

	var rows []movieStatsDB
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats per movie: %w", err)
	}

	stats := make(map[int64]model.ReviewStats, len(rows))
	for _, row := range rows {
		stats[row.MovieID] = row.ToDomain()
	}

	return stats, nil
}
