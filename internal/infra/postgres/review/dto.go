package infra_postgres_review

import (
	"time"

	"github.com/reelcritic/core/internal/model"
)

type ReviewDB struct {
	ID                  int64     `db:"id"`
	UserID              string    `db:"user_id"`
	MovieID             int64     `db:"movie_id"`
	Content             string    `db:"content"`
	Rating              int       `db:"rating"`
	Sentiment           string    `db:"sentiment"`
	SentimentConfidence float64   `db:"sentiment_confidence"`
	CreatedAt           time.Time `db:"created_at"`
}

func (r *ReviewDB) ToDomain() model.Review {
	return model.Review{
		ID:                  r.ID,
		UserID:              r.UserID,
		MovieID:             r.MovieID,
		Content:             r.Content,
		Rating:              r.Rating,
		Sentiment:           model.Sentiment(r.Sentiment),
		SentimentConfidence: r.SentimentConfidence,
		CreatedAt:           r.CreatedAt,
	}
}

// userReviewDB is a review row joined with its movie.
type userReviewDB struct {
	ReviewDB
	MovieTitle       string  `db:"movie_title"`
	MovieGenre       string  `db:"movie_genre"`
	MovieLanguage    string  `db:"movie_language"`
	MoviePosterURL   string  `db:"movie_poster_url"`
	MovieDescription string  `db:"movie_description"`
	MovieReleaseYear int     `db:"movie_release_year"`
	MovieRating      float64 `db:"movie_rating"`
}

func (r *userReviewDB) ToDomain() model.UserReview {
	return model.UserReview{
		Review: r.ReviewDB.ToDomain(),
		Movie: model.Movie{
			ID:          r.MovieID,
			Title:       r.MovieTitle,
			Genre:       r.MovieGenre,
			Language:    model.Language(r.MovieLanguage),
			PosterURL:   r.MoviePosterURL,
			Description: r.MovieDescription,
			ReleaseYear: r.MovieReleaseYear,
			Rating:      r.MovieRating,
		},
	}
}

// movieReviewDB is a review row joined with its reviewer.
type movieReviewDB struct {
	ReviewDB
	UserEmail           string `db:"user_email"`
	UserFirstName       string `db:"user_first_name"`
	UserLastName        string `db:"user_last_name"`
	UserProfileImageURL string `db:"user_profile_image_url"`
}

func (r *movieReviewDB) ToDomain() model.MovieReview {
	return model.MovieReview{
		Review: r.ReviewDB.ToDomain(),
		User: model.User{
			ID:              r.UserID,
			Email:           r.UserEmail,
			FirstName:       r.UserFirstName,
			LastName:        r.UserLastName,
			ProfileImageURL: r.UserProfileImageURL,
		},
	}
}

type statsDB struct {
	TotalReviews    int     `db:"total_reviews"`
	PositiveReviews int     `db:"positive_reviews"`
	NegativeReviews int     `db:"negative_reviews"`
	AvgRating       float64 `db:"avg_rating"`
}

func (s *statsDB) ToDomain() model.ReviewStats {
	return model.ReviewStats{
		TotalReviews:    s.TotalReviews,
		PositiveReviews: s.PositiveReviews,
		NegativeReviews: s.NegativeReviews,
		AvgRating:       s.AvgRating,
	}
}

// movieStatsDB carries the grouping key for the per-movie aggregate query.
type movieStatsDB struct {
	statsDB
	MovieID int64 `db:"movie_id"`
}
