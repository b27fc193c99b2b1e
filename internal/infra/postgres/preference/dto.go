package infra_postgres_preference

import (
	"time"

	"github.com/reelcritic/core/internal/model"
)

type PreferenceDB struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	Liked     bool      `db:"liked"`
	CreatedAt time.Time `db:"created_at"`
}

func (p *PreferenceDB) ToDomain() model.UserPreference {
	return model.UserPreference{
		ID:        p.ID,
		UserID:    p.UserID,
		MovieID:   p.MovieID,
		Liked:     p.Liked,
		CreatedAt: p.CreatedAt,
	}
}

type preferenceWithMovieDB struct {
	PreferenceDB
	MovieTitle       string  `db:"movie_title"`
	MovieGenre       string  `db:"movie_genre"`
	MovieLanguage    string  `db:"movie_language"`
	MoviePosterURL   string  `db:"movie_poster_url"`
	MovieDescription string  `db:"movie_description"`
	MovieReleaseYear int     `db:"movie_release_year"`
	MovieRating      float64 `db:"movie_rating"`
}

func (p *preferenceWithMovieDB) ToDomain() model.PreferenceWithMovie {
	return model.PreferenceWithMovie{
		UserPreference: p.PreferenceDB.ToDomain(),
		Movie: model.Movie{
			ID:          p.MovieID,
			Title:       p.MovieTitle,
			Genre:       p.MovieGenre,
			Language:    model.Language(p.MovieLanguage),
			PosterURL:   p.MoviePosterURL,
			Description: p.MovieDescription,
			ReleaseYear: p.MovieReleaseYear,
			Rating:      p.MovieRating,
		},
	}
}
