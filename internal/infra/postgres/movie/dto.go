package infra_postgres_movie

import (
	"time"

	"github.com/reelcritic/core/internal/model"
)

type MovieDB struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Genre       string    `db:"genre"`
	Language    string    `db:"language"`
	PosterURL   string    `db:"poster_url"`
	Description string    `db:"description"`
	ReleaseYear int       `db:"release_year"`
	Rating      float64   `db:"rating"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m *MovieDB) ToDomain() model.Movie {
	return model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Language:    model.Language(m.Language),
		PosterURL:   m.PosterURL,
		Description: m.Description,
		ReleaseYear: m.ReleaseYear,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt,
	}
}

func FromDomain(m model.Movie) MovieDB {
	return MovieDB{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Language:    string(m.Language),
		PosterURL:   m.PosterURL,
		Description: m.Description,
		ReleaseYear: m.ReleaseYear,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt,
	}
}
