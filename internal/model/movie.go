package model

import "time"

type Movie struct {
	ID          int64
	Title       string
	Genre       string // comma-joined tags, e.g. "Action, Drama"
	Language    Language
	PosterURL   string
	Description string
	ReleaseYear int
	Rating      float64
	CreatedAt   time.Time
}

type MovieWithStats struct {
	Movie
	Stats ReviewStats
}
