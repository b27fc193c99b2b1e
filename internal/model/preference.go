package model

import "time"

// UserPreference is the derived like/dislike signal per (user, movie).
// It mirrors the sentiment of the user's review and has no lifecycle of its own.
type UserPreference struct {
	ID        int64
	UserID    string
	MovieID   int64
	Liked     bool
	CreatedAt time.Time
}

type PreferenceWithMovie struct {
	UserPreference
	Movie Movie
}
