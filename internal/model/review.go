package model

import "time"

const MaxReviewContentLength = 500

type Review struct {
	ID                  int64
	UserID              string
	MovieID             int64
	Content             string
	Rating              int // 1-5 stars
	Sentiment           Sentiment
	SentimentConfidence float64
	CreatedAt           time.Time
}

// UserReview is a review joined with the movie it targets.
type UserReview struct {
	Review
	Movie Movie
}

// MovieReview is a review joined with its reviewer.
type MovieReview struct {
	Review
	User User
}
