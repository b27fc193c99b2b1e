package model

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

type Language string

const (
	LanguageTamil   Language = "tamil"
	LanguageTelugu  Language = "telugu"
	LanguageHindi   Language = "hindi"
	LanguageEnglish Language = "english"
)

func (l Language) Known() bool {
	switch l {
	case LanguageTamil, LanguageTelugu, LanguageHindi, LanguageEnglish:
		return true
	}
	return false
}

// SentimentResult is the scorer's verdict for a piece of review text.
// PositiveScore + NegativeScore always sum to 1.
type SentimentResult struct {
	Sentiment     Sentiment
	Confidence    float64
	PositiveScore float64
	NegativeScore float64
}

// ReviewStats aggregates the review rows under a single user or movie.
type ReviewStats struct {
	TotalReviews    int
	PositiveReviews int
	NegativeReviews int
	AvgRating       float64
}
