package sentiment

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/reelcritic/core/internal/model"
)

var (
	ErrEmptyText     = errors.New("text is empty")
	ErrUnknownPolicy = errors.New("unknown neutral policy")
)

// NeutralPolicy decides the label when no sentiment word matches.
type NeutralPolicy string

const (
	NeutralRandom   NeutralPolicy = "random"
	NeutralPositive NeutralPolicy = "positive"
	NeutralNegative NeutralPolicy = "negative"
)

func ParseNeutralPolicy(s string) (NeutralPolicy, error) {
	switch NeutralPolicy(s) {
	case NeutralRandom, NeutralPositive, NeutralNegative:
		return NeutralPolicy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

const (
	negationBoost   = 1.2
	strongWeight    = 1.8
	mildWeight      = 1.3
	diminishWeight  = 0.7
	confidenceFloor = 0.55
	confidenceCeil  = 0.92
)

// Service scores review text with fixed keyword lists. It is stateless
// aside from the injected randomness used for jitter and the neutral fallback.
type Service struct {
	policy NeutralPolicy

	mu  sync.Mutex // rand.Rand is not goroutine safe
	rng *rand.Rand
}

type ServiceOption func(*Service)

func WithNeutralPolicy(p NeutralPolicy) ServiceOption {
	return func(s *Service) {
		s.policy = p
	}
}

func WithRand(rng *rand.Rand) ServiceOption {
	return func(s *Service) {
		s.rng = rng
	}
}

func New(opts ...ServiceOption) *Service {
	s := &Service{
		policy: NeutralRandom,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze classifies text as positive or negative with a confidence score.
// Matched words accumulate weights, a single-token look-back handles negation
// and intensity modifiers, and a negated match contributes its inverted weight
// to the opposite accumulator.
func (s *Service) Analyze(text string) (model.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return model.SentimentResult{}, ErrEmptyText
	}

	tokens := tokenize(text)

	var positive, negative float64
	for i, word := range tokens {
		prev := ""
		if i > 0 {
			prev = tokens[i-1]
		}

		_, negated := negations[prev]

		weight := 1.0
		if _, ok := strongAmplifiers[prev]; ok {
			weight = strongWeight
		} else if _, ok := mildAmplifiers[prev]; ok {
			weight = mildWeight
		} else if _, ok := diminishers[prev]; ok {
			weight = diminishWeight
		}

		if _, ok := positiveWords[word]; ok {
			if negated {
				negative += weight * negationBoost
			} else {
				positive += weight
			}
		} else if _, ok := negativeWords[word]; ok {
			if negated {
				positive += weight * negationBoost
			} else {
				negative += weight
			}
		}
	}

	total := math.Max(1, math.Abs(positive)+math.Abs(negative))
	normPositive := math.Max(0, positive) / total
	normNegative := math.Max(0, negative) / total

	if normPositive == 0 && normNegative == 0 {
		return s.neutral(), nil
	}

	ratio := normPositive / (normPositive + normNegative)
	verdict := model.SentimentNegative
	if ratio > 0.5 {
		verdict = model.SentimentPositive
	}

	gap := math.Abs(normPositive - normNegative)
	countFactor := math.Min(1, float64(len(tokens))/15)
	base := (gap + countFactor*0.3) * 0.6
	confidence := math.Min(confidenceCeil, math.Max(confidenceFloor, base+s.draw()*0.2))

	posScore := math.Max(0.1, math.Min(0.9, ratio+(s.draw()-0.5)*0.1))

	return model.SentimentResult{
		Sentiment:     verdict,
		Confidence:    confidence,
		PositiveScore: posScore,
		NegativeScore: 1 - posScore,
	}, nil
}

// neutral handles text where nothing matched. The label follows the configured
// policy; confidence lands in a moderate band with scores near even.
func (s *Service) neutral() model.SentimentResult {
	verdict := model.SentimentNegative
	switch s.policy {
	case NeutralPositive:
		verdict = model.SentimentPositive
	case NeutralNegative:
		verdict = model.SentimentNegative
	default:
		if s.draw() > 0.5 {
			verdict = model.SentimentPositive
		}
	}

	posScore := 0.5 + (s.draw()-0.5)*0.2

	return model.SentimentResult{
		Sentiment:     verdict,
		Confidence:    0.5 + s.draw()*0.3,
		PositiveScore: posScore,
		NegativeScore: 1 - posScore,
	}
}

func (s *Service) draw() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	fields := strings.Fields(cleaned)
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
