//go:build !integration
// +build !integration

package sentiment

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/reelcritic/core/internal/model"
)

type SentimentServiceSuite struct {
	suite.Suite
}

func TestSentimentServiceSuite(t *testing.T) {
	suite.RunSuite(t, new(SentimentServiceSuite))
}

func newService(opts ...ServiceOption) *Service {
	opts = append([]ServiceOption{WithRand(rand.New(rand.NewSource(42)))}, opts...)
	return New(opts...)
}

func (s *SentimentServiceSuite) TestAnalyzeVerdicts(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		text    string
		verdict model.Sentiment
	}{
		{
			name:    "Should label clearly positive text positive",
			text:    "This movie was absolutely brilliant and touching",
			verdict: model.SentimentPositive,
		},
		{
			name:    "Should label clearly negative text negative",
			text:    "boring predictable waste with a terrible script",
			verdict: model.SentimentNegative,
		},
		{
			name:    "Should flip a negated positive word",
			text:    "not good",
			verdict: model.SentimentNegative,
		},
		{
			name:    "Should flip a negated negative word",
			text:    "this was not bad at all",
			verdict: model.SentimentPositive,
		},
		{
			name:    "Should weigh a strongly amplified positive over a plain negative",
			text:    "absolutely amazing but boring",
			verdict: model.SentimentPositive,
		},
		{
			name:    "Should weigh a strongly amplified negative over a plain positive",
			text:    "amazing but absolutely boring",
			verdict: model.SentimentNegative,
		},
		{
			name:    "Should let a diminished positive lose to a plain negative",
			text:    "somewhat good but terrible",
			verdict: model.SentimentNegative,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			svc := newService()

			result, err := svc.Analyze(tc.text)

			assert.NoError(t, err)
			assert.Equal(t, tc.verdict, result.Sentiment)
		})
	}
}

func (s *SentimentServiceSuite) TestAnalyzeScoreBounds(t provider.T) {
	t.Parallel()

	svc := newService()

	texts := []string{
		"This movie was absolutely brilliant and touching",
		"boring predictable waste with a terrible script",
		"good bad good bad",
		"amazing",
	}

	for _, text := range texts {
		result, err := svc.Analyze(text)

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, result.Confidence, 0.55)
		assert.LessOrEqual(t, result.Confidence, 0.92)
		assert.GreaterOrEqual(t, result.PositiveScore, 0.1)
		assert.LessOrEqual(t, result.PositiveScore, 0.9)
		assert.InDelta(t, 1.0, result.PositiveScore+result.NegativeScore, 1e-9)
	}
}

func (s *SentimentServiceSuite) TestAnalyzeEmptyText(t provider.T) {
	t.Parallel()

	svc := newService()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Analyze(text)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
}

func (s *SentimentServiceSuite) TestNeutralFallback(t provider.T) {
	t.Parallel()

	// No token of this text appears in any keyword list.
	const neutralText = "the plot proceeds onward through three cities"

	testCases := []struct {
		name    string
		policy  NeutralPolicy
		verdict model.Sentiment
		exact   bool
	}{
		{
			name:    "Should label neutral text positive under the positive policy",
			policy:  NeutralPositive,
			verdict: model.SentimentPositive,
			exact:   true,
		},
		{
			name:    "Should label neutral text negative under the negative policy",
			policy:  NeutralNegative,
			verdict: model.SentimentNegative,
			exact:   true,
		},
		{
			name:   "Should pick one of the two labels under the random policy",
			policy: NeutralRandom,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			svc := newService(WithNeutralPolicy(tc.policy))

			result, err := svc.Analyze(neutralText)

			assert.NoError(t, err)
			if tc.exact {
				assert.Equal(t, tc.verdict, result.Sentiment)
			} else {
				assert.Contains(t,
					[]model.Sentiment{model.SentimentPositive, model.SentimentNegative},
					result.Sentiment,
				)
			}
			assert.GreaterOrEqual(t, result.Confidence, 0.5)
			assert.LessOrEqual(t, result.Confidence, 0.8)
			assert.InDelta(t, 1.0, result.PositiveScore+result.NegativeScore, 1e-9)
			assert.LessOrEqual(t, math.Abs(result.PositiveScore-0.5), 0.1)
		})
	}
}

func (s *SentimentServiceSuite) TestParseNeutralPolicy(t provider.T) {
	t.Parallel()

	for _, valid := range []string{"random", "positive", "negative"} {
		policy, err := ParseNeutralPolicy(valid)
		assert.NoError(t, err)
		assert.Equal(t, NeutralPolicy(valid), policy)
	}

	_, err := ParseNeutralPolicy("coinflip")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func (s *SentimentServiceSuite) TestTokenize(t provider.T) {
	t.Parallel()

	tokens := tokenize("It's GREAT, truly!  a 10/10")

	assert.Equal(t, []string{"it", "great", "truly", "10", "10"}, tokens)
}
