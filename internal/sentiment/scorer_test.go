package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/catalyst/internal/model"
)

func TestLabel_Thresholds(t *testing.T) {
	tests := []struct {
		want     model.Sentiment
		name     string
		polarity float64
	}{
		{name: "just above positive threshold", polarity: 0.21, want: model.SentimentPositive},
		{name: "exactly positive threshold", polarity: 0.20, want: model.SentimentNeutral},
		{name: "exactly negative threshold", polarity: -0.20, want: model.SentimentNeutral},
		{name: "just below negative threshold", polarity: -0.21, want: model.SentimentNegative},
		{name: "zero", polarity: 0, want: model.SentimentNeutral},
		{name: "strongly positive", polarity: 0.95, want: model.SentimentPositive},
		{name: "strongly negative", polarity: -0.95, want: model.SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.polarity))
		})
	}
}

func TestVaderScorer_EmptyText(t *testing.T) {
	scorer := NewVaderScorer()

	polarity, subjectivity, err := scorer.Score("")
	require.NoError(t, err)
	assert.Zero(t, polarity)
	assert.Zero(t, subjectivity)
}

func TestVaderScorer_Ranges(t *testing.T) {
	scorer := NewVaderScorer()

	texts := []string{
		"The company reported quarterly results.",
		"An absolutely wonderful, fantastic achievement!",
		"A terrible, catastrophic failure with awful consequences.",
		"renewable energy",
	}

	for _, text := range texts {
		polarity, subjectivity, err := scorer.Score(text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, polarity, -1.0, "polarity out of range for %q", text)
		assert.LessOrEqual(t, polarity, 1.0, "polarity out of range for %q", text)
		assert.GreaterOrEqual(t, subjectivity, 0.0, "subjectivity out of range for %q", text)
		assert.LessOrEqual(t, subjectivity, 1.0, "subjectivity out of range for %q", text)
	}
}

func TestVaderScorer_Direction(t *testing.T) {
	scorer := NewVaderScorer()

	positive, _, err := scorer.Score("This is a great, excellent, wonderful success!")
	require.NoError(t, err)
	negative, _, err := scorer.Score("This is a horrible, awful, disastrous failure.")
	require.NoError(t, err)

	assert.Equal(t, model.SentimentPositive, Label(positive))
	assert.Equal(t, model.SentimentNegative, Label(negative))
}

func TestVaderScorer_Deterministic(t *testing.T) {
	scorer := NewVaderScorer()
	const text = "The company invested in renewable energy and improved gender equality."

	p1, s1, err := scorer.Score(text)
	require.NoError(t, err)
	p2, s2, err := scorer.Score(text)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, s1, s2)
}
