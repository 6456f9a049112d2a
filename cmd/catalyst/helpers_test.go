package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/catalyst/internal/model"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Sentiment
		wantErr bool
	}{
		{name: "all", input: "All", want: model.SentimentAll},
		{name: "positive", input: "Positive", want: model.SentimentPositive},
		{name: "neutral", input: "Neutral", want: model.SentimentNeutral},
		{name: "negative", input: "Negative", want: model.SentimentNegative},
		{name: "lowercase rejected", input: "positive", wantErr: true},
		{name: "garbage", input: "meh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSentiment(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCategories(t *testing.T) {
	got, err := resolveCategories([]string{"7", "Gender Equality (SDG5)"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Affordable and Clean Energy (SDG7)",
		"Gender Equality (SDG5)",
	}, got)
}

func TestResolveCategories_UnknownSDG(t *testing.T) {
	_, err := resolveCategories([]string{"4"})
	assert.Error(t, err, "SDG4 is not in the keyword table")

	_, err = resolveCategories([]string{"not a goal"})
	assert.Error(t, err)
}

func TestResolveCategories_Empty(t *testing.T) {
	got, err := resolveCategories(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
