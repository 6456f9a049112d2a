package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/catalyst/internal/model"
)

func filterFixture() []model.AnalyzedArticle {
	return []model.AnalyzedArticle{
		{
			Article: model.Article{Position: 0},
			Classification: model.Classification{
				Categories: []string{"Affordable and Clean Energy (SDG7)"},
				Sentiment:  model.SentimentPositive,
			},
		},
		{
			Article: model.Article{Position: 1},
			Classification: model.Classification{
				Categories: []string{"Gender Equality (SDG5)"},
				Sentiment:  model.SentimentNegative,
			},
		},
		{
			Article: model.Article{Position: 2},
			Classification: model.Classification{
				Categories: []string{
					"Affordable and Clean Energy (SDG7)",
					"Climate Action (SDG13)",
				},
				Sentiment: model.SentimentNeutral,
			},
		},
		{
			Article:        model.Article{Position: 3},
			Classification: model.Classification{Sentiment: model.SentimentNeutral},
		},
	}
}

func positions(items []model.AnalyzedArticle) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.Article.Position
	}
	return out
}

func TestFilter_NoFiltersIsIdentity(t *testing.T) {
	items := filterFixture()

	got := Filter(items, nil, model.SentimentAll)

	assert.Equal(t, items, got)
}

func TestFilter_ByCategory(t *testing.T) {
	got := Filter(filterFixture(), []string{"Affordable and Clean Energy (SDG7)"}, model.SentimentAll)

	assert.Equal(t, []int{0, 2}, positions(got))
}

func TestFilter_CategoryIntersection(t *testing.T) {
	// Selection matching any of an article's categories is enough.
	got := Filter(filterFixture(), []string{
		"Climate Action (SDG13)",
		"Gender Equality (SDG5)",
	}, model.SentimentAll)

	assert.Equal(t, []int{1, 2}, positions(got))
}

func TestFilter_BySentiment(t *testing.T) {
	got := Filter(filterFixture(), nil, model.SentimentNeutral)

	assert.Equal(t, []int{2, 3}, positions(got))
}

func TestFilter_BothFiltersAreANDed(t *testing.T) {
	got := Filter(filterFixture(),
		[]string{"Affordable and Clean Energy (SDG7)"},
		model.SentimentNeutral)

	assert.Equal(t, []int{2}, positions(got))
}

func TestFilter_Idempotent(t *testing.T) {
	selected := []string{"Affordable and Clean Energy (SDG7)"}

	once := Filter(filterFixture(), selected, model.SentimentPositive)
	twice := Filter(once, selected, model.SentimentPositive)

	assert.Equal(t, once, twice)
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	got := Filter(filterFixture(), nil, model.SentimentAll)

	require.Len(t, got, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, positions(got))
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(filterFixture(), []string{"No Poverty (SDG1)"}, model.SentimentAll)

	assert.Empty(t, got)
}
