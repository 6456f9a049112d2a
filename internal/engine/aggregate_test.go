package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/catalyst/internal/model"
	"github.com/verdantlabs/catalyst/internal/sdg"
)

func analyzedFixture() []model.AnalyzedArticle {
	c := NewClassifier(sdg.Categories(), stubScorer{})
	summaries := []string{
		"solar and wind expansion",
		"gender equality and diversity in hiring",
		"healthcare access and clean energy funding",
		"no relevant content here",
		"recycling and waste reduction pilot",
		"carbon emissions down, renewable capacity up",
	}

	items := make([]model.AnalyzedArticle, len(summaries))
	for i, s := range summaries {
		items[i] = model.AnalyzedArticle{
			Article:        model.Article{Position: i, Summary: s},
			Classification: c.Classify(s),
		}
	}
	return items
}

func TestAggregate_CountsSumCorrectly(t *testing.T) {
	items := analyzedFixture()
	counts := Aggregate(items)

	for _, cat := range sdg.Names() {
		manual := 0
		for _, item := range items {
			if item.Classification.HasCategory(cat) {
				manual++
			}
		}
		if manual == 0 {
			assert.NotContains(t, counts, cat, "zero-count category %s must be omitted", cat)
		} else {
			assert.Equal(t, manual, counts[cat], "count mismatch for %s", cat)
		}
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	items := analyzedFixture()
	want := Aggregate(items)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]model.AnalyzedArticle, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestAggregate_MultiCategorySnippetIncrementsAll(t *testing.T) {
	c := NewClassifier(sdg.Categories(), stubScorer{})
	item := model.AnalyzedArticle{
		Classification: c.Classify("healthcare innovation for sustainable cities"),
	}
	require.Len(t, item.Classification.Categories, 3)

	counts := Aggregate([]model.AnalyzedArticle{item})

	assert.Equal(t, map[string]int{
		"Good Health and Well-being (SDG3)":              1,
		"Industry, Innovation and Infrastructure (SDG9)": 1,
		"Sustainable Cities and Communities (SDG11)":     1,
	}, counts)
}

func TestAggregate_NoMatchesYieldsEmptyMap(t *testing.T) {
	c := NewClassifier(sdg.Categories(), stubScorer{})

	var items []model.AnalyzedArticle
	for i, s := range []string{"", "no relevant content here"} {
		items = append(items, model.AnalyzedArticle{
			Article:        model.Article{Position: i, Summary: s},
			Classification: c.Classify(s),
		})
	}

	assert.Empty(t, Aggregate(items))
}

func TestAggregate_EmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}
