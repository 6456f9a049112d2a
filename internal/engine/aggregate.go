package engine

import "github.com/verdantlabs/catalyst/internal/model"

// Aggregate tallies category match counts across a collection of analyzed
// articles. A snippet matching three categories increments all three.
// Categories with zero matches are omitted. Accumulation is commutative, so
// the input order never affects the result.
func Aggregate(items []model.AnalyzedArticle) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		for _, cat := range item.Classification.Categories {
			counts[cat]++
		}
	}
	return counts
}
