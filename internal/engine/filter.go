package engine

import "github.com/verdantlabs/catalyst/internal/model"

// Filter selects the articles matching both the category and sentiment
// filters, preserving original relative order. An empty category selection
// means "all categories"; SentimentAll means "all sentiments". An article
// passes the category filter when its matched set intersects the selection.
func Filter(items []model.AnalyzedArticle, categories []string, sent model.Sentiment) []model.AnalyzedArticle {
	out := make([]model.AnalyzedArticle, 0, len(items))
	for _, item := range items {
		if !passesCategories(item.Classification, categories) {
			continue
		}
		if sent != model.SentimentAll && item.Classification.Sentiment != sent {
			continue
		}
		out = append(out, item)
	}
	return out
}

func passesCategories(c model.Classification, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		if c.HasCategory(want) {
			return true
		}
	}
	return false
}
