// Package model defines the core domain models used throughout the application.
package model

// Sentiment is the label derived from a snippet's polarity score.
type Sentiment string

// Sentiment label constants. SentimentAll is only meaningful as a filter
// argument; the classifier never produces it.
const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
	SentimentAll      Sentiment = "All"
)

// Classification is the result of classifying a single snippet. It is a pure
// function of the snippet text and the keyword table: identical text always
// yields an identical category set and sentiment label.
type Classification struct {
	Triggers     map[string][]string // Matched category -> keywords that triggered it
	Sentiment    Sentiment
	Categories   []string // Matched category names in keyword-table order
	Polarity     float64  // [-1, 1]
	Subjectivity float64  // [0, 1], display-only
}

// HasCategory reports whether the classification matched the named category.
func (c Classification) HasCategory(name string) bool {
	for _, got := range c.Categories {
		if got == name {
			return true
		}
	}
	return false
}

// AnalyzedArticle pairs an article with its cached classification.
type AnalyzedArticle struct {
	Article        Article
	Classification Classification
}
