// Package engine implements the SDG classification, aggregation and
// filtering core. Everything here is a pure function over immutable inputs:
// no I/O, no shared mutable state, safe to call from any number of
// goroutines.
package engine

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/verdantlabs/catalyst/internal/common"
	"github.com/verdantlabs/catalyst/internal/model"
	"github.com/verdantlabs/catalyst/internal/sentiment"
)

// Classifier assigns SDG categories and a sentiment label to text snippets.
type Classifier struct {
	scorer Scorer
	table  []model.Category
}

// NewClassifier creates a classifier over the given keyword table. The table
// is evaluated in order, and all matching categories are kept; there is no
// precedence between categories.
func NewClassifier(table []model.Category, scorer Scorer) *Classifier {
	return &Classifier{table: table, scorer: scorer}
}

// Classify classifies a single snippet. It is total over all strings: the
// empty string yields an empty category set and a Neutral/0/0 sentiment, and
// a scorer failure degrades to the same neutral default rather than
// propagating.
func (c *Classifier) Classify(text string) model.Classification {
	result := model.Classification{
		Sentiment: model.SentimentNeutral,
		Triggers:  make(map[string][]string),
	}

	lower := strings.ToLower(text)
	for _, cat := range c.table {
		var hits []string
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) > 0 {
			result.Categories = append(result.Categories, cat.Name)
			result.Triggers[cat.Name] = hits
		}
	}

	if text == "" {
		return result
	}

	polarity, subjectivity, err := c.scorer.Score(text)
	if err != nil {
		// Classification must be total; fall back to the neutral default.
		slog.Debug("sentiment scoring failed, using neutral fallback", "error", err)
		return result
	}

	result.Polarity = polarity
	result.Subjectivity = subjectivity
	result.Sentiment = sentiment.Label(polarity)
	return result
}

// ClassifyArticles classifies every article's summary and pairs each article
// with its result. Articles whose summary is not valid UTF-8 are skipped and
// counted rather than aborting the batch. The optional progress callback is
// invoked once per processed article.
func (c *Classifier) ClassifyArticles(articles []model.Article, progress func()) (analyzed []model.AnalyzedArticle, skipped int) {
	analyzed = make([]model.AnalyzedArticle, 0, len(articles))

	for _, art := range articles {
		if !utf8.ValidString(art.Summary) {
			skipped++
			common.LogDebug("skipping malformed snippet", common.Fields{
				"position": art.Position,
				"error":    common.ErrInvalidInput.Error(),
			})
			continue
		}

		analyzed = append(analyzed, model.AnalyzedArticle{
			Article:        art,
			Classification: c.Classify(art.Summary),
		})

		if progress != nil {
			progress()
		}
	}

	return analyzed, skipped
}
