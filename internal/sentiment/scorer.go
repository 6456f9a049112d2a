// Package sentiment scores snippet text with a lexicon-based analyzer and
// maps polarity onto the fixed Positive/Neutral/Negative thresholds.
package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/verdantlabs/catalyst/internal/model"
)

// Label thresholds. These are fixed constants, not configuration: output
// parity with the reference pipeline depends on them.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Label maps a polarity score in [-1, 1] to a sentiment label.
func Label(polarity float64) model.Sentiment {
	switch {
	case polarity > positiveThreshold:
		return model.SentimentPositive
	case polarity < negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// VaderScorer scores text with the VADER lexicon. Scoring is deterministic
// and purely in-process; the analyzer is read-only after construction and
// safe for concurrent use.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds a scorer with the default VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns polarity in [-1, 1] and subjectivity in [0, 1] for text.
// Polarity is the VADER compound score. Subjectivity is the proportion of
// the text carrying any sentiment at all (positive + negative), which is
// zero for purely factual text and grows with opinionated wording.
func (s *VaderScorer) Score(text string) (polarity, subjectivity float64, err error) {
	if text == "" {
		return 0, 0, nil
	}

	scores := s.analyzer.PolarityScores(text)

	polarity = clamp(scores.Compound, -1, 1)
	subjectivity = clamp(scores.Positive+scores.Negative, 0, 1)
	return polarity, subjectivity, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
