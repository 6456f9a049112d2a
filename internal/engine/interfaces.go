package engine

// Scorer produces continuous sentiment scores for a snippet of text.
// Implementations must be deterministic: identical text yields identical
// scores. Polarity is in [-1, 1], subjectivity in [0, 1].
type Scorer interface {
	Score(text string) (polarity, subjectivity float64, err error)
}
