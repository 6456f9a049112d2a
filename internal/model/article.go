package model

// Article is a single news item scraped from an external feed.
// Its summary is the snippet handed to the classifier.
type Article struct {
	Title     string
	Link      string
	Author    string
	Published string // Already formatted for display, "Unknown" when absent
	Summary   string
	Position  int // Position in the scraped sequence; only identity an article has
}
