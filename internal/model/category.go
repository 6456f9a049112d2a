package model

// Category represents one Sustainable Development Goal classification bucket.
type Category struct {
	Name     string   // Display name, e.g. "Climate Action (SDG13)"
	Color    string   // Official SDG hex color, passed through to presentation
	Keywords []string // Lowercase trigger keywords; multi-word phrases allowed
	Goal     int      // SDG number (1-17)
}
