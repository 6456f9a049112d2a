package model

// ESGScores holds the sustainability metrics reported for a single ticker.
// Pointer fields distinguish "not reported" from a genuine zero.
type ESGScores struct {
	Exclusions         map[string]bool // Ethical exclusion flags, e.g. "tobacco" -> true
	Ticker             string
	ESGPerformance     string
	TotalESG           *float64
	EnvironmentScore   *float64
	SocialScore        *float64
	GovernanceScore    *float64
	Percentile         *float64
	HighestControversy *float64
}
