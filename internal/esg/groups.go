package esg

import "github.com/verdantlabs/catalyst/internal/model"

// Metric is one reported score, ready for display.
type Metric struct {
	Value *float64
	Name  string
	Text  string // Set for non-numeric metrics such as esgPerformance
}

// MetricGroup is a display bucket of related metrics.
type MetricGroup struct {
	Name    string
	Metrics []Metric
}

// exclusionSectors buckets the involvement flags for display.
var exclusionSectors = []struct {
	Name  string
	Flags []string
}{
	{Name: "Weapons", Flags: []string{"controversialWeapons", "militaryContract", "smallArms", "nuclear"}},
	{Name: "Substances", Flags: []string{"alcoholic", "tobacco", "gambling", "adult"}},
	{Name: "Ethics", Flags: []string{"animalTesting", "catholic", "furLeather", "gmo"}},
	{Name: "Environment", Flags: []string{"coal", "palmOil", "pesticides"}},
}

// Groups arranges the scores into the dashboard's display buckets, omitting
// groups with nothing reported.
func Groups(s *model.ESGScores) []MetricGroup {
	candidates := []MetricGroup{
		{Name: "Environment", Metrics: []Metric{{Name: "environmentScore", Value: s.EnvironmentScore}}},
		{Name: "Social", Metrics: []Metric{{Name: "socialScore", Value: s.SocialScore}}},
		{Name: "Governance", Metrics: []Metric{{Name: "governanceScore", Value: s.GovernanceScore}}},
		{Name: "Total ESG", Metrics: []Metric{
			{Name: "totalEsg", Value: s.TotalESG},
			{Name: "percentile", Value: s.Percentile},
			{Name: "esgPerformance", Text: s.ESGPerformance},
		}},
		{Name: "Controversies", Metrics: []Metric{{Name: "highestControversy", Value: s.HighestControversy}}},
	}

	var groups []MetricGroup
	for _, group := range candidates {
		var present []Metric
		for _, m := range group.Metrics {
			if m.Value != nil || m.Text != "" {
				present = append(present, m)
			}
		}
		if len(present) > 0 {
			groups = append(groups, MetricGroup{Name: group.Name, Metrics: present})
		}
	}
	return groups
}

// ExclusionGroup is a display bucket of involvement flags.
type ExclusionGroup struct {
	Name  string
	Flags []ExclusionFlag
}

// ExclusionFlag is one involvement flag with its reported value.
type ExclusionFlag struct {
	Name    string
	Flagged bool
}

// Exclusions arranges the reported involvement flags into sectors, omitting
// sectors with no reported flags.
func Exclusions(s *model.ESGScores) []ExclusionGroup {
	var groups []ExclusionGroup
	for _, sector := range exclusionSectors {
		var present []ExclusionFlag
		for _, name := range sector.Flags {
			flagged, ok := s.Exclusions[name]
			if !ok {
				continue
			}
			present = append(present, ExclusionFlag{Name: name, Flagged: flagged})
		}
		if len(present) > 0 {
			groups = append(groups, ExclusionGroup{Name: sector.Name, Flags: present})
		}
	}
	return groups
}
