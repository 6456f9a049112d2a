// Package sdg holds the static registry mapping each Sustainable Development
// Goal to its trigger keywords and official display color.
//
// The table is the engine's only configuration surface: adding or removing a
// goal or keyword is a data change here, never a classifier change. Keywords
// are matched as case-insensitive substrings, so both coarse and fine entries
// are deliberate ("health" and "healthcare" are separate triggers for SDG3).
// The table is never mutated after initialization and is safe for any number
// of concurrent readers.
package sdg

import "github.com/verdantlabs/catalyst/internal/model"

var table = []model.Category{
	{
		Name:     "No Poverty (SDG1)",
		Goal:     1,
		Keywords: []string{"poverty", "financial inclusion", "poverty reduction"},
		Color:    "#e5243b",
	},
	{
		Name:     "Good Health and Well-being (SDG3)",
		Goal:     3,
		Keywords: []string{"health", "wellbeing", "mental health", "healthcare"},
		Color:    "#4c9f38",
	},
	{
		Name:     "Gender Equality (SDG5)",
		Goal:     5,
		Keywords: []string{"gender equality", "women empowerment", "diversity", "inclusion"},
		Color:    "#ff3a21",
	},
	{
		Name:     "Affordable and Clean Energy (SDG7)",
		Goal:     7,
		Keywords: []string{"clean energy", "renewable", "solar", "wind", "energy efficiency"},
		Color:    "#fcc30b",
	},
	{
		Name:     "Decent Work and Economic Growth (SDG8)",
		Goal:     8,
		Keywords: []string{"economic growth", "jobs", "employment", "decent work"},
		Color:    "#a21942",
	},
	{
		Name:     "Industry, Innovation and Infrastructure (SDG9)",
		Goal:     9,
		Keywords: []string{"innovation", "infrastructure", "technology", "industry"},
		Color:    "#fd6925",
	},
	{
		Name:     "Reduced Inequalities (SDG10)",
		Goal:     10,
		Keywords: []string{"inequality", "equal opportunity", "inclusion", "fairness"},
		Color:    "#dd1367",
	},
	{
		Name:     "Sustainable Cities and Communities (SDG11)",
		Goal:     11,
		Keywords: []string{"sustainable cities", "urban", "communities", "housing"},
		Color:    "#fd9d24",
	},
	{
		Name:     "Responsible Consumption and Production (SDG12)",
		Goal:     12,
		Keywords: []string{"sustainable consumption", "waste", "recycling", "circular economy"},
		Color:    "#bf8b2e",
	},
	{
		Name:     "Climate Action (SDG13)",
		Goal:     13,
		Keywords: []string{"climate change", "carbon emissions", "climate action", "global warming"},
		Color:    "#3f7e44",
	},
	{
		Name:     "Life Below Water (SDG14)",
		Goal:     14,
		Keywords: []string{"marine", "oceans", "water pollution", "marine life"},
		Color:    "#0a97d9",
	},
	{
		Name:     "Life on Land (SDG15)",
		Goal:     15,
		Keywords: []string{"biodiversity", "forests", "land", "wildlife", "ecosystem"},
		Color:    "#56c02b",
	},
	{
		Name:     "Peace, Justice and Strong Institutions (SDG16)",
		Goal:     16,
		Keywords: []string{"peace", "justice", "strong institutions", "governance"},
		Color:    "#00689d",
	},
	{
		Name:     "Partnerships for the Goals (SDG17)",
		Goal:     17,
		Keywords: []string{"partnership", "collaboration", "sdg goals", "sustainable development goals"},
		Color:    "#19486a",
	},
}

// Categories returns every registered category in table order.
func Categories() []model.Category {
	out := make([]model.Category, len(table))
	copy(out, table)
	return out
}

// Names returns the display names of every registered category in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, cat := range table {
		names[i] = cat.Name
	}
	return names
}

// KeywordsOf returns the trigger keywords for the named category, or nil if
// the category is not registered.
func KeywordsOf(name string) []string {
	cat, ok := Lookup(name)
	if !ok {
		return nil
	}
	return cat.Keywords
}

// Lookup finds a category by display name.
func Lookup(name string) (model.Category, bool) {
	for _, cat := range table {
		if cat.Name == name {
			return cat, true
		}
	}
	return model.Category{}, false
}
