// Package suggest offers search prompt suggestions by substring matching
// over a canned prompt library.
package suggest

import (
	"math/rand"
	"strings"
	"time"
)

const maxSuggestions = 5

// DefaultPrompts is the built-in prompt library.
var DefaultPrompts = map[string][]string{
	"general": {
		"What is the weather today?",
		"How to make a cake?",
		"Latest tech news",
		"Best restaurants nearby",
	},
	"tech": {
		"How to use Python with Streamlit?",
		"What is AI?",
		"Latest JavaScript frameworks",
		"Cloud computing trends 2023",
	},
}

// Engine suggests prompts for a partial query. The random source is injected
// so the fallback sample is reproducible in tests.
type Engine struct {
	prompts map[string][]string
	rng     *rand.Rand
}

// NewEngine creates a suggestion engine over the given prompt library.
func NewEngine(prompts map[string][]string, rng *rand.Rand) *Engine {
	if prompts == nil {
		prompts = DefaultPrompts
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{prompts: prompts, rng: rng}
}

// Suggestions returns up to five prompts for the input. General prompts are
// searched first, then tech prompts; with no match at all, up to three
// random prompts are offered instead. Blank input yields nothing.
func (e *Engine) Suggestions(input string) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}

	suggestions := e.matching("general", input)
	if len(suggestions) == 0 {
		suggestions = e.matching("tech", input)
	}
	if len(suggestions) == 0 {
		suggestions = e.sample(3)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func (e *Engine) matching(set, input string) []string {
	var out []string
	for _, prompt := range e.prompts[set] {
		if strings.Contains(strings.ToLower(prompt), input) {
			out = append(out, prompt)
		}
	}
	return out
}

func (e *Engine) sample(n int) []string {
	var all []string
	all = append(all, e.prompts["general"]...)
	all = append(all, e.prompts["tech"]...)
	if len(all) == 0 {
		return nil
	}
	if n > len(all) {
		n = len(all)
	}

	picked := make([]string, len(all))
	copy(picked, all)
	e.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n]
}
