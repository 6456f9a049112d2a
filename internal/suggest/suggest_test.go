package suggest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(nil, rand.New(rand.NewSource(1)))
}

func TestSuggestions_MatchesGeneralFirst(t *testing.T) {
	e := newTestEngine()

	got := e.Suggestions("latest")

	// "Latest tech news" is in the general set, so the tech set is never
	// consulted even though it also contains a "Latest" prompt.
	assert.Equal(t, []string{"Latest tech news"}, got)
}

func TestSuggestions_FallsBackToTech(t *testing.T) {
	e := newTestEngine()

	got := e.Suggestions("python")

	assert.Equal(t, []string{"How to use Python with Streamlit?"}, got)
}

func TestSuggestions_CaseInsensitive(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, e.Suggestions("WEATHER"), e.Suggestions("weather"))
}

func TestSuggestions_RandomFallback(t *testing.T) {
	e := newTestEngine()

	got := e.Suggestions("zzz no such prompt")

	require.Len(t, got, 3)
	all := append(DefaultPrompts["general"], DefaultPrompts["tech"]...)
	for _, s := range got {
		assert.Contains(t, all, s)
	}
}

func TestSuggestions_BlankInput(t *testing.T) {
	e := newTestEngine()

	assert.Nil(t, e.Suggestions(""))
	assert.Nil(t, e.Suggestions("   "))
}

func TestSuggestions_CapAtFive(t *testing.T) {
	prompts := map[string][]string{
		"general": {
			"go one", "go two", "go three", "go four", "go five", "go six", "go seven",
		},
	}
	e := NewEngine(prompts, rand.New(rand.NewSource(1)))

	got := e.Suggestions("go")

	assert.Len(t, got, 5)
}

func TestSuggestions_DeterministicWithSeed(t *testing.T) {
	first := NewEngine(nil, rand.New(rand.NewSource(7))).Suggestions("nomatch")
	second := NewEngine(nil, rand.New(rand.NewSource(7))).Suggestions("nomatch")

	assert.Equal(t, first, second)
}
