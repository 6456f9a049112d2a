package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/catalyst/internal/common"
	"github.com/verdantlabs/catalyst/internal/model"
	"github.com/verdantlabs/catalyst/internal/storage"
)

// fakeStore is an in-memory service.SessionStore.
type fakeStore struct {
	session *storage.Session
	saved   []model.AnalyzedArticle
}

func (f *fakeStore) SaveSession(_ context.Context, _ string, items []model.AnalyzedArticle) (int64, error) {
	f.saved = items
	return 1, nil
}

func (f *fakeStore) GetLatestSession(_ context.Context, company string) (*storage.Session, error) {
	if f.session == nil {
		return nil, fmt.Errorf("%w: no session for %s", common.ErrNotFound, company)
	}
	return f.session, nil
}

func (f *fakeStore) ListSessions(context.Context) ([]storage.SessionInfo, error) { return nil, nil }
func (f *fakeStore) Close() error                                               { return nil }

const analyzeFixture = `<html><body>
<article class="post">
  <h2 class="post-title"><a href="https://example.com/a">Solar expansion</a></h2>
  <div class="entry-content"><p>A major renewable energy project.</p></div>
</article>
</body></html>`

func withFixtureScraper(t *testing.T, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { viper.Set("scraper.base_url", "") })
	viper.Set("scraper.base_url", srv.URL)
}

func TestLoadOrAnalyze_ScrapesAndCaches(t *testing.T) {
	withFixtureScraper(t, analyzeFixture)
	store := &fakeStore{}

	items, err := loadOrAnalyze(context.Background(), store, "Acme", 5, false)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Solar expansion", items[0].Article.Title)
	assert.Contains(t, items[0].Classification.Categories, "Affordable and Clean Energy (SDG7)")
	assert.Len(t, store.saved, 1, "fresh analysis must be cached")
}

func TestLoadOrAnalyze_PrefersCachedSession(t *testing.T) {
	withFixtureScraper(t, analyzeFixture)
	cached := []model.AnalyzedArticle{{
		Article:        model.Article{Title: "From cache"},
		Classification: model.Classification{Sentiment: model.SentimentNeutral},
	}}
	store := &fakeStore{session: &storage.Session{Company: "Acme", Articles: cached}}

	items, err := loadOrAnalyze(context.Background(), store, "Acme", 5, false)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "From cache", items[0].Article.Title)
	assert.Nil(t, store.saved, "cached path must not re-save")
}

func TestLoadOrAnalyze_RefreshBypassesCache(t *testing.T) {
	withFixtureScraper(t, analyzeFixture)
	store := &fakeStore{session: &storage.Session{
		Company:  "Acme",
		Articles: []model.AnalyzedArticle{{Article: model.Article{Title: "Stale"}}},
	}}

	items, err := loadOrAnalyze(context.Background(), store, "Acme", 5, true)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Solar expansion", items[0].Article.Title)
}

func TestLoadOrAnalyze_NoArticles(t *testing.T) {
	withFixtureScraper(t, "<html><body></body></html>")
	store := &fakeStore{}

	items, err := loadOrAnalyze(context.Background(), store, "Acme", 5, false)
	require.NoError(t, err)
	assert.Empty(t, items)
}
