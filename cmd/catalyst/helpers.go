package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/verdantlabs/catalyst/internal/common"
	"github.com/verdantlabs/catalyst/internal/engine"
	"github.com/verdantlabs/catalyst/internal/model"
	"github.com/verdantlabs/catalyst/internal/scraper"
	"github.com/verdantlabs/catalyst/internal/sdg"
	"github.com/verdantlabs/catalyst/internal/sentiment"
	"github.com/verdantlabs/catalyst/internal/storage"
)

// defaultDBPath returns the database location when storage.path is not set.
func defaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "catalyst", "catalyst.db"), nil
}

// openStore opens the session store configured via storage.path and runs
// pending migrations.
func openStore() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("storage.path")
	if dbPath == "" {
		var err error
		dbPath, err = defaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open session store", err)
	}
	return store, nil
}

// newScraper builds the ESG Today scraper from configuration.
func newScraper() *scraper.Scraper {
	var opts []scraper.Option
	if base := viper.GetString("scraper.base_url"); base != "" {
		opts = append(opts, scraper.WithBaseURL(base))
	}
	if timeout := viper.GetDuration("scraper.timeout"); timeout > 0 {
		opts = append(opts, scraper.WithTimeout(timeout))
	}
	return scraper.New(opts...)
}

// newClassifier builds the production classifier: full SDG table, VADER
// lexicon scorer.
func newClassifier() *engine.Classifier {
	return engine.NewClassifier(sdg.Categories(), sentiment.NewVaderScorer())
}

// parseSentiment validates a --sentiment flag value.
func parseSentiment(value string) (model.Sentiment, error) {
	switch model.Sentiment(value) {
	case model.SentimentAll, model.SentimentPositive, model.SentimentNeutral, model.SentimentNegative:
		return model.Sentiment(value), nil
	default:
		return "", fmt.Errorf("%w: sentiment must be All, Positive, Neutral or Negative (got %q)",
			common.ErrInvalidInput, value)
	}
}

// resolveCategories expands category selectors: either full display names or
// bare SDG numbers ("7" -> "Affordable and Clean Energy (SDG7)").
func resolveCategories(selectors []string) ([]string, error) {
	var out []string
	for _, sel := range selectors {
		if cat, ok := sdg.Lookup(sel); ok {
			out = append(out, cat.Name)
			continue
		}

		matched := false
		for _, cat := range sdg.Categories() {
			if fmt.Sprintf("%d", cat.Goal) == sel {
				out = append(out, cat.Name)
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: unknown SDG %q", common.ErrInvalidInput, sel)
		}
	}
	return out, nil
}

func formatAge(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
