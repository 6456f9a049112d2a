package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/verdantlabs/catalyst/internal/cli"
	"github.com/verdantlabs/catalyst/internal/common"
	"github.com/verdantlabs/catalyst/internal/engine"
	"github.com/verdantlabs/catalyst/internal/model"
	"github.com/verdantlabs/catalyst/internal/sdg"
	"github.com/verdantlabs/catalyst/internal/service"
)

func analyzeCmd() *cobra.Command {
	var (
		limit         int
		sdgSelectors  []string
		sentimentFlag string
		explain       bool
		refresh       bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <company>",
		Short: "Scrape and analyze SDG coverage in a company's ESG news",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company := args[0]

			sent, err := parseSentiment(sentimentFlag)
			if err != nil {
				return err
			}
			selected, err := resolveCategories(sdgSelectors)
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}

			items, err := loadOrAnalyze(cmd.Context(), store, company, limit, refresh)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println(cli.FormatWarning("No articles found for this company."))
				return nil
			}

			renderAggregate(engine.Aggregate(items))

			filtered := engine.Filter(items, selected, sent)
			if len(filtered) == 0 {
				fmt.Println(cli.FormatWarning("No articles match the selected filters."))
				return nil
			}
			for _, item := range filtered {
				renderArticle(item, explain)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of articles to analyze")
	cmd.Flags().StringArrayVar(&sdgSelectors, "sdg", nil, "filter by SDG (name or number, repeatable)")
	cmd.Flags().StringVar(&sentimentFlag, "sentiment", "All", "filter by sentiment (All, Positive, Neutral, Negative)")
	cmd.Flags().BoolVar(&explain, "explain", false, "show which keywords triggered each SDG")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cached session and re-scrape")

	return cmd
}

// loadOrAnalyze returns the cached session for company unless refresh is set
// or no session exists, in which case it scrapes, classifies and caches a
// fresh one.
func loadOrAnalyze(ctx context.Context, store service.SessionStore, company string, limit int, refresh bool) ([]model.AnalyzedArticle, error) {
	if !refresh {
		session, err := store.GetLatestSession(ctx, company)
		if err == nil {
			fmt.Println(cli.SubtleStyle.Render(
				fmt.Sprintf("Using cached session from %s (use --refresh to re-scrape)", formatAge(session.CreatedAt))))
			return session.Articles, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}

	articles, err := newScraper().Search(ctx, company, limit)
	if err != nil {
		return nil, common.NewUserError("failed to fetch news", err)
	}
	if len(articles) == 0 {
		return nil, nil
	}

	bar := progressbar.NewOptions(len(articles),
		progressbar.OptionSetDescription("Classifying articles"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	classifier := newClassifier()
	items, skipped := classifier.ClassifyArticles(articles, func() { _ = bar.Add(1) })
	if skipped > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Skipped %d malformed article(s)", skipped)))
	}

	if _, err := store.SaveSession(ctx, company, items); err != nil {
		// Caching is best effort; the analysis itself succeeded.
		common.LogError(err, "failed to cache session", common.Fields{"company": company})
	}

	return items, nil
}

// renderAggregate prints the SDG coverage bar chart, highest counts first,
// ties broken by keyword-table order so output is stable.
func renderAggregate(counts map[string]int) {
	fmt.Println(cli.FormatTitle("SDG Coverage"))

	if len(counts) == 0 {
		fmt.Println(cli.FormatWarning("No SDG-related content found in the articles."))
		return
	}

	ordered := make([]model.Category, 0, len(counts))
	maxCount := 0
	for _, cat := range sdg.Categories() {
		if n, ok := counts[cat.Name]; ok {
			ordered = append(ordered, cat)
			if n > maxCount {
				maxCount = n
			}
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i].Name] > counts[ordered[j].Name]
	})

	for _, cat := range ordered {
		n := counts[cat.Name]
		fmt.Printf("%s %s %d\n", cli.Badge(cat.Name, cat.Color), cli.Bar(n, maxCount, 30), n)
	}
	fmt.Println()
}

func renderArticle(item model.AnalyzedArticle, explain bool) {
	art := item.Article
	c := item.Classification

	fmt.Println(cli.BoldStyle.Render(art.Title))
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%s · %s · %s", art.Published, art.Author, art.Link)))
	fmt.Printf("Sentiment: %s\n", cli.FormatSentiment(c))

	if len(c.Categories) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No SDGs identified"))
	} else {
		badges := make([]string, 0, len(c.Categories))
		for _, name := range c.Categories {
			cat, _ := sdg.Lookup(name)
			badges = append(badges, cli.Badge(name, cat.Color))
		}
		fmt.Println(strings.Join(badges, " "))
	}

	if explain {
		for _, name := range c.Categories {
			fmt.Println(cli.SubtleStyle.Render(
				fmt.Sprintf("  %s triggered by: %s", name, strings.Join(c.Triggers[name], ", "))))
		}
	}
	fmt.Println()
}
