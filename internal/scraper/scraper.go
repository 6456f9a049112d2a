// Package scraper fetches company news from the ESG Today search page.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/verdantlabs/catalyst/internal/common"
	"github.com/verdantlabs/catalyst/internal/model"
)

const (
	defaultBaseURL = "https://www.esgtoday.com"
	defaultTimeout = 15 * time.Second

	// Fallbacks for fields missing from a search result.
	noTitle   = "No title"
	noLink    = "#"
	unknown   = "Unknown"
	noSummary = "No summary available."
)

// Scraper retrieves and parses ESG Today search results. It makes a single
// HTTP attempt per search; retries are deliberately out of scope.
type Scraper struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBaseURL overrides the ESG Today base URL.
func WithBaseURL(base string) Option {
	return func(s *Scraper) {
		s.baseURL = strings.TrimRight(base, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.httpClient.Timeout = d
	}
}

// New creates a scraper with default settings.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		userAgent:  "Mozilla/5.0",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search fetches up to maxArticles news items about a company. A single
// malformed article is skipped rather than failing the whole page.
func (s *Scraper) Search(ctx context.Context, company string, maxArticles int) ([]model.Article, error) {
	searchURL := fmt.Sprintf("%s/?s=%s", s.baseURL, url.QueryEscape(company))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", common.ErrFetchFailed, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrParseFailed, err)
	}

	var articles []model.Article
	doc.Find("article.post").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(articles) >= maxArticles {
			return false
		}

		art := parseArticle(sel)
		art.Position = len(articles)
		articles = append(articles, art)
		return true
	})

	common.LogDebug("scraped search results", common.Fields{
		"company": company,
		"count":   len(articles),
	})
	return articles, nil
}

func parseArticle(sel *goquery.Selection) model.Article {
	art := model.Article{
		Title:     noTitle,
		Link:      noLink,
		Author:    unknown,
		Published: unknown,
		Summary:   noSummary,
	}

	titleTag := sel.Find("h2.post-title").First()
	if title := strings.TrimSpace(titleTag.Text()); title != "" {
		art.Title = title
	}
	if href, ok := titleTag.Find("a").First().Attr("href"); ok {
		art.Link = href
	}

	if datetime, ok := sel.Find("time.post-date").First().Attr("datetime"); ok {
		art.Published = formatDate(datetime)
	}

	if author := strings.TrimSpace(sel.Find("span.author-name").First().Text()); author != "" {
		art.Author = author
	}

	if summary := strings.TrimSpace(sel.Find("div.entry-content > p").First().Text()); summary != "" {
		art.Summary = summary
	}

	return art
}

// formatDate renders an article timestamp as "Jan 02, 2006", keeping the raw
// value when it doesn't parse.
func formatDate(datetime string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-0700"} {
		if ts, err := time.Parse(layout, datetime); err == nil {
			return ts.Format("Jan 02, 2006")
		}
	}
	return datetime
}
