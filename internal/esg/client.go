// Package esg fetches company sustainability scores from the Yahoo Finance
// quoteSummary endpoint.
package esg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/verdantlabs/catalyst/internal/common"
	"github.com/verdantlabs/catalyst/internal/model"
)

const (
	defaultBaseURL = "https://query2.finance.yahoo.com"
	defaultTimeout = 10 * time.Second
)

// exclusionFlags are the boolean involvement fields reported alongside the
// scores, keyed by the upstream field name.
var exclusionFlags = []string{
	"adult", "alcoholic", "animalTesting", "catholic", "coal",
	"controversialWeapons", "furLeather", "gambling", "gmo",
	"militaryContract", "nuclear", "palmOil", "pesticides",
	"smallArms", "tobacco",
}

// Client fetches ESG scores. One unauthenticated JSON GET per call, no
// retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Yahoo Finance base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates an ESG scores client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// rawValue is Yahoo's {raw, fmt} number wrapper.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type esgScoresPayload struct {
	TotalEsg           *rawValue `json:"totalEsg"`
	EnvironmentScore   *rawValue `json:"environmentScore"`
	SocialScore        *rawValue `json:"socialScore"`
	GovernanceScore    *rawValue `json:"governanceScore"`
	Percentile         *rawValue `json:"percentile"`
	HighestControversy *rawValue `json:"highestControversy"`
	ESGPerformance     string    `json:"esgPerformance"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []json.RawMessage `json:"result"`
		Error  *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Fetch retrieves ESG scores for a ticker. Returns common.ErrNoESGData when
// the ticker has no sustainability coverage.
func (c *Client) Fetch(ctx context.Context, ticker string) (*model.ESGScores, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is empty", common.ErrInvalidInput)
	}

	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=esgScores", c.baseURL, ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", common.ErrNoESGData, ticker)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", common.ErrFetchFailed, resp.StatusCode)
	}

	var payload quoteSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrParseFailed, err)
	}

	if payload.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrNoESGData, payload.QuoteSummary.Error.Description)
	}
	if len(payload.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrNoESGData, ticker)
	}

	return parseResult(ticker, payload.QuoteSummary.Result[0])
}

func parseResult(ticker string, raw json.RawMessage) (*model.ESGScores, error) {
	var wrapper struct {
		ESGScores *esgScoresPayload `json:"esgScores"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrParseFailed, err)
	}
	if wrapper.ESGScores == nil {
		return nil, fmt.Errorf("%w: %s", common.ErrNoESGData, ticker)
	}
	p := wrapper.ESGScores

	// Exclusion flags sit next to the scores as plain booleans; decode them
	// generically so new flags flow through without a code change.
	var fields map[string]json.RawMessage
	var inner struct {
		ESGScores map[string]json.RawMessage `json:"esgScores"`
	}
	if err := json.Unmarshal(raw, &inner); err == nil {
		fields = inner.ESGScores
	}

	scores := &model.ESGScores{
		Ticker:             ticker,
		ESGPerformance:     p.ESGPerformance,
		TotalESG:           rawOf(p.TotalEsg),
		EnvironmentScore:   rawOf(p.EnvironmentScore),
		SocialScore:        rawOf(p.SocialScore),
		GovernanceScore:    rawOf(p.GovernanceScore),
		Percentile:         rawOf(p.Percentile),
		HighestControversy: rawOf(p.HighestControversy),
		Exclusions:         make(map[string]bool),
	}

	for _, flag := range exclusionFlags {
		rawFlag, ok := fields[flag]
		if !ok {
			continue
		}
		var b bool
		if err := json.Unmarshal(rawFlag, &b); err == nil {
			scores.Exclusions[flag] = b
		}
	}

	return scores, nil
}

func rawOf(v *rawValue) *float64 {
	if v == nil {
		return nil
	}
	return v.Raw
}
