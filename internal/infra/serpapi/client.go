// Package serpapi talks to the SerpApi Google Shopping engine.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"shopcompare/internal/pkg/config"
	"shopcompare/internal/pkg/errs"
)

const maxResponseBytes = 8 << 20

var errBudgetExhausted = errs.New("search provider call budget exhausted")

// Budget bounds how many provider calls the deployment makes per window.
type Budget interface {
	Allow(ctx context.Context) (bool, error)
}

type Client struct {
	cfg        config.SerpAPIConfig
	httpClient *http.Client
	budget     Budget
	log        *slog.Logger
}

// NewClient wires an optional transport (nil means http.DefaultTransport) so
// callers can instrument outbound requests.
func NewClient(cfg config.SerpAPIConfig, budget Budget, transport http.RoundTripper) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout, Transport: transport},
		budget:     budget,
		log:        slog.Default().With("client", "serpapi"),
	}
}

type shoppingResponse struct {
	Error           string          `json:"error"`
	ShoppingResults json.RawMessage `json:"shopping_results"`
}

type shoppingResult struct {
	Title             string   `json:"title"`
	Source            string   `json:"source"`
	Link              string   `json:"link"`
	ProductLink       string   `json:"product_link"`
	Price             string   `json:"price"`
	ExtractedPrice    *float64 `json:"extracted_price"`
	OldPrice          string   `json:"old_price"`
	ExtractedOldPrice *float64 `json:"extracted_old_price"`
	Rating            *float64 `json:"rating"`
	Reviews           int      `json:"reviews"`
	Thumbnail         string   `json:"thumbnail"`
	Thumbnails        []string `json:"thumbnails"`
	Delivery          string   `json:"delivery"`
	Snippet           string   `json:"snippet"`
}

// fetch returns the shopping results that decode cleanly. A payload without
// shopping_results, or with a malformed one, yields no results and no error.
func (c *Client) fetch(ctx context.Context, query string) ([]shoppingResult, error) {
	if c.budget != nil {
		ok, err := c.budget.Allow(ctx)
		switch {
		case err != nil:
			c.log.Warn("budget check failed, allowing call", "error", err)
		case !ok:
			return nil, errs.RateLimited(errBudgetExhausted)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(query), nil)
	if err != nil {
		return nil, errs.Upstream(errs.Wrap(err, "build search request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Upstream(errs.Wrap(err, "search request failed"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.Upstream(errs.Wrap(err, "read search response"))
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errs.RateLimited(errs.Newf("search provider returned %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errs.Upstream(errs.Newf("search provider returned %d: %s", resp.StatusCode, truncate(string(body), 200)))
	}

	var payload shoppingResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.Warn("malformed search payload", "query", query, "error", err)
		return nil, nil
	}
	if payload.Error != "" {
		// SerpApi reports "no results" as an error string on a 200.
		c.log.Info("search provider reported no results", "query", query, "reason", payload.Error)
		return nil, nil
	}
	return decodeResults(payload.ShoppingResults, c.log), nil
}

func (c *Client) requestURL(query string) string {
	params := url.Values{}
	params.Set("engine", "google_shopping")
	params.Set("q", query)
	params.Set("location", c.cfg.Location)
	params.Set("hl", c.cfg.Language)
	params.Set("gl", c.cfg.Country)
	params.Set("api_key", c.cfg.APIKey)
	return c.cfg.BaseURL + "?" + params.Encode()
}

func decodeResults(raw json.RawMessage, log *slog.Logger) []shoppingResult {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn("shopping_results is not a list", "error", err)
		return nil
	}

	out := make([]shoppingResult, 0, len(items))
	for i, item := range items {
		var r shoppingResult
		if err := json.Unmarshal(item, &r); err != nil {
			log.Debug("skipping malformed shopping result", "index", i, "error", err)
			continue
		}
		if strings.TrimSpace(r.Title) == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

var priceDigits = regexp.MustCompile(`[\d,]+(\.\d+)?`)

// price prefers the provider's extracted value and falls back to parsing the
// localized string, e.g. "₹1,29,999.00".
func (r shoppingResult) price() (float64, bool) {
	if r.ExtractedPrice != nil {
		return *r.ExtractedPrice, *r.ExtractedPrice >= 0
	}
	return parsePrice(r.Price)
}

func (r shoppingResult) oldPrice() (float64, bool) {
	if r.ExtractedOldPrice != nil {
		return *r.ExtractedOldPrice, true
	}
	return parsePrice(r.OldPrice)
}

func (r shoppingResult) thumbnail() string {
	for _, t := range r.Thumbnails {
		if t != "" {
			return t
		}
	}
	return r.Thumbnail
}

func (r shoppingResult) url() string {
	if r.ProductLink != "" {
		return r.ProductLink
	}
	return r.Link
}

func parsePrice(s string) (float64, bool) {
	m := priceDigits.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
