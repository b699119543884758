// Package finnhub is a client for the Finnhub stock quote API.
package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

// ErrNoAPIKey is returned when FINNHUB_API_KEY is unset.
var ErrNoAPIKey = errors.New("finnhub: api key not configured")

// Config holds configuration for the Finnhub client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// PerMinute is the free-tier call budget.
	PerMinute int
}

// LoadConfig reads FINNHUB_API_KEY and FINNHUB_BASE_URL.
func LoadConfig() Config {
	base := os.Getenv("FINNHUB_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		APIKey:    os.Getenv("FINNHUB_API_KEY"),
		BaseURL:   base,
		Timeout:   10 * time.Second,
		PerMinute: 60,
	}
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

type quoteResponse struct {
	Current float64 `json:"c"`
}

// Quote returns the current price of symbol in USD.
func (c *Client) Quote(ctx context.Context, symbol string) (float64, error) {
	if c.cfg.APIKey == "" {
		return 0, ErrNoAPIKey
	}
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", c.cfg.APIKey)
	u := fmt.Sprintf("%s/quote?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("finnhub http %d", res.StatusCode)
	}

	var body quoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode finnhub quote: %w", err)
	}
	return body.Current, nil
}
