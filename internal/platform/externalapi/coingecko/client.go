// Package coingecko is a client for the CoinGecko public price API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// Config holds configuration for the CoinGecko client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig reads COINGECKO_BASE_URL.
func LoadConfig() Config {
	base := os.Getenv("COINGECKO_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{BaseURL: base, Timeout: 10 * time.Second}
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// SimplePrices returns KRW prices keyed by coin id. Ids CoinGecko does not
// know are absent from the result.
func (c *Client) SimplePrices(ctx context.Context, ids []string) (map[string]float64, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "krw")
	u := fmt.Sprintf("%s/simple/price?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("coingecko http %d", res.StatusCode)
	}

	var body map[string]map[string]float64
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode coingecko response: %w", err)
	}

	out := make(map[string]float64, len(body))
	for id, quotes := range body {
		if krw, ok := quotes["krw"]; ok {
			out[id] = krw
		}
	}
	return out, nil
}
