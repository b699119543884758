// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"moajim/internal/platform/externalapi/coingecko"
	"moajim/internal/platform/externalapi/finnhub"
	"moajim/internal/platform/externalapi/molit"
	infrahttp "moajim/internal/platform/http"
	"moajim/internal/shared/ratelimiter"
)

// MOLIT development keys are throttled per second by data.go.kr.
const (
	molitCallsPerSecond = 10
)

// NewTradeClient creates a MOLIT trade client with its own HTTP client.
func NewTradeClient() *molit.TradeClient {
	cfg := molit.LoadConfig()
	return molit.NewTradeClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewMolitLimiter returns the limiter shared by every MOLIT month walk.
func NewMolitLimiter() *ratelimiter.RateLimiter {
	return ratelimiter.NewRateLimiter("molit", molitCallsPerSecond, time.Second)
}

// NewCoinGeckoClient creates a CoinGecko client.
func NewCoinGeckoClient() *coingecko.Client {
	cfg := coingecko.LoadConfig()
	return coingecko.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewFinnhubClient creates a Finnhub client and the limiter matching its plan.
func NewFinnhubClient() (*finnhub.Client, *ratelimiter.RateLimiter) {
	cfg := finnhub.LoadConfig()
	client := finnhub.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	return client, ratelimiter.NewRateLimiter("finnhub", cfg.PerMinute, time.Minute)
}
