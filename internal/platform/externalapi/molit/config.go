// Package molit is a client for the MOLIT (국토교통부) apartment trade price API on data.go.kr.
package molit

import (
	"os"
	"time"
)

const defaultBaseURL = "http://apis.data.go.kr/1613000/RTMSDataSvcAptTradeDev"

// Config holds configuration for the MOLIT trade API client.
type Config struct {
	ServiceKey string        // data.go.kr service key, raw or URL-encoded
	BaseURL    string        // e.g. "http://apis.data.go.kr/1613000/RTMSDataSvcAptTradeDev"
	NumOfRows  int           // page size; one page per month is enough for a district
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig reads MOLIT_API_KEY and MOLIT_BASE_URL.
func LoadConfig() Config {
	base := os.Getenv("MOLIT_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		ServiceKey: os.Getenv("MOLIT_API_KEY"),
		BaseURL:    base,
		NumOfRows:  999,
		Timeout:    10 * time.Second,
	}
}
