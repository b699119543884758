package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SimplePrices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum,nope", r.URL.Query().Get("ids"))
		assert.Equal(t, "krw", r.URL.Query().Get("vs_currencies"))
		_, _ = w.Write([]byte(`{"bitcoin":{"krw":95000000},"ethereum":{"krw":4500000.5}}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL}, server.Client())
	got, err := c.SimplePrices(context.Background(), []string{"bitcoin", "ethereum", "nope"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"bitcoin": 95000000, "ethereum": 4500000.5}, got)
}

func TestClient_SimplePrices_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"status":{"error_code":429}}`},
		{name: "malformed", status: http.StatusOK, body: `[`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(Config{BaseURL: server.URL}, server.Client()).SimplePrices(context.Background(), []string{"bitcoin"})
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("COINGECKO_BASE_URL", "")
	assert.Equal(t, defaultBaseURL, LoadConfig().BaseURL)

	t.Setenv("COINGECKO_BASE_URL", "http://localhost:9999")
	assert.Equal(t, "http://localhost:9999", LoadConfig().BaseURL)
}
