package finnhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Quote(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "secret", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"c":189.84,"d":1.2,"dp":0.64,"h":190,"l":187.5,"o":188,"pc":188.64,"t":1718400000}`))
	}))
	defer server.Close()

	c := NewClient(Config{APIKey: "secret", BaseURL: server.URL}, server.Client())
	got, err := c.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 189.84, got)
}

func TestClient_Quote_Errors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer server.Close()

	_, err := NewClient(Config{APIKey: "bad", BaseURL: server.URL}, server.Client()).Quote(context.Background(), "AAPL")
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: server.URL}, server.Client()).Quote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FINNHUB_API_KEY", "k")
	t.Setenv("FINNHUB_BASE_URL", "")

	cfg := LoadConfig()
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 60, cfg.PerMinute)
}
