// Package http provides the outbound HTTP client shared by the external API adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for calling public data APIs.
//
// http.DefaultClient has no timeout, so every adapter gets its own client with an
// overall request timeout and a transport with bounded dial/TLS/header waits.
// data.go.kr answers slowly under load, hence the generous ResponseHeaderTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
