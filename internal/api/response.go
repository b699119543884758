// Package api holds the response bodies shared by every feature's HTTP handlers.
package api

// ErrorResponse is the body of every 4xx/5xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries a signed JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// MsgInvalidRequestBody is returned when a JSON body cannot be decoded.
const MsgInvalidRequestBody = "Invalid request body"
