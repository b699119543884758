// Package domain defines domain-level errors for the prices feature.
package domain

import "errors"

// ErrTooManySymbols is returned when a request asks for more symbols than one call may quote.
var ErrTooManySymbols = errors.New("too many symbols requested")
