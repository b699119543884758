// Package domain defines domain-level errors for the portfolio feature.
package domain

import "errors"

var (
	// ErrInvestorNotFound is returned when investorId names no profile.
	ErrInvestorNotFound = errors.New("Invalid investor ID")
	// ErrNegativeAsset is returned when an asset bucket is below zero.
	ErrNegativeAsset = errors.New("assets must not be negative")
)
