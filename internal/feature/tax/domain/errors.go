// Package domain defines domain-level errors for the tax calculators.
package domain

import "errors"

var (
	// ErrUnknownRelationship is returned for a donor relationship outside the deduction table.
	ErrUnknownRelationship = errors.New("unknown relationship")
	// ErrNegativeAmount is returned when an amount, count or age is below zero.
	ErrNegativeAmount = errors.New("amounts must not be negative")
)
