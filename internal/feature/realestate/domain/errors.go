// Package domain defines domain-level errors for the realestate feature.
package domain

import "errors"

var (
	// ErrLawdCdRequired is returned when a search omits the 5-digit district code.
	ErrLawdCdRequired = errors.New("lawdCd는 필수입니다")
)
