// Package domain defines domain-level errors for the regions feature.
package domain

import "errors"

// Validation errors for the cascading lookup. Handlers map them to 400.
var (
	ErrCityRequired   = errors.New("city는 필수입니다")
	ErrLawdCdRequired = errors.New("lawdCd는 필수입니다")
	ErrInvalidLawdCd  = errors.New("lawdCd는 5자리 숫자여야 합니다")
	ErrDongRequired   = errors.New("dong은 필수입니다")
	ErrAptRequired    = errors.New("apt는 필수입니다")
)
