// Package domain defines domain-level errors for the admin feature.
package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed admin login.
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrAdminDisabled is returned when no ADMIN_PASSWORD_HASH is configured.
	ErrAdminDisabled = errors.New("admin login is not configured")
)
