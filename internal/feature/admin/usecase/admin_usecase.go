// Package usecase implements admin login.
package usecase

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"moajim/internal/feature/admin/domain"
)

const (
	// EnvKeyPasswordHash names the variable holding the bcrypt hash of the admin password.
	EnvKeyPasswordHash = "ADMIN_PASSWORD_HASH"

	adminSubject = "admin"
	adminRole    = "admin"

	// dummyHash is compared against when no hash is configured.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// JWTGenerator signs admin tokens.
type JWTGenerator interface {
	GenerateToken(subject, role string) (string, error)
}

// adminUsecase authenticates the single admin account.
type adminUsecase struct {
	passwordHash string
	jwtGenerator JWTGenerator
}

// NewAdminUsecase creates an adminUsecase. With an empty passwordHash every login fails.
func NewAdminUsecase(passwordHash string, jwtGenerator JWTGenerator) *adminUsecase {
	return &adminUsecase{passwordHash: passwordHash, jwtGenerator: jwtGenerator}
}

// NewAdminUsecaseFromEnv reads ADMIN_PASSWORD_HASH.
func NewAdminUsecaseFromEnv(jwtGenerator JWTGenerator) *adminUsecase {
	return NewAdminUsecase(os.Getenv(EnvKeyPasswordHash), jwtGenerator)
}

// Login checks password and returns an admin JWT.
func (u *adminUsecase) Login(ctx context.Context, password string) (string, error) {
	hash := u.passwordHash
	if hash == "" {
		hash = dummyHash
	}
	// always run bcrypt so an unset hash takes as long as a wrong password
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if u.passwordHash == "" {
		return "", domain.ErrAdminDisabled
	}
	if compareErr != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(adminSubject, adminRole)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
