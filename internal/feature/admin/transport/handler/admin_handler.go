// Package handler provides HTTP handlers for the admin feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"moajim/internal/api"
	"moajim/internal/feature/admin/domain"
	"moajim/internal/feature/admin/transport/http/dto"
)

// AdminUsecase is the login service consumed by the handler.
type AdminUsecase interface {
	Login(ctx context.Context, password string) (string, error)
}

// AdminHandler handles admin HTTP requests.
type AdminHandler struct {
	admin AdminUsecase
}

func NewAdminHandler(admin AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Login handles POST /api/admin/login.
// - 400 on a missing or malformed body
// - 503 when no admin hash is configured, 401 on a wrong password
// - 200 with a token on success
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("admin login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.MsgInvalidRequestBody})
		return
	}
	token, err := h.admin.Login(c.Request.Context(), req.Password)
	switch {
	case errors.Is(err, domain.ErrAdminDisabled):
		slog.Error("admin login attempted without ADMIN_PASSWORD_HASH", "remote_addr", c.ClientIP())
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, domain.ErrInvalidCredentials):
		slog.Warn("admin login failed", "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		slog.Error("admin login error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Info("admin login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
