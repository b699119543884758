package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"moajim/internal/feature/admin/domain"
	"moajim/internal/feature/admin/transport/handler"
)

// mockAdminUsecase is a mock implementation of handler.AdminUsecase.
type mockAdminUsecase struct {
	LoginFunc func(ctx context.Context, password string) (string, error)
}

func (m *mockAdminUsecase) Login(ctx context.Context, password string) (string, error) {
	return m.LoginFunc(ctx, password)
}

func TestAdminHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		loginFunc      func(ctx context.Context, password string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"password":"pw"}`,
			loginFunc: func(ctx context.Context, password string) (string, error) {
				return "tok", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"tok"}`,
		},
		{
			name:           "missing password",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:           "malformed json",
			body:           `{"password":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name: "wrong password",
			body: `{"password":"bad"}`,
			loginFunc: func(ctx context.Context, password string) (string, error) {
				return "", domain.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid password"}`,
		},
		{
			name: "not configured",
			body: `{"password":"pw"}`,
			loginFunc: func(ctx context.Context, password string) (string, error) {
				return "", domain.ErrAdminDisabled
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"admin login is not configured"}`,
		},
		{
			name: "generator failure",
			body: `{"password":"pw"}`,
			loginFunc: func(ctx context.Context, password string) (string, error) {
				return "", errors.New("failed to generate token")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to generate token"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewAdminHandler(&mockAdminUsecase{LoginFunc: tt.loginFunc})
			router := gin.New()
			router.POST("/api/admin/login", h.Login)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
