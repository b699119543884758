package dto

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
