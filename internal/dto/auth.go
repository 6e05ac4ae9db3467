package dto

import "github.com/huamengwoke/finance_assistant_app/internal/core/domain"

// RegisterRequest carries a new account's credentials. Length rules
// (username >= 3, password >= 6) are checked in the service so the caller
// gets the exact message the API documents.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthData is the payload returned by register, login and auto-login.
type AuthData struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
	Token    string          `json:"token"`
}

// IdentityData is the payload returned by token verification.
type IdentityData struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}
