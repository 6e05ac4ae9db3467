package dto

import (
	"time"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
)

// UserResponse is a user shaped for API output; the password hash is
// deliberately absent.
type UserResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToUserResponse shapes a domain user for API output.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ListUsersParams defines the user listing query parameters.
type ListUsersParams struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Search string `form:"search"`
	Role   string `form:"role"`
}

// Pagination describes a page of a larger listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// ListUsersData is the user listing payload.
type ListUsersData struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// UpdateUserRequest defines the fields a user update may change.
// Pointers distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
