package repositories

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
)

// UserFilter selects one of the fixed user listing query variants.
// Zero-value fields are not applied.
type UserFilter struct {
	Search string
	Role   domain.UserRole
	Limit  int
	Offset int
}

// UserRepository persists user accounts.
type UserRepository interface {
	// SaveUser inserts a new user and returns it with its assigned ID.
	SaveUser(ctx context.Context, user domain.User) (domain.User, error)

	// FindUserByID retrieves a user by primary key.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByUsername retrieves a user by unique username, including the
	// password hash for credential checks.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUsers retrieves a filtered page of users plus the total match count.
	FindUsers(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)

	// UpdateUser overwrites a user's mutable fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user row.
	DeleteUser(ctx context.Context, userID int64) error
}
