package services

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// UserSvcFacade covers account management and credential checks.
type UserSvcFacade interface {
	// Register creates an account from registration input, enforcing the
	// username/password rules and role whitelist.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies a username/password pair.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// ListUsers retrieves a filtered page of users plus the total count.
	ListUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, int64, error)

	// UpdateUser applies a partial update to a user.
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID int64) error

	// SeedDefaultUsers creates the built-in accounts when missing.
	SeedDefaultUsers(ctx context.Context) error
}
