package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
	"github.com/huamengwoke/finance_assistant_app/internal/utils"
)

const defaultUserPassword = "123456"

// defaultUsers are the built-in accounts created on first startup.
var defaultUsers = []struct {
	Username string
	Role     domain.UserRole
}{
	{Username: "admin", Role: domain.RoleResourceCoordinator},
	{Username: "user1", Role: domain.RoleTechManager},
	{Username: "user2", Role: domain.RoleConsultant},
}

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if len(username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters: %w", apperrors.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters: %w", apperrors.ErrValidation)
	}

	// Unknown roles fall back to the plain user role instead of failing.
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		role = domain.RoleUser
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "user registered", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, int64, error) {
	return s.userRepo.FindUsers(ctx, filter)
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if len(username) < 3 {
			return nil, fmt.Errorf("username must be at least 3 characters: %w", apperrors.ErrValidation)
		}
		user.Username = username
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, fmt.Errorf("password must be at least 6 characters: %w", apperrors.ErrValidation)
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid role %q: %w", *req.Role, apperrors.ErrValidation)
		}
		user.Role = role
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

// SeedDefaultUsers creates the built-in accounts. Hashing happens here
// rather than in migrations so the migration files stay free of binary
// artifacts.
func (s *userService) SeedDefaultUsers(ctx context.Context) error {
	for _, seed := range defaultUsers {
		_, err := s.userRepo.FindUserByUsername(ctx, seed.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check for default user %s: %w", seed.Username, err)
		}

		hash, err := utils.HashPassword(defaultUserPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		user, err := s.userRepo.SaveUser(ctx, domain.User{
			Username:     seed.Username,
			PasswordHash: hash,
			Role:         seed.Role,
		})
		if err != nil {
			// Another instance may have seeded concurrently.
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("failed to seed default user %s: %w", seed.Username, err)
		}
		s.LogInfo(ctx, "seeded default user", "user_id", user.ID, "username", user.Username, "role", user.Role)
	}
	return nil
}
