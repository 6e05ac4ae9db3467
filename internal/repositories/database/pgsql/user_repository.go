package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (domain.User, error) {
	query := `
        INSERT INTO users (username, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at;
    `
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("username %q already taken: %w", user.Username, apperrors.ErrDuplicate)
		}
		return domain.User{}, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1;
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM users
		WHERE username = $1;
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, int64, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	// Fixed query variants keep the filtering in SQL without string-built
	// WHERE clauses.
	search := "%" + filter.Search + "%"

	var (
		total int64
		rows  pgx.Rows
		err   error
	)
	switch {
	case filter.Search != "" && filter.Role != "":
		countQuery := `SELECT COUNT(*) FROM users WHERE username ILIKE $1 AND role = $2;`
		if err = r.db.QueryRow(ctx, countQuery, search, filter.Role).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count users: %w", err)
		}
		query := `
			SELECT id, username, password_hash, role, created_at, updated_at
			FROM users
			WHERE username ILIKE $1 AND role = $2
			ORDER BY created_at DESC
			LIMIT $3 OFFSET $4;
		`
		rows, err = r.db.Query(ctx, query, search, filter.Role, limit, offset)
	case filter.Search != "":
		countQuery := `SELECT COUNT(*) FROM users WHERE username ILIKE $1;`
		if err = r.db.QueryRow(ctx, countQuery, search).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count users: %w", err)
		}
		query := `
			SELECT id, username, password_hash, role, created_at, updated_at
			FROM users
			WHERE username ILIKE $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3;
		`
		rows, err = r.db.Query(ctx, query, search, limit, offset)
	case filter.Role != "":
		countQuery := `SELECT COUNT(*) FROM users WHERE role = $1;`
		if err = r.db.QueryRow(ctx, countQuery, filter.Role).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count users: %w", err)
		}
		query := `
			SELECT id, username, password_hash, role, created_at, updated_at
			FROM users
			WHERE role = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3;
		`
		rows, err = r.db.Query(ctx, query, filter.Role, limit, offset)
	default:
		countQuery := `SELECT COUNT(*) FROM users;`
		if err = r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count users: %w", err)
		}
		query := `
			SELECT id, username, password_hash, role, created_at, updated_at
			FROM users
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2;
		`
		rows, err = r.db.Query(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return users, total, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET username = $1, password_hash = $2, role = $3, updated_at = NOW()
        WHERE id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %q already taken: %w", user.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM users WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
