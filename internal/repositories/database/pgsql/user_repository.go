package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/models"
	"github.com/bizgrid/erp_backend/internal/utils/mapping"
	"github.com/bizgrid/erp_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, name, email, password_hash, role, auth_provider, provider_user_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveUser inserts a new user row. A duplicate username maps to ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Username, m.Name, m.Email, m.PasswordHash, m.Role,
		m.AuthProvider, m.ProviderUserID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert user "+m.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a single user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return r.findUser(ctx, query, userID)
}

// FindUserByUsername retrieves a single user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	return r.findUser(ctx, query, username)
}

// FindUserByEmail retrieves a single user by email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return r.findUser(ctx, query, email)
}

func (r *PgxUserRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	m, err := scanUser(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query user", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// ListUsers retrieves users, newest first, using keyset pagination.
func (r *PgxUserRepository) ListUsers(ctx context.Context, limit int, nextToken *string) ([]domain.User, *string, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}
	argIdx := 1

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` AND (created_at, user_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, id)
		argIdx += 2
	}
	query += ` ORDER BY created_at DESC, user_id DESC LIMIT $` + strconv.Itoa(argIdx) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		users = append(users, mapping.ToDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}

	var newNextToken *string
	if len(users) > limit {
		users = users[:limit]
		last := users[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.UserID)
		newNextToken = &token
	}
	return users, newNextToken, nil
}

// UpdateUser updates an existing user row.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET username = $2, name = $3, email = $4, password_hash = $5, role = $6,
			auth_provider = $7, provider_user_id = $8, is_active = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Username, m.Name, m.Email, m.PasswordHash, m.Role,
		m.AuthProvider, m.ProviderUserID, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update user "+m.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateUser marks a user inactive, which blocks future logins.
func (r *PgxUserRepository) DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE users
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, now, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate user "+userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
