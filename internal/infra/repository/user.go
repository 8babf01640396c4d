package repository

import (
	"context"
	"strings"
	"time"

	"linenhire/internal/domain/user"
	"linenhire/internal/infra"
	"linenhire/internal/pkg/pgconv"
	"linenhire/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) commands.UserRepository {
	return &UserRepository{db: db}
}

const selectUserByEmailSQL = `
SELECT id, email, password_hash, role, last_login, is_active, created_at, updated_at
FROM admin_users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var (
		id           uuid.UUID
		storedEmail  string
		passwordHash string
		role         string
		lastLogin    pgtype.Timestamptz
		isActive     bool
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, selectUserByEmailSQL, strings.ToLower(strings.TrimSpace(email))).Scan(
		&id, &storedEmail, &passwordHash, &role, &lastLogin, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	emailVO, err := user.NewEmail(storedEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has invalid email", err)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has invalid role", err)
	}

	return user.ReconstructUser(
		id,
		emailVO,
		passwordHash,
		roleVO,
		pgconv.TimePtrFromPgtype(lastLogin),
		isActive,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE admin_users SET last_login = $2, updated_at = now() WHERE id = $1`,
		id, pgconv.TimeToPgtype(at),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
