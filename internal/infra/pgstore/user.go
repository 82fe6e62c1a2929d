package pgstore

import (
	"context"
	"time"

	"shopcompare/internal/domain/user"
	"shopcompare/internal/infra"
	"shopcompare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, theme, created_at, updated_at`

type UserStore struct {
	db DBTX
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("user not found")
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("user not found")
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (s *UserStore) Insert(ctx context.Context, u *user.User) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Name().Value(), u.Email().Value(), u.PasswordHash(),
		u.Preferences().Theme.String(), u.CreatedAt(), u.UpdatedAt())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (s *UserStore) Update(ctx context.Context, u *user.User) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE users SET name = $2, theme = $3, password_hash = $4, updated_at = $5 WHERE id = $1`,
		u.ID(), u.Name().Value(), u.Preferences().Theme.String(), u.PasswordHash(), u.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                       uuid.UUID
		name, email, hash, theme string
		createdAt, updatedAt     time.Time
	)
	if err := row.Scan(&id, &name, &email, &hash, &theme, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return user.Reconstruct(id, name, email, hash,
		user.Preferences{Theme: user.Theme(theme)}, createdAt.UTC(), updatedAt.UTC()), nil
}
