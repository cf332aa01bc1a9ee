// Package repository holds the pgx-backed persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/examgenius/exam-platform/internal/auth"
)

// UserRepository persists user accounts in Postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ auth.UserStore = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, rec auth.UserRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (user_id, email, password_hash, display_name, user_type, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID.String(), rec.Email, rec.PasswordHash, rec.DisplayName, rec.UserType, rec.Metadata,
	)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.UserRecord, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT user_id::text, email, password_hash, display_name, user_type, metadata
		FROM users WHERE email = $1`, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.UserRecord, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT user_id::text, email, password_hash, display_name, user_type, metadata
		FROM users WHERE user_id = $1`, id.String()))
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE user_id = $1`, id.String())
	return err
}

func (r *UserRepository) scanOne(row pgx.Row) (auth.UserRecord, error) {
	var (
		rec auth.UserRecord
		id  string
	)
	err := row.Scan(&id, &rec.Email, &rec.PasswordHash, &rec.DisplayName, &rec.UserType, &rec.Metadata)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.UserRecord{}, auth.ErrUserNotFound
		}
		return auth.UserRecord{}, err
	}
	rec.ID, err = uuid.Parse(id)
	if err != nil {
		return auth.UserRecord{}, err
	}
	return rec, nil
}
