package repository

import (
	"context"
	"errors"
	"time"

	"tastebuds/internal/domain/user"
	"tastebuds/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password_hash, role, first_name, last_name, phone, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                   uuid.UUID
		rawEmail             string
		hash                 string
		rawRole              string
		first, last, phone   string
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &rawEmail, &hash, &rawRole, &first, &last, &phone, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(rawRole)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(first, last)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(id, email, hash, role, name, phone, isActive, createdAt, updatedAt), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const q = `
		INSERT INTO users (id, email, password_hash, role, first_name, last_name, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, q,
		u.ID(), u.Email().String(), u.PasswordHash(), u.Role().String(),
		u.Name().First(), u.Name().Last(), u.Phone(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	const q = `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, u.ID(), u.Name().First(), u.Name().Last(), u.Phone())
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
