package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shareit/shareit/internal/domain"
	"github.com/shareit/shareit/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, full_name, email, password_hash, phone, address, role, created_at
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Phone, &user.Address, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, full_name, email, password_hash, phone, address, role, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Phone, &user.Address, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (full_name, email, password_hash, phone, address, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, full_name, email, password_hash, phone, address, role, created_at
    `
	row := r.db.QueryRow(ctx, query, user.FullName, user.Email, user.PasswordHash, user.Phone, user.Address, user.Role)

	var created domain.User
	err := row.Scan(&created.ID, &created.FullName, &created.Email, &created.PasswordHash, &created.Phone, &created.Address, &created.Role, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}
