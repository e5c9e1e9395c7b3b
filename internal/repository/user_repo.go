package repository

import (
	"context"

	"points_ledger/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(name, ''), email, balance, created_at
		 FROM users
		 WHERE id = $1`,
		id,
	)

	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Balance, &u.CreatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(name, ''), email, balance, created_at
		 FROM users
		 WHERE email = $1`,
		email,
	)

	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Balance, &u.CreatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User, passwordHash string) error {
	// Accounts start at zero balance
	return r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, balance)
		 VALUES ($1, $2, $3, 0)
		 RETURNING id, balance, created_at`,
		u.Name, u.Email, passwordHash,
	).Scan(&u.ID, &u.Balance, &u.CreatedAt)
}
