package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// TokenRepository is the durable record store for issued bearer tokens.
// Records are insert-only; renewal writes a fresh row and the superseded one
// simply ages out past its expiry.
type TokenRepository interface {
	Create(ctx context.Context, token *domain.IssuedToken) error
	GetByToken(ctx context.Context, tokenStr string) (*domain.IssuedToken, error)
}

type tokenRepository struct {
	pool *pgxpool.Pool
}

// NewTokenRepository returns a Postgres-backed implementation.
func NewTokenRepository(pool *pgxpool.Pool) TokenRepository {
	return &tokenRepository{pool: pool}
}

func (r *tokenRepository) Create(ctx context.Context, token *domain.IssuedToken) error {
	const query = `
        INSERT INTO authorization_tokens (id, user_id, token, created_time, expiry_time)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.CreatedTime,
		token.ExpiryTime,
	)
	return err
}

func (r *tokenRepository) GetByToken(ctx context.Context, tokenStr string) (*domain.IssuedToken, error) {
	const query = `
        SELECT id, user_id, token, created_time, expiry_time
        FROM authorization_tokens WHERE token=$1`

	var token domain.IssuedToken
	if err := r.pool.QueryRow(ctx, query, tokenStr).Scan(
		&token.ID,
		&token.UserID,
		&token.Token,
		&token.CreatedTime,
		&token.ExpiryTime,
	); err != nil {
		return nil, err
	}
	return &token, nil
}
