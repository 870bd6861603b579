package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ClientRepository defines persistence access for client records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (name, phone_number, email_address, document_id, created_date, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		client.Name,
		client.PhoneNumber,
		client.EmailAddr,
		client.DocumentID,
		client.CreatedDate,
		client.Status,
	).Scan(&client.ID)
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	const query = `
        UPDATE clients SET name=$1, phone_number=$2, email_address=$3, document_id=$4, status=$5
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		client.Name,
		client.PhoneNumber,
		client.EmailAddr,
		client.DocumentID,
		client.Status,
		client.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	return err
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	const query = `
        SELECT id, name, phone_number, email_address, document_id, created_date, status
        FROM clients WHERE id=$1`

	var client domain.Client
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.PhoneNumber,
		&client.EmailAddr,
		&client.DocumentID,
		&client.CreatedDate,
		&client.Status,
	); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	const query = `
        SELECT id, name, phone_number, email_address, document_id, created_date, status
        FROM clients ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.PhoneNumber,
			&client.EmailAddr,
			&client.DocumentID,
			&client.CreatedDate,
			&client.Status,
		); err != nil {
			return nil, err
		}
		clients = append(clients, &client)
	}
	return clients, rows.Err()
}
