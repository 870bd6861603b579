package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// CategoryRepository defines persistence access for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.ProductCategory) error
	Update(ctx context.Context, category *domain.ProductCategory) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.ProductCategory, error)
	List(ctx context.Context) ([]*domain.ProductCategory, error)
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed implementation.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.ProductCategory) error {
	const query = `
        INSERT INTO product_categories (description)
        VALUES ($1)
        RETURNING id`

	return r.pool.QueryRow(ctx, query, category.Description).Scan(&category.ID)
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.ProductCategory) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE product_categories SET description=$1 WHERE id=$2`,
		category.Description, category.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM product_categories WHERE id=$1`, id)
	return err
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.ProductCategory, error) {
	var category domain.ProductCategory
	if err := r.pool.QueryRow(ctx,
		`SELECT id, description FROM product_categories WHERE id=$1`, id).Scan(
		&category.ID,
		&category.Description,
	); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.ProductCategory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, description FROM product_categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.ProductCategory
	for rows.Next() {
		var category domain.ProductCategory
		if err := rows.Scan(&category.ID, &category.Description); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}
