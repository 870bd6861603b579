package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ProductRepository defines persistence access for catalog products. Reads
// join the category row so handlers get a fully populated product.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `
        p.id, p.title, p.description, p.price, p.discount_percentage, p.rating,
        p.stock, p.brand, p.thumbnail, p.images, c.id, c.description`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (title, description, price, discount_percentage, rating,
                              stock, brand, category_id, thumbnail, images)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id`

	var categoryID *int64
	if product.Category != nil {
		categoryID = &product.Category.ID
	}

	return r.pool.QueryRow(ctx, query,
		product.Title,
		product.Description,
		product.Price,
		product.DiscountPercentage,
		product.Rating,
		product.Stock,
		product.Brand,
		categoryID,
		product.Thumbnail,
		product.Images,
	).Scan(&product.ID)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET title=$1, description=$2, price=$3, discount_percentage=$4,
                            rating=$5, stock=$6, brand=$7, category_id=$8, thumbnail=$9, images=$10
        WHERE id=$11`

	var categoryID *int64
	if product.Category != nil {
		categoryID = &product.Category.ID
	}

	cmd, err := r.pool.Exec(ctx, query,
		product.Title,
		product.Description,
		product.Price,
		product.DiscountPercentage,
		product.Rating,
		product.Stock,
		product.Brand,
		categoryID,
		product.Thumbnail,
		product.Images,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const query = `
        SELECT` + productColumns + `
        FROM products p
        LEFT JOIN product_categories c ON c.id = p.category_id
        WHERE p.id=$1`

	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	const query = `
        SELECT` + productColumns + `
        FROM products p
        LEFT JOIN product_categories c ON c.id = p.category_id
        ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		product      domain.Product
		categoryID   *int64
		categoryDesc *string
	)
	if err := row.Scan(
		&product.ID,
		&product.Title,
		&product.Description,
		&product.Price,
		&product.DiscountPercentage,
		&product.Rating,
		&product.Stock,
		&product.Brand,
		&product.Thumbnail,
		&product.Images,
		&categoryID,
		&categoryDesc,
	); err != nil {
		return nil, err
	}
	if categoryID != nil {
		product.Category = &domain.ProductCategory{ID: *categoryID}
		if categoryDesc != nil {
			product.Category.Description = *categoryDesc
		}
	}
	return &product, nil
}
