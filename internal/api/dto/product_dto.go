package dto

import "github.com/spec-kit/storefront-service/internal/domain"

// ProductRequest is the create/update payload for /product endpoints.
// Category references an existing product category by id.
type ProductRequest struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand"`
	Category           int64   `json:"category"`
	Thumbnail          string  `json:"thumbnail"`
	Images             string  `json:"images"`
}

// ProductListResponse mirrors the paginated listing shape of the catalog.
type ProductListResponse struct {
	Products []*domain.Product `json:"products"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}

// CategoryRequest is the create/update payload for /product/category.
type CategoryRequest struct {
	Description string `json:"description"`
}
