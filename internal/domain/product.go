package domain

// ProductCategory groups products.
type ProductCategory struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// Product is a catalog entry managed through the /product endpoints.
type Product struct {
	ID                 int64            `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Price              float64          `json:"price"`
	DiscountPercentage float64          `json:"discountPercentage"`
	Rating             float64          `json:"rating"`
	Stock              int              `json:"stock"`
	Brand              string           `json:"brand"`
	Category           *ProductCategory `json:"category,omitempty"`
	Thumbnail          string           `json:"thumbnail"`
	Images             string           `json:"images"`
}
