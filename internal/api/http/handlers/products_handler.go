package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// ProductsHandler exposes CRUD for catalog products.
type ProductsHandler struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products repository.ProductRepository, categories repository.CategoryRepository) *ProductsHandler {
	return &ProductsHandler{products: products, categories: categories}
}

// List handles GET /product.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.UserContext())
	if err != nil {
		return productError(c, err)
	}

	limit := 0
	if len(products) > 0 {
		limit = len(products) / 2
	}
	return c.JSON(dto.Success(dto.ProductListResponse{
		Products: products,
		Total:    len(products),
		Skip:     0,
		Limit:    limit,
	}))
}

// Get handles GET /product/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return productError(c, err)
	}

	product, err := h.products.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.Failure(
				-2, "Nothing found with provided ID"))
		}
		return productError(c, err)
	}
	return c.JSON(dto.Success(product))
}

// Create handles POST /product/add. The referenced category must exist.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return productError(c, err)
	}

	category, err := h.categories.GetByID(c.UserContext(), req.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(dto.Failure(-1, "Invalid Category provided"))
		}
		return productError(c, err)
	}

	product := productFromRequest(&req, category)
	if err := h.products.Create(c.UserContext(), product); err != nil {
		return productError(c, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/product/%d", product.ID))
	return c.Status(http.StatusCreated).JSON(dto.Success(product))
}

// Update handles PUT/PATCH /product/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return productError(c, err)
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return productError(c, err)
	}

	if _, err := h.products.GetByID(c.UserContext(), int64(id)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.Failure(
				-2, "Nothing found with provided ID"))
		}
		return productError(c, err)
	}

	category, err := h.categories.GetByID(c.UserContext(), req.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(dto.Failure(-1, "Invalid Category provided"))
		}
		return productError(c, err)
	}

	product := productFromRequest(&req, category)
	product.ID = int64(id)
	if err := h.products.Update(c.UserContext(), product); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(dto.Failure(
			-999, "Something wrong happened - "+err.Error()))
	}
	return c.JSON(dto.Success(product))
}

// Delete handles DELETE /product/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return productError(c, err)
	}

	if _, err := h.products.GetByID(c.UserContext(), int64(id)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.Failure(
				-2, "Nothing found with provided ID"))
		}
		return productError(c, err)
	}
	if err := h.products.Delete(c.UserContext(), int64(id)); err != nil {
		return productError(c, err)
	}
	return c.SendString("Successful deleted!")
}

func productFromRequest(req *dto.ProductRequest, category *domain.ProductCategory) *domain.Product {
	return &domain.Product{
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Rating:             req.Rating,
		Stock:              req.Stock,
		Brand:              req.Brand,
		Category:           category,
		Thumbnail:          req.Thumbnail,
		Images:             req.Images,
	}
}

func productError(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusInternalServerError).JSON(dto.Failure(
		-999, err.Error()))
}
