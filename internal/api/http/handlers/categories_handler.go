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

// CategoriesHandler exposes CRUD for product categories.
type CategoriesHandler struct {
	categories repository.CategoryRepository
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories repository.CategoryRepository) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List handles GET /product/category.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(categories))
}

// Get handles GET /product/category/:id.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}

	category, err := h.categories.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.Failure(
				-4, "No category found with provided ID"))
		}
		return apiError(c, err)
	}
	return c.JSON(dto.Success(category))
}

// Create handles POST /product/category/add.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, err)
	}

	category := &domain.ProductCategory{Description: req.Description}
	if err := h.categories.Create(c.UserContext(), category); err != nil {
		return apiError(c, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/product/category/%d", category.ID))
	return c.Status(http.StatusCreated).JSON(dto.Success(category))
}

// Update handles PUT/PATCH /product/category/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, err)
	}

	category, err := h.categories.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.Failure(
				-4, "No category found with provided ID"))
		}
		return apiError(c, err)
	}

	category.Description = req.Description
	if err := h.categories.Update(c.UserContext(), category); err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(category))
}

// Delete handles DELETE /product/category/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}
	if err := h.categories.Delete(c.UserContext(), int64(id)); err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(nil))
}
