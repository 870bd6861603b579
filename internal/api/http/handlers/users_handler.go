package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// UsersHandler exposes CRUD for user accounts. Every route sits behind the
// session guard; only request shaping and repository calls live here.
type UsersHandler struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository, bcryptCost int) *UsersHandler {
	return &UsersHandler{users: users, bcryptCost: bcryptCost}
}

// List handles GET /user.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(users))
}

// Get handles GET /user/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}

	user, err := h.users.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.FailureWith(
				-404, "Failure", fmt.Sprintf("User not found with provided ID: %d", id)))
		}
		return apiError(c, err)
	}
	return c.JSON(dto.Success(user))
}

// Create handles POST /user/add. New accounts start at the default status;
// the incoming password is hashed before it touches the store.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, err)
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		return apiError(c, err)
	}

	user := &domain.User{
		UserName:     req.UserName,
		PasswordHash: hash,
		Email:        req.Email,
		CreatedTime:  time.Now(),
		Status:       domain.UserStatusDefault,
	}
	if err := h.users.Create(c.UserContext(), user); err != nil {
		return apiError(c, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/user/%d", user.ID))
	return c.Status(http.StatusCreated).JSON(dto.Success(user))
}

// Update handles PUT/PATCH /user/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}

	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, err)
	}

	user, err := h.users.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.Failure(
				-4, "No user found with provided ID"))
		}
		return apiError(c, err)
	}

	user.UserName = req.UserName
	user.Email = req.Email
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password, h.bcryptCost)
		if err != nil {
			return apiError(c, err)
		}
		user.PasswordHash = hash
	}
	if err := h.users.Update(c.UserContext(), user); err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(user))
}

// Delete handles DELETE /user/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}
	if err := h.users.Delete(c.UserContext(), int64(id)); err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(nil))
}

// apiError is the catch-all mapping for unanticipated repository faults on
// the CRUD surface.
func apiError(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusInternalServerError).JSON(dto.Failure(
		-900, "API ERROR - "+err.Error()))
}
