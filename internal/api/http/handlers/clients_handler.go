package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// ClientsHandler exposes CRUD for client records.
type ClientsHandler struct {
	clients repository.ClientRepository
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clients repository.ClientRepository) *ClientsHandler {
	return &ClientsHandler{clients: clients}
}

// List handles GET /client.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	clients, err := h.clients.List(c.UserContext())
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(clients))
}

// Get handles GET /client/:id.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}

	client, err := h.clients.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.FailureWith(
				-404, "Failure", fmt.Sprintf("Client not found with provided ID: %d", id)))
		}
		return apiError(c, err)
	}
	return c.JSON(dto.Success(client))
}

// Create handles POST /client/add. New clients always start at the default
// status regardless of the request payload.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, err)
	}

	client := &domain.Client{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		EmailAddr:   req.EmailAddr,
		DocumentID:  req.DocumentID,
		CreatedDate: time.Now(),
		Status:      -1,
	}
	if err := h.clients.Create(c.UserContext(), client); err != nil {
		return apiError(c, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/client/%d", client.ID))
	return c.Status(http.StatusCreated).JSON(dto.Success(client))
}

// Update handles PUT/PATCH /client/:id.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}

	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, err)
	}

	client, err := h.clients.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).JSON(dto.Failure(
				-4, "No user found with provided ID"))
		}
		return apiError(c, err)
	}

	client.Name = req.Name
	client.PhoneNumber = req.PhoneNumber
	client.EmailAddr = req.EmailAddr
	client.DocumentID = req.DocumentID
	client.Status = req.Status
	if err := h.clients.Update(c.UserContext(), client); err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(client))
}

// Delete handles DELETE /client/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apiError(c, err)
	}
	if err := h.clients.Delete(c.UserContext(), int64(id)); err != nil {
		return apiError(c, err)
	}
	return c.JSON(dto.Success(nil))
}
