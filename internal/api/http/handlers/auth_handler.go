package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
)

// AuthHandler exposes login and token renewal.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, logger: logger}
}

// Login handles POST /auth. Blocked users get a 200 with an embedded failure
// code; only an unknown user is an HTTP-level 404. Unexpected faults collapse
// into the generic -3 envelope.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AuthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(badGatewayEnvelope())
	}

	user, err := h.auth.Authenticate(c.UserContext(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(http.StatusNotFound).JSON(dto.FailureWith(
				-1, "User not found",
				dto.AuthResponse{Status: dto.AuthStatusNotFound}))
		}
		h.logger.Error("login failed", zap.Error(err))
		return c.JSON(badGatewayEnvelope())
	}

	if h.auth.IsBlocked(user) {
		return c.JSON(dto.FailureWith(
			-2, "User is blocked",
			dto.AuthResponse{Status: dto.AuthStatusBlocked}))
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		h.logger.Error("token issuance failed", zap.Error(err))
		return c.JSON(badGatewayEnvelope())
	}
	if err := h.auth.RecordIssuedToken(c.UserContext(), user, token); err != nil {
		h.logger.Error("token record failed", zap.Error(err))
		return c.JSON(badGatewayEnvelope())
	}

	return c.JSON(dto.Success(dto.AuthResponse{
		Token:  token,
		Status: dto.AuthStatusAuthorized,
	}))
}

// Renew handles GET /auth/renew-token behind the session guard. The guard
// already established a live session, so the cached token must resolve.
func (h *AuthHandler) Renew(c *fiber.Ctx) error {
	lastToken, ok := auth.SessionTokenFromContext(c)
	if !ok {
		return c.Status(http.StatusForbidden).JSON(dto.Failure(
			-802, "Unauthorized or expired token"))
	}

	newToken, err := h.auth.Renew(c.UserContext(), lastToken)
	if err != nil {
		if errors.Is(err, service.ErrUnknownToken) {
			return c.Status(http.StatusForbidden).JSON(dto.Failure(
				-802, "Unauthorized or expired token"))
		}
		h.logger.Error("token renewal failed", zap.Error(err))
		return c.JSON(badGatewayEnvelope())
	}

	return c.JSON(dto.Success(dto.AuthResponse{
		Token:  newToken,
		Status: dto.AuthStatusAuthorized,
	}))
}

func badGatewayEnvelope() dto.Response {
	return dto.Failure(-3, "Bad gateway - something bad happened contact support")
}
