package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

const sessionTokenKey = "session_token"

// SessionGuard rejects requests without a live bearer session. Failed
// verdicts short-circuit with 403 and the verdict envelope; valid sessions
// stash the raw token for handlers that need it (renewal).
func SessionGuard(validator *SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		verdict, err := validator.Validate(c.UserContext(), c.GetReqHeaders())
		if err != nil {
			return apperrors.MapError(err)
		}
		if !verdict.Valid {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"errorCode": verdict.ErrorCode,
				"message":   verdict.Message,
			})
		}
		c.Locals(sessionTokenKey, verdict.Payload)
		return c.Next()
	}
}

// SessionTokenFromContext retrieves the validated bearer token.
func SessionTokenFromContext(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals(sessionTokenKey).(string)
	return token, ok && token != ""
}
