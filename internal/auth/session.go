package auth

import (
	"context"

	"github.com/spec-kit/storefront-service/internal/domain"
)

const bearerPrefix = "Bearer "

// Authenticator answers whether a bearer token belongs to a live session.
// Implemented by service.AuthService; a non-nil error means the durable
// record store could not be consulted.
type Authenticator interface {
	IsAuthenticated(ctx context.Context, token string) (bool, error)
}

// SessionValidator turns request headers into a pass/fail session verdict.
// Every protected endpoint consumes the verdict before any entity logic runs.
type SessionValidator struct {
	auth Authenticator
}

// NewSessionValidator constructs a validator.
func NewSessionValidator(auth Authenticator) *SessionValidator {
	return &SessionValidator{auth: auth}
}

// Validate checks the Authorization header for a live bearer session. The
// returned error is reserved for record-store faults; all anticipated
// failures are encoded in the verdict.
func (v *SessionValidator) Validate(ctx context.Context, headers map[string][]string) (domain.SessionVerdict, error) {
	values := headers["Authorization"]
	if len(values) == 0 {
		return domain.SessionVerdict{
			ErrorCode: domain.CodeMissingHeader,
			Message:   "Missing Authorization header",
		}, nil
	}

	token, ok := stripBearerPrefix(values[0])
	if !ok {
		return domain.SessionVerdict{
			ErrorCode: domain.CodeInvalidBearer,
			Message:   "Invalid bearer received",
		}, nil
	}

	authenticated, err := v.auth.IsAuthenticated(ctx, token)
	if err != nil {
		return domain.SessionVerdict{}, err
	}
	if !authenticated {
		return domain.SessionVerdict{
			ErrorCode: domain.CodeInvalidSession,
			Message:   "Unauthorized or expired token",
		}, nil
	}

	return domain.SessionVerdict{
		Valid:     true,
		ErrorCode: domain.CodeSuccess,
		Message:   "Success",
		Payload:   token,
	}, nil
}

// stripBearerPrefix cuts the fixed "Bearer " scheme off the header value.
// Values shorter than the scheme are malformed; anything else is handed to
// the authenticator, which rejects garbage tokens as unauthenticated.
func stripBearerPrefix(raw string) (string, bool) {
	if len(raw) < len(bearerPrefix) {
		return "", false
	}
	return raw[len(bearerPrefix):], true
}
