package dto

// Login outcome statuses surfaced in AuthResponse.
const (
	AuthStatusAuthorized = "AUTHORIZED"
	AuthStatusBlocked    = "BLOCKED"
	AuthStatusNotFound   = "NOT_FOUND"
)

// AuthRequest is the login payload.
type AuthRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token (when any) and the login status.
type AuthResponse struct {
	Token  string `json:"token,omitempty"`
	Status string `json:"status"`
}
