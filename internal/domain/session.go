package domain

// Session validation error codes surfaced in the response envelope.
const (
	CodeSuccess        = 0
	CodeMissingHeader  = -800
	CodeInvalidBearer  = -801
	CodeInvalidSession = -802
)

// SessionVerdict is the per-request outcome of validating a bearer session.
// Payload carries the raw token string on success and is empty otherwise.
type SessionVerdict struct {
	Valid     bool
	ErrorCode int
	Message   string
	Payload   string
}
