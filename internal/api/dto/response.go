package dto

// Response is the uniform envelope every endpoint serializes. A zero
// errorCode means success; negative codes carry the failure taxonomy.
type Response struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// Success wraps a payload in the success envelope.
func Success(data any) Response {
	return Response{ErrorCode: 0, Message: "Success", Data: data}
}

// Failure builds a failure envelope without a payload.
func Failure(code int, message string) Response {
	return Response{ErrorCode: code, Message: message}
}

// FailureWith builds a failure envelope carrying a payload, used where the
// wire contract puts detail strings or status-bearing bodies in data.
func FailureWith(code int, message string, data any) Response {
	return Response{ErrorCode: code, Message: message, Data: data}
}
