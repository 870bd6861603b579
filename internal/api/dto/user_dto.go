package dto

// UserRequest is the create/update payload for /user endpoints.
type UserRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
