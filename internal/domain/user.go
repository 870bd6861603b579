package domain

import "time"

// User status sentinels. The data set carries raw integers; -2 is the only
// value with behavior attached (blocked users cannot authenticate). Users
// created through the CRUD surface start at -1.
const (
	UserStatusBlocked = -2
	UserStatusDefault = -1
)

// User is an account that can log in and be managed through /user endpoints.
type User struct {
	ID           int64     `json:"id"`
	UserName     string    `json:"userName"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	CreatedTime  time.Time `json:"createdTime"`
	Status       int       `json:"status"`
}

// IsBlocked reports whether the account is barred from authenticating.
func (u *User) IsBlocked() bool {
	return u.Status == UserStatusBlocked
}
