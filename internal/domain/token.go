package domain

import "time"

// IssuedToken is the durable record of a bearer token handed out by a login
// or renewal. Immutable after creation; renewal inserts a new record instead
// of touching the old one.
type IssuedToken struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"userId"`
	Token       string    `json:"token"`
	CreatedTime time.Time `json:"createdTime"`
	ExpiryTime  time.Time `json:"expiryTime"`
}
