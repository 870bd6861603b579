package domain

import "time"

// Client is a customer record managed through the /client endpoints.
type Client struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	EmailAddr   string    `json:"emailAddress"`
	DocumentID  string    `json:"documentId"`
	CreatedDate time.Time `json:"createdDate"`
	Status      int       `json:"status"`
}
