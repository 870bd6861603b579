package dto

// ClientRequest is the create/update payload for /client endpoints.
type ClientRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	EmailAddr   string `json:"emailAddress"`
	DocumentID  string `json:"documentId"`
	Status      int    `json:"status"`
}
