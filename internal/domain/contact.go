package domain

import "time"

// ContactMessage is a message left through the contact form.
//
// IsRead and Response belong to the stored document so that an inbox can
// update them later; nothing in the API mutates them today.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
	Response  *string   `json:"response"`
}

// ContactInput is the accepted payload for POST /api/contact.
type ContactInput struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,email,dotted_domain"`
	Subject string `json:"subject" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

// NewContactMessage builds an unread ContactMessage from validated input.
func NewContactMessage(in ContactInput, id string, at time.Time) *ContactMessage {
	return &ContactMessage{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Timestamp: at,
	}
}

// ContactReceipt is returned to the visitor after a successful submission.
type ContactReceipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
