package domain

import "time"

// StatusCheck records a client ping. It is created once and never mutated.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckInput is the accepted payload for POST /api/status.
type StatusCheckInput struct {
	ClientName string `json:"client_name" validate:"notblank"`
}

// NewStatusCheck builds a StatusCheck from validated input.
// The caller supplies the identifier and creation instant.
func NewStatusCheck(in StatusCheckInput, id string, at time.Time) *StatusCheck {
	return &StatusCheck{
		ID:         id,
		ClientName: in.ClientName,
		Timestamp:  at,
	}
}
