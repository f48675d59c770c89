// Package session holds the client-side record of a logged-in identity
// and the adapter that mirrors it to the snapshot store so a login
// survives process restarts.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Auth methods recorded on a session.
const (
	MethodEmail = "email"
	MethodPhone = "phone"
)

// Session represents a logged-in identity. At most one is live at a
// time; its presence is the sole gate for the protected commands.
type Session struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`  // email address or phone number
	AuthMethod string    `json:"auth_method"` // MethodEmail or MethodPhone
	Token      string    `json:"token,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// New constructs a Session for a just-completed login.
func New(identifier, method, token string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Identifier: identifier,
		AuthMethod: method,
		Token:      token,
		CreatedAt:  time.Now().UTC(),
	}
}
