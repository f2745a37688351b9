package model

import "time"

// Session is the authenticated state reported to clients: who is signed in
// and until when. It is derived from token claims, not stored server-side.
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}
