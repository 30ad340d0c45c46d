package sessions

import "github.com/google/uuid"

// Session maps an opaque token to a logged-in user's public profile. Sessions
// are advisory: middleware attaches them when present, nothing enforces one.
type Session struct {
	Token  string    `json:"-"`
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}
