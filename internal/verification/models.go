package verification

import "time"

// Purpose distinguishes registration codes from password reset codes. Each
// email holds at most one pending code per purpose.
type Purpose string

const (
	PurposeRegistration Purpose = "registration"
	PurposeReset        Purpose = "reset"
)

type Code struct {
	Email     string
	Purpose   Purpose
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
}
