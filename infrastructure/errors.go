package infrastructure

import "errors"

var (
	ErrInvalidInput      = errors.New("all fields are required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrWeakPassword      = errors.New("password is not strong enough")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrNotVerified       = errors.New("email is not verified")
	ErrInvalidPassword   = errors.New("invalid password")

	ErrNoPendingCode = errors.New("no pending verification code")
	ErrCodeMismatch  = errors.New("verification code does not match")
	ErrCodeExpired   = errors.New("verification code has expired")

	ErrEmailNotConfigured = errors.New("email delivery is not configured")
	ErrInternalServer     = errors.New("server error")
)

// ClientFault reports whether err should surface as a 400 rather than a 500.
func ClientFault(err error) bool {
	for _, e := range []error{
		ErrInvalidInput, ErrInvalidEmail, ErrWeakPassword,
		ErrUserAlreadyExists, ErrUserNotFound, ErrNotVerified,
		ErrInvalidPassword, ErrNoPendingCode, ErrCodeMismatch, ErrCodeExpired,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
