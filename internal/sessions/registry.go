package sessions

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Registry issues and resolves session tokens. The token is an HS256 JWT
// carrying the user id, but the stored mapping is authoritative: Lookup only
// answers for tokens the registry itself issued. Sessions are never revoked.
type Registry struct {
	storage Storage
	secret  []byte
}

func NewRegistry(storage Storage, secret []byte) *Registry {
	return &Registry{storage: storage, secret: secret}
}

// Create signs a fresh token for the user and records the session.
func (r *Registry) Create(userID uuid.UUID, name, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"iat":     time.Now().Unix(),
		"jti":     uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return "", err
	}

	err = r.storage.CreateSession(&Session{
		Token:  token,
		UserID: userID,
		Name:   name,
		Email:  email,
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a token to its session, or nil when unknown. An unknown
// token is not an error; the request simply stays anonymous.
func (r *Registry) Lookup(token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}
	return r.storage.GetSessionByToken(token)
}
