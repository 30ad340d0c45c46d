package verification

import (
	"database/sql"
	"strings"
	"sync"
	"time"
)

type Saver interface {
	StoreCode(code *Code) error
}

type Provider interface {
	GetCode(email string, purpose Purpose) (*Code, error)
}

type Deleter interface {
	DeleteCode(email string, purpose Purpose) error
	DeleteExpired(now time.Time) error
}

type Storage interface {
	Saver
	Provider
	Deleter
}

type MemoryStorage struct {
	mu    sync.Mutex
	codes map[string]*Code
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{codes: make(map[string]*Code)}
}

func key(email string, purpose Purpose) string {
	return strings.ToLower(email) + "|" + string(purpose)
}

func (s *MemoryStorage) StoreCode(code *Code) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[key(code.Email, code.Purpose)] = code
	return nil
}

func (s *MemoryStorage) GetCode(email string, purpose Purpose) (*Code, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[key(email, purpose)]
	if !ok {
		return nil, nil
	}
	return code, nil
}

func (s *MemoryStorage) DeleteCode(email string, purpose Purpose) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, key(email, purpose))
	return nil
}

func (s *MemoryStorage) DeleteExpired(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, code := range s.codes {
		if now.After(code.ExpiresAt) {
			delete(s.codes, k)
		}
	}
	return nil
}

type PostgresStorage struct {
	db *sql.DB
}

func NewVerificationPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) StoreCode(code *Code) error {
	_, err := s.db.Exec(`
		INSERT INTO verification_codes (email, purpose, code, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email, purpose) DO UPDATE SET
		code = EXCLUDED.code,
		created_at = EXCLUDED.created_at,
		expires_at = EXCLUDED.expires_at`,
		strings.ToLower(code.Email), code.Purpose, code.Code, code.CreatedAt, code.ExpiresAt)
	return err
}

func (s *PostgresStorage) GetCode(email string, purpose Purpose) (*Code, error) {
	code := &Code{}
	err := s.db.QueryRow(`
		SELECT email, purpose, code, created_at, expires_at
		FROM verification_codes
		WHERE email = $1 AND purpose = $2`,
		strings.ToLower(email), purpose).Scan(
		&code.Email, &code.Purpose, &code.Code, &code.CreatedAt, &code.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return code, nil
}

func (s *PostgresStorage) DeleteCode(email string, purpose Purpose) error {
	_, err := s.db.Exec(`DELETE FROM verification_codes WHERE email = $1 AND purpose = $2`,
		strings.ToLower(email), purpose)
	return err
}

func (s *PostgresStorage) DeleteExpired(now time.Time) error {
	_, err := s.db.Exec(`DELETE FROM verification_codes WHERE expires_at < $1`, now)
	return err
}
