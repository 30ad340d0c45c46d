package accounts

import (
	"database/sql"
	"strings"
	"sync"
)

type Saver interface {
	SaveUser(user *User) error
}

type Updater interface {
	UpdateUser(user *User) error
}

type Provider interface {
	UserByEmail(email string) (*User, error)
}

type Storage interface {
	Saver
	Updater
	Provider
}

type MemoryStorage struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{users: make(map[string]*User)}
}

func (s *MemoryStorage) SaveUser(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[strings.ToLower(user.Email)] = user
	return nil
}

func (s *MemoryStorage) UpdateUser(user *User) error {
	return s.SaveUser(user)
}

func (s *MemoryStorage) UserByEmail(email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

type PostgresStorage struct {
	db *sql.DB
}

func NewUserPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) SaveUser(user *User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, name, email, password_hash, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, strings.ToLower(user.Email),
		user.PasswordHash, user.IsVerified, user.CreatedAt)
	return err
}

func (s *PostgresStorage) UpdateUser(user *User) error {
	_, err := s.db.Exec(`
		UPDATE users SET name = $2, password_hash = $3, is_verified = $4
		WHERE id = $1`,
		user.ID, user.Name, user.PasswordHash, user.IsVerified)
	return err
}

func (s *PostgresStorage) UserByEmail(email string) (*User, error) {
	user := &User{}
	err := s.db.QueryRow(`
		SELECT id, name, email, password_hash, is_verified, created_at
		FROM users WHERE email = $1`, strings.ToLower(email)).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.IsVerified, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
