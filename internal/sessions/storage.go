package sessions

import (
	"database/sql"
	"sync"
)

type Saver interface {
	CreateSession(session *Session) error
}

type Provider interface {
	GetSessionByToken(token string) (*Session, error)
}

type Storage interface {
	Saver
	Provider
}

type MemoryStorage struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{sessions: make(map[string]*Session)}
}

func (s *MemoryStorage) CreateSession(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *MemoryStorage) GetSessionByToken(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return session, nil
}

type PostgresStorage struct {
	db *sql.DB
}

func NewSessionsPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) CreateSession(session *Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (token, user_id, name, email)
		VALUES ($1, $2, $3, $4)`,
		session.Token, session.UserID, session.Name, session.Email)
	return err
}

func (s *PostgresStorage) GetSessionByToken(token string) (*Session, error) {
	session := &Session{}
	err := s.db.QueryRow(`
		SELECT token, user_id, name, email
		FROM sessions WHERE token = $1`, token).Scan(
		&session.Token, &session.UserID, &session.Name, &session.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}
