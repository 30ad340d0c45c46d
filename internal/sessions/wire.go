package sessions

import (
	"database/sql"

	"github.com/google/wire"

	"kirieshka/config"
)

// ProvideStorage is a Wire provider function that picks the session storage
// backend. A nil db selects the in-memory storage.
func ProvideStorage(db *sql.DB) Storage {
	if db == nil {
		return NewMemoryStorage()
	}
	return NewSessionsPostgresStorage(db)
}

// ProvideRegistry is a Wire provider function that creates the Registry.
func ProvideRegistry(storage Storage, cfg *config.Config) *Registry {
	return NewRegistry(storage, cfg.SessionSecret)
}

var Set = wire.NewSet(ProvideStorage, ProvideRegistry)
