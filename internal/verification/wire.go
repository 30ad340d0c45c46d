package verification

import (
	"database/sql"

	"github.com/google/wire"
)

// ProvideStorage is a Wire provider function that picks the code storage
// backend. A nil db selects the in-memory storage.
func ProvideStorage(db *sql.DB) Storage {
	if db == nil {
		return NewMemoryStorage()
	}
	return NewVerificationPostgresStorage(db)
}

// ProvideLedger is a Wire provider function that creates the Ledger.
func ProvideLedger(storage Storage) *Ledger {
	return NewLedger(storage)
}

var Set = wire.NewSet(ProvideStorage, ProvideLedger)
