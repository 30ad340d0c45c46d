package accounts

import (
	"database/sql"

	"github.com/google/wire"

	"kirieshka/internal/email"
	"kirieshka/internal/sessions"
	"kirieshka/internal/verification"
)

// ProvideStorage is a Wire provider function that picks the user storage
// backend. A nil db selects the in-memory storage.
func ProvideStorage(db *sql.DB) Storage {
	if db == nil {
		return NewMemoryStorage()
	}
	return NewUserPostgresStorage(db)
}

// ProvideUseCase is a Wire provider function that creates the UseCase.
func ProvideUseCase(
	users Storage,
	ledger *verification.Ledger,
	registry *sessions.Registry,
	dispatcher *email.Dispatcher,
) UseCase {
	return NewUseCase(users, ledger, registry, dispatcher)
}

// ProvideJSONHandler is a Wire provider function that creates the JSONHandler.
func ProvideJSONHandler(useCase UseCase, dispatcher *email.Dispatcher) *JSONHandler {
	return NewJSONHandler(useCase, dispatcher.Configured)
}

var Set = wire.NewSet(ProvideStorage, ProvideUseCase, ProvideJSONHandler)
