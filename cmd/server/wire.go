//go:build wireinject
// +build wireinject

package main

import (
	"database/sql"

	"github.com/google/wire"

	"kirieshka/config"
	"kirieshka/internal/accounts"
	"kirieshka/internal/api"
	"kirieshka/internal/catalog"
	"kirieshka/internal/email"
	"kirieshka/internal/sessions"
	"kirieshka/internal/verification"
)

var AppSet = wire.NewSet(
	catalog.Set,
	verification.Set,
	sessions.Set,
	email.Set,
	accounts.Set,
	api.Set,
	ProvideApp,
)

// InitializeApp wires the whole application. db may be nil, in which case all
// storages are in-memory.
func InitializeApp(cfg *config.Config, db *sql.DB) (*App, error) {
	wire.Build(AppSet)
	return &App{}, nil
}
