package api

import (
	"github.com/google/wire"

	"kirieshka/internal/accounts"
	"kirieshka/internal/catalog"
	"kirieshka/internal/email"
	"kirieshka/internal/sessions"
)

// ProvideServer is a Wire provider function that assembles the HTTP Server.
func ProvideServer(
	catalogHandler *catalog.JSONHandler,
	accountsHandler *accounts.JSONHandler,
	registry *sessions.Registry,
	dispatcher *email.Dispatcher,
) *Server {
	return NewServer(catalogHandler, accountsHandler, registry, dispatcher)
}

var Set = wire.NewSet(ProvideServer)
