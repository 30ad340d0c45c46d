package main

import (
	"kirieshka/internal/api"
	"kirieshka/internal/email"
	"kirieshka/internal/verification"
)

// App bundles the long-lived pieces main has to manage: the HTTP server, the
// code ledger (for the janitor) and the email dispatcher (for shutdown).
type App struct {
	Server     *api.Server
	Ledger     *verification.Ledger
	Dispatcher *email.Dispatcher
}

// ProvideApp is a Wire provider function that collects the app roots.
func ProvideApp(
	server *api.Server,
	ledger *verification.Ledger,
	dispatcher *email.Dispatcher,
) *App {
	return &App{
		Server:     server,
		Ledger:     ledger,
		Dispatcher: dispatcher,
	}
}
