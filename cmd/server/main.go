package main

import (
	"database/sql"
	"log/slog"
	"os"
	"time"

	"kirieshka/config"
	"kirieshka/internal/database"
)

const janitorInterval = time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.EnsureSchema(db); err != nil {
			slog.Error("failed to prepare database schema", "error", err)
			os.Exit(1)
		}
		slog.Info("using postgres storage")
	} else {
		slog.Info("using in-memory storage")
	}

	app, err := InitializeApp(cfg, db)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer app.Dispatcher.Close()

	stopJanitor := app.Ledger.StartJanitor(janitorInterval)
	defer stopJanitor()

	slog.Info("starting server", "port", cfg.Port, "emailConfigured", cfg.EmailConfigured())
	if err := app.Server.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
