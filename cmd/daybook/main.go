package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mfriesen/daybook/internal/auth"
	"github.com/mfriesen/daybook/internal/cli"
	"github.com/mfriesen/daybook/internal/db"
	"github.com/mfriesen/daybook/internal/repository"
	"github.com/mfriesen/daybook/internal/service"
	"github.com/mfriesen/daybook/internal/store"
	"github.com/mfriesen/daybook/internal/timer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Data directory: env var or default ~/.daybook
	dataDir := os.Getenv("DAYBOOK_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".daybook")
	}

	// DB path: env var or default inside the data directory
	dbPath := os.Getenv("DAYBOOK_DB")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "daybook.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessions, err := store.OpenSessionStore(store.NewFileBlob(dataDir, store.BlobName))
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	users, err := auth.OpenFileProvider(dataDir)
	if err != nil {
		return fmt.Errorf("loading identity: %w", err)
	}

	aggregateRepo := repository.NewSQLiteAggregateRepo(database)

	var observer service.Observer = service.NoopObserver{}
	if os.Getenv("DAYBOOK_LOG_SYNC") != "" {
		observer = service.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Sessions: service.NewSessionService(sessions),
		Sync:     service.NewSyncService(aggregateRepo, users, observer),
		Stats:    service.NewStatsService(aggregateRepo, users),
		Auth:     users,
		Engine:   timer.NewEngine(),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
