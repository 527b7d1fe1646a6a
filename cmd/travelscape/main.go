package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/travelscape/internal/cli"
	"github.com/alexanderramin/travelscape/internal/db"
	"github.com/alexanderramin/travelscape/internal/repository"
	"github.com/alexanderramin/travelscape/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.travelscape/travelscape.db
	dbPath := os.Getenv("TRAVELSCAPE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".travelscape", "travelscape.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itineraryRepo := repository.NewSQLiteItineraryRepo(database)
	setupRepo := repository.NewSQLiteSetupRepo(database)
	moodRepo := repository.NewSQLiteMoodRepo(database)
	undoRepo := repository.NewSQLiteUndoRepo(database)

	// Wire unit of work for transactional snapshot saves
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Itinerary: service.NewItineraryService(itineraryRepo, setupRepo, moodRepo, undoRepo, uow),
		Setup:     service.NewSetupService(setupRepo),
		Export:    service.NewExportService(),
	}

	// Detect interactive terminal; bare invocations open the board.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
