package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arlox/showdeck/internal/browser"
	"github.com/arlox/showdeck/internal/cache"
	"github.com/arlox/showdeck/internal/catalog"
	"github.com/arlox/showdeck/internal/config"
	"github.com/arlox/showdeck/internal/log"
	"github.com/arlox/showdeck/internal/tui"
	"github.com/arlox/showdeck/internal/tvmaze"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("showdeck %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting showdeck", "version", Version, "base_url", cfg.API.BaseURL)

	// Create the catalog source client
	client := tvmaze.NewClient(cfg.API.BaseURL, cfg.API.RequestsPerSecond, logger)

	// Create the response cache and catalog service
	responseCache := cache.New(logger)
	svc := catalog.NewService(client, responseCache, logger)

	opener := browser.NewOpener(logger)

	// Create and run the TUI
	model := tui.NewModel(svc, opener, cfg, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}

	logger.Info("showdeck exited")
	return nil
}
