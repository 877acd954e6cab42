// Package launcher wires configuration, logging and storage together and
// runs the interactive program.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/filieres/internal/app"
	"github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/database"
	"github.com/thenoetrevino/filieres/internal/logging"
	"github.com/thenoetrevino/filieres/internal/tui"
)

// Launch starts the TUI application
func Launch(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logging goes to a file; the terminal belongs to the program
	logFile, err := logging.Init(cfg.LogDir, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("Starting filieres", "database", cfg.DatabasePath)

	p := tea.NewProgram(tui.InitialModel(ctx, application, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
