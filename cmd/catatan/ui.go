package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/catatan/internal/app"
	"github.com/marcus/catatan/internal/state"
)

const logFile = "catatan.log"

// runUI runs the full-screen note list until the user quits.
func runUI(cmd *cobra.Command, opts *rootOptions) (err error) {
	dir := opts.configDir()

	// stderr would draw over the alt screen
	logger, closeLog, err := uiLogger(dir, opts.debug)
	if err != nil {
		return err
	}
	defer closeLog()
	opts.logger = logger
	slog.SetDefault(logger)

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	// State is optional
	if err := state.InitWithDir(dir); err != nil {
		logger.Warn("state: load failed, using defaults", "error", err)
	}

	s, err := opts.openStore(cmd.Context(), cfg, true)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close store: %w", cerr))
		}
	}()

	model := app.New(app.Options{
		Store:     s,
		Config:    cfg,
		Logger:    logger,
		SaveTheme: opts.saveTheme,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// uiLogger writes to dir/catatan.log with --debug and discards otherwise.
func uiLogger(dir string, debug bool) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, true), func() { f.Close() }, nil
}
