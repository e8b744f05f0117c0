package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marcus/catatan/internal/config"
	"github.com/marcus/catatan/internal/store"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	dbPath     string
	debug      bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catatan",
		Short: "A minimal note-taking app for the terminal",
		Long: `Catatan keeps notes in a local SQLite database.
Run without arguments for the full-screen UI, or use the subcommands to
script it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.debug)
			slog.SetDefault(opts.logger)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to config file (default ~/.config/catatan/config.json)")
	pf.StringVar(&opts.dbPath, "db", "", "path to the notes database (overrides config)")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newEditCmd(opts),
		newRmCmd(opts),
		newWatchCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the config file and applies --db.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.dbPath != "" {
		cfg.Store.Path = config.ExpandPath(o.dbPath)
	}
	return cfg, nil
}

// configFile returns the config file in use.
func (o *rootOptions) configFile() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.ConfigPath()
}

// configDir holds state and the debug log, next to the config file.
func (o *rootOptions) configDir() string {
	return filepath.Dir(o.configFile())
}

func (o *rootOptions) saveTheme(name string) error {
	return config.SaveThemeTo(o.configFile(), name)
}

func (o *rootOptions) openStore(ctx context.Context, cfg *config.Config, watch bool) (*store.Store, error) {
	s, err := store.Open(ctx, store.Options{
		Path:          cfg.Store.Path,
		Driver:        cfg.Store.Driver,
		WatchExternal: watch && cfg.Store.WatchExternal,
		Logger:        o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// withStore opens the store configured by cfg for the duration of fn.
// Queued writes finish before it returns.
func (o *rootOptions) withStore(cmd *cobra.Command, cfg *config.Config, watch bool, fn func(context.Context, *store.Store) error) (err error) {
	ctx := cmd.Context()
	s, err := o.openStore(ctx, cfg, watch)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close store: %w", cerr))
		}
	}()
	return fn(ctx, s)
}
