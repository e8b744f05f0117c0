package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/store"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream the note list as JSON on every change",
		Long: `Watch prints the whole note list as one JSON array per line: once at
start and again after every change, including changes made by other
processes. Interrupt to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			cmd.SetContext(ctx)

			return opts.withStore(cmd, cfg, true, func(ctx context.Context, s *store.Store) error {
				return streamSnapshots(ctx, s.ObserveAll(ctx), cmd.OutOrStdout())
			})
		},
	}
}

// streamSnapshots writes each snapshot as a JSON array line until ch closes
// or ctx is done.
func streamSnapshots(ctx context.Context, ch <-chan []note.Note, w io.Writer) error {
	enc := json.NewEncoder(w)
	for {
		select {
		case <-ctx.Done():
			return nil
		case notes, ok := <-ch:
			if !ok {
				return nil
			}
			if notes == nil {
				notes = []note.Note{}
			}
			if err := enc.Encode(notes); err != nil {
				return err
			}
		}
	}
}
