package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/catatan/internal/store"
)

func newRmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID...",
		Aliases: []string{"delete"},
		Short:   "Delete notes",
		Long:    `Rm deletes the given notes. Ids that do not exist are ignored.`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := parseID(a)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return opts.withStore(cmd, cfg, false, func(ctx context.Context, s *store.Store) error {
				for _, id := range ids {
					if err := s.Delete(ctx, id); err != nil {
						return fmt.Errorf("delete note %d: %w", id, err)
					}
				}
				return nil
			})
		},
	}
}
