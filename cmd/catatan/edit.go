package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/store"
)

var errNothingToChange = errors.New("nothing to change: pass --title or --content")

func newEditCmd(opts *rootOptions) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a note's title or content",
		Long: `Edit replaces the fields given by flags and keeps the others. The
note moves to the top of the list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			titleSet := cmd.Flags().Changed("title")
			contentSet := cmd.Flags().Changed("content")
			if !titleSet && !contentSet {
				return errNothingToChange
			}
			body, err := readContent(cmd, content)
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return opts.withStore(cmd, cfg, false, func(ctx context.Context, s *store.Store) error {
				n, err := s.Get(ctx, id)
				if err != nil {
					return fmt.Errorf("edit note %d: %w", id, err)
				}

				d := note.DraftOf(n)
				if titleSet {
					d.Title = title
				}
				if contentSet {
					d.Content = body
				}
				if err := d.Validate(); err != nil {
					return err
				}

				if _, err := s.Update(ctx, d.Normalize().Apply(n)); err != nil {
					return fmt.Errorf("edit note %d: %w", id, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", `new content ("-" reads stdin)`)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}
