package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/store"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note and print its id",
		Long: `Add stores a new note. At least one of --title and --content must be
non-blank. Pass --content - to read the content from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readContent(cmd, content)
			if err != nil {
				return err
			}
			d := note.Draft{Title: title, Content: body}
			if err := d.Validate(); err != nil {
				return err
			}
			d = d.Normalize()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return opts.withStore(cmd, cfg, false, func(ctx context.Context, s *store.Store) error {
				id, err := s.Insert(ctx, d.Title, d.Content)
				if err != nil {
					return fmt.Errorf("add note: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&content, "content", "c", "", `note content ("-" reads stdin)`)
	return cmd
}

// readContent resolves the "-" stdin shorthand.
func readContent(cmd *cobra.Command, content string) (string, error) {
	if content != "-" {
		return content, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
