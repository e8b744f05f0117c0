package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/marcus/catatan/internal/lang"
	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/store"
	"github.com/marcus/catatan/internal/styles"
	"github.com/marcus/catatan/internal/ui"
)

const listContentWidth = 48

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, most recently updated first",
		Long: `List prints every note newest first. Output is a table on a terminal
and JSON lines otherwise, or when --json is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			text := lang.For(cfg.UI.Locale)

			return opts.withStore(cmd, cfg, false, func(ctx context.Context, s *store.Store) error {
				notes, err := s.List(ctx)
				if err != nil {
					return fmt.Errorf("list notes: %w", err)
				}
				out := cmd.OutOrStdout()
				if asJSON || !isTerminal(out) {
					return writeJSONLines(out, notes)
				}
				fmt.Fprintln(out, renderTable(notes, text, time.Now()))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON lines")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeJSONLines writes one note object per line.
func writeJSONLines(w io.Writer, notes []note.Note) error {
	enc := json.NewEncoder(w)
	for _, n := range notes {
		if err := enc.Encode(n); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(notes []note.Note, text *lang.Table, now time.Time) string {
	if len(notes) == 0 {
		return styles.Muted.Render(text.EmptyTitle)
	}

	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			strconv.FormatInt(n.ID, 10),
			n.DisplayTitle(text.Untitled),
			ui.Truncate(n.DisplayContent(text.NoContent), listContentWidth),
			humanize.RelTime(n.UpdatedAt, now, text.RelAgo, text.RelLater),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderNormal)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", text.TitleLabel, text.ContentLabel, text.UpdatedLabel).
		Rows(rows...).
		String()
}
