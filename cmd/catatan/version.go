package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/catatan/internal/version"
)

func newVersionCmd() *cobra.Command {
	var showUpgrade bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of catatan",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catatan version %s\n", version.Effective(Version))
			if !showUpgrade {
				return
			}
			if hint := version.UpgradeHint(version.DetectInstallMethod()); hint != "" {
				fmt.Fprintf(out, "upgrade with: %s\n", hint)
			}
		},
	}
	cmd.Flags().BoolVar(&showUpgrade, "upgrade-hint", false, "print how to upgrade this install")
	return cmd
}
