package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DrCognito/StaticAnalysisSite/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// Skip config loading so version works without a plot directory
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plotsite %s\n", version.GetFullVersionInfo())
		},
	}
}
