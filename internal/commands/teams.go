package commands

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *app) newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List indexed teams and their datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listTeams(cmd.OutOrStdout())
		},
	}
}

func (a *app) listTeams(w io.Writer) error {
	loader, err := a.openLoader()
	if err != nil {
		return err
	}

	idx := loader.Index()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Team", "Datasets", "Metadata"})
	table.SetAutoWrapText(false)

	for _, team := range idx.Teams() {
		path, _ := idx.Lookup(team)
		datasets, err := loader.Datasets(team)
		cell := strings.Join(datasets, ", ")
		if err != nil {
			cell = color.RedString("error: %v", err)
		}
		table.Append([]string{team, cell, path})
	}
	table.Render()

	color.New(color.FgCyan).Fprintf(w, "%d teams under %s\n", idx.Len(), idx.Root())
	return nil
}
