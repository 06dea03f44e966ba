package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/colorpass/colorpass-go/internal/palette"
)

func newColorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the background colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := a.cfg.InitialColor()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, c := range palette.All() {
				marker := ""
				if c == initial {
					marker = "*"
				}
				chip := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", (i+1)%10, chip, c, c.Hex(), marker)
			}
			return w.Flush()
		},
	}
}
