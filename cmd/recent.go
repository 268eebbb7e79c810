package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently viewed problems, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		recent := a.state.RecentlyViewed()
		out := cmd.OutOrStdout()
		if len(recent) == 0 {
			fmt.Fprintln(out, "Nothing viewed yet. Try: problemset random")
			return nil
		}

		fmt.Fprintf(out, "🕘 Recently viewed:\n\n")
		renderTable(out, recent, a.state.State())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
}
