package cmd

import (
	"fmt"

	"github.com/LavenderBridge/problemset/internal/clipboard"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy [id]",
	Short: "Copy a problem's solution to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.problem(id)
		if err != nil {
			return err
		}

		if err := clipboard.CopySolution(clipboard.System{}, p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "📋 Copied solution for '%s'\n", p.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
