package cmd

import (
	"github.com/spf13/cobra"
)

var showSolution bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a problem's details",
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

		a.state.RecordView(p)
		renderDetail(cmd.OutOrStdout(), p, a.state.State(), showSolution)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showSolution, "solution", false, "Include the solution listing")
}
