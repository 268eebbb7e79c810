package cmd

import (
	"math/rand"
	"time"

	"github.com/LavenderBridge/problemset/internal/query"
	"github.com/spf13/cobra"
)

var randomFlags queryFlags

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random problem from the filtered list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := randomFlags.config()
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		results := query.Run(a.catalog.All(), cfg, a.state.Ratings())
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		p, ok := query.Random(results, rng)
		if !ok {
			renderEmpty(cmd.OutOrStdout())
			return nil
		}

		a.state.RecordView(p)
		renderDetail(cmd.OutOrStdout(), p, a.state.State(), false)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomFlags.register(randomCmd, true)
}
