package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const (
	minRating = 1
	maxRating = 5
)

var rateCmd = &cobra.Command{
	Use:   "rate [id] [rating 1-5]",
	Short: "Rate a problem",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil || rating < minRating || rating > maxRating {
			return fmt.Errorf("rating must be between %d and %d", minRating, maxRating)
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

		a.state.SetRating(id, rating)
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Rated '%s' %s\n", p.Title, stars(rating))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
}
