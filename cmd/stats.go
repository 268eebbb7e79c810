package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your bookmarks, ratings and history at a glance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ratings := a.state.Ratings()
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		avg := 0.0
		if len(ratings) > 0 {
			avg = float64(sum) / float64(len(ratings))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "📊 Statistics")
		fmt.Fprintln(out, "-------------")
		fmt.Fprintf(out, "Total Problems:  %d\n", a.catalog.Len())
		fmt.Fprintf(out, "Bookmarked:      %d\n", len(a.state.Bookmarks()))
		fmt.Fprintf(out, "Rated:           %d\n", len(ratings))
		fmt.Fprintf(out, "Average Rating:  %.2f\n", avg)

		recent := a.state.RecentlyViewed()
		fmt.Fprintf(out, "Recently Viewed: %d\n", len(recent))
		if len(recent) > 0 {
			fmt.Fprintf(out, "Last Viewed:     #%d %s\n", recent[0].ID, recent[0].Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
