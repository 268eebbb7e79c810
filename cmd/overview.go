package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/LavenderBridge/problemset/internal/models"
	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the catalog by difficulty and category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n📊 Catalog Overview")
		fmt.Fprintln(out, "===================")
		fmt.Fprintf(out, "Problems:    %d\n", a.catalog.Len())
		fmt.Fprintf(out, "Bookmarked:  %d\n", len(a.state.Bookmarks()))

		fmt.Fprintln(out, "\n📈 Problems by Difficulty")
		byDifficulty := a.catalog.CountByDifficulty()
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Difficulty\tCount")
		fmt.Fprintln(w, "----------\t-----")
		for _, d := range models.Difficulties {
			count := byDifficulty[d]
			fmt.Fprintf(w, "%s\t%d\t%s\n", d, count, strings.Repeat("█", count))
		}
		w.Flush()

		fmt.Fprintln(out, "\n🏷  Problems by Tag")
		byTag := a.catalog.CountByTag()
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Tag\tCount")
		fmt.Fprintln(w, "---\t-----")
		for _, tag := range a.catalog.Tags() {
			count := byTag[tag]
			fmt.Fprintf(w, "%s\t%d\t%s\n", tag, count, strings.Repeat("█", count))
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
