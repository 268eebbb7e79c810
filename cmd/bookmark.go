package cmd

import (
	"fmt"

	"github.com/LavenderBridge/problemset/internal/models"
	"github.com/spf13/cobra"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark [id]",
	Short: "Bookmark a problem, or remove an existing bookmark",
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

		if a.state.ToggleBookmark(id) {
			fmt.Fprintf(cmd.OutOrStdout(), "🔖 Bookmarked '%s'\n", p.Title)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Removed bookmark from '%s'\n", p.Title)
		}
		return nil
	},
}

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var problems []models.Problem
		for _, id := range a.state.Bookmarks() {
			if p, ok := a.catalog.ByID(id); ok {
				problems = append(problems, p)
			}
		}

		out := cmd.OutOrStdout()
		if len(problems) == 0 {
			fmt.Fprintln(out, "No bookmarks yet. Add one with: problemset bookmark <id>")
			return nil
		}
		fmt.Fprintf(out, "🔖 %d bookmarked:\n\n", len(problems))
		renderTable(out, problems, a.state.State())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
