package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/LavenderBridge/problemset/internal/models"
	"github.com/LavenderBridge/problemset/internal/query"
	"github.com/spf13/cobra"
)

var (
	reviewFlags queryFlags
	reviewAll   bool
	reviewOpen  bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Walk through your bookmarks and rate each one",
	Long: `Start a review session over your bookmarked problems.
Use --all to review every problem matching the filters instead.
Each problem is shown in turn; answer with a rating from 1 to 5,
or press Enter to skip it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := reviewFlags.config()
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		problems := query.Run(a.catalog.All(), cfg, a.state.Ratings())
		if !reviewAll {
			var bookmarked []models.Problem
			for _, p := range problems {
				if a.state.IsBookmarked(p.ID) {
					bookmarked = append(bookmarked, p)
				}
			}
			problems = bookmarked
		}

		out := cmd.OutOrStdout()
		if len(problems) == 0 {
			fmt.Fprintln(out, "✅ Nothing to review. Bookmark problems first, or pass --all.")
			return nil
		}

		reader := bufio.NewReader(cmd.InOrStdin())

		for i, p := range problems {
			fmt.Fprintf(out, "\nReviewing [%d/%d]\n", i+1, len(problems))
			a.state.RecordView(p)
			renderDetail(out, p, a.state.State(), false)

			if reviewOpen && p.Link != "" {
				fmt.Fprintln(out, "🌐 Opening link in browser...")
				if err := openBrowser(p.Link); err != nil {
					fmt.Fprintf(out, "❌ %v\n", err)
				}
			}

			fmt.Fprint(out, "\nRate this problem (1-5, Enter to skip): ")
			input, readErr := reader.ReadString('\n')
			input = strings.TrimSpace(input)

			if input != "" {
				rating, err := strconv.Atoi(input)
				if err != nil || rating < minRating || rating > maxRating {
					fmt.Fprintln(out, "⚠️ Invalid input, skipping this problem.")
				} else {
					a.state.SetRating(p.ID, rating)
					fmt.Fprintf(out, "✅ Rated %s\n", stars(rating))
				}
			}

			if readErr != nil {
				break
			}
		}

		fmt.Fprintln(out, "\n🎉 Review session complete!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewFlags.register(reviewCmd, true)
	reviewCmd.Flags().BoolVar(&reviewAll, "all", false, "Review every matching problem, not only bookmarks")
	reviewCmd.Flags().BoolVarP(&reviewOpen, "open", "o", false, "Open each problem's link in the browser")
}
