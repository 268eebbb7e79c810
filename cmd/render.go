package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/LavenderBridge/problemset/internal/models"
	"github.com/LavenderBridge/problemset/internal/paginate"
	"github.com/LavenderBridge/problemset/internal/userstate"
	"github.com/dustin/go-humanize"
)

func renderTable(out io.Writer, problems []models.Problem, state userstate.State) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tProblem\tDiff\tTags\tAdded\tSaved\tRating")
	fmt.Fprintln(w, "--\t-------\t----\t----\t-----\t-----\t------")

	for _, p := range problems {
		saved := ""
		if state.IsBookmarked(p.ID) {
			saved = "🔖"
		}
		rating := "-"
		if r := state.Rating(p.ID); r != 0 {
			rating = stars(r)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, p.Difficulty, strings.Join(p.Tags, ", "), added(p), saved, rating)
	}
	w.Flush()
}

func added(p models.Problem) string {
	if p.Date == "" {
		return "-"
	}
	return humanize.Time(p.PublishedAt())
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		return strings.Repeat("★", 5) + fmt.Sprintf("(%d)", n)
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func renderCount(out io.Writer, n int) {
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	fmt.Fprintf(out, "%d problem%s found\n", n, suffix)
}

// renderPager prints the page window, e.g. "← 1 … 4 5 [6] 7 8 … 12 →".
func renderPager(out io.Writer, page int, totalPages int) {
	if totalPages < 2 {
		return
	}
	win := paginate.NewWindow(page, totalPages)

	var parts []string
	if !win.PrevDisabled {
		parts = append(parts, "←")
	}
	if win.ShowFirst {
		parts = append(parts, pageLabel(1, win.Current))
		if win.LeadingEllipsis {
			parts = append(parts, "…")
		}
	}
	for _, n := range win.Pages {
		parts = append(parts, pageLabel(n, win.Current))
	}
	if win.ShowLast {
		if win.TrailingEllipsis {
			parts = append(parts, "…")
		}
		parts = append(parts, pageLabel(win.Total, win.Current))
	}
	if !win.NextDisabled {
		parts = append(parts, "→")
	}

	fmt.Fprintf(out, "\nPage %d of %d:  %s\n", win.Current, win.Total, strings.Join(parts, " "))
	if !win.NextDisabled {
		fmt.Fprintf(out, "Next: --page %d\n", win.Next())
	}
}

func pageLabel(n, current int) string {
	if n == current {
		return fmt.Sprintf("[%d]", n)
	}
	return fmt.Sprint(n)
}

func renderEmpty(out io.Writer) {
	fmt.Fprintln(out, "🤷 No problems match your search or filters.")
	fmt.Fprintln(out, "   Reset them with: problemset list")
}

func renderDetail(out io.Writer, p models.Problem, state userstate.State, withSolution bool) {
	fmt.Fprintln(out, "========================================")
	fmt.Fprintf(out, "#%d %s\n", p.ID, p.Title)
	fmt.Fprintln(out, "========================================")
	fmt.Fprintf(out, "Difficulty: %s\n", p.Difficulty)
	if len(p.Tags) > 0 {
		fmt.Fprintf(out, "Tags:       %s\n", strings.Join(p.Tags, ", "))
	}
	if p.Date != "" {
		fmt.Fprintf(out, "Added:      %s (%s)\n", p.Date, added(p))
	}
	if p.Link != "" {
		fmt.Fprintf(out, "Link:       %s\n", p.Link)
	}

	d := p.Display()
	fmt.Fprintf(out, "Stats:      ⭐ %.1f/5 · %d solved · avg %s · %d solutions\n",
		d.Rating, d.Participants, d.AvgTime, d.Solutions)

	var mine []string
	if state.IsBookmarked(p.ID) {
		mine = append(mine, "🔖 bookmarked")
	}
	if r := state.Rating(p.ID); r != 0 {
		mine = append(mine, "your rating "+stars(r))
	}
	if len(mine) > 0 {
		fmt.Fprintf(out, "You:        %s\n", strings.Join(mine, " · "))
	}

	section(out, "Description", p.Description)
	section(out, "Explanation", p.Explanation)
	if withSolution {
		section(out, "Solution", p.Solution)
		section(out, "Solution notes", p.SolutionExplanation)
	}
}

func section(out io.Writer, title, body string) {
	body = strings.TrimRight(body, "\n ")
	if body == "" {
		return
	}
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", title, strings.Repeat("-", len(title)), body)
}
