package cmd

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/LavenderBridge/problemset/internal/catalog"
	"github.com/LavenderBridge/problemset/internal/debounce"
	"github.com/LavenderBridge/problemset/internal/paginate"
	"github.com/LavenderBridge/problemset/internal/query"
	"github.com/LavenderBridge/problemset/internal/userstate"
	"github.com/spf13/cobra"
)

var browseFlags queryFlags

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search interactively; each line you type replaces the search",
	Long: `Browse reads search terms from standard input, one per line. A term is
applied once typing has paused for the configured debounce interval, so a
burst of lines only renders the last one. End input (Ctrl-D) to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := browseFlags.config()
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		s := &searchSession{
			out:      cmd.OutOrStdout(),
			catalog:  a.catalog,
			state:    a.state,
			cfg:      cfg,
			pageSize: a.cfg.List.PageSize,
		}
		fmt.Fprintln(s.out, "🔎 Type to search, Ctrl-D to quit.")
		return s.run(cmd.InOrStdin(), debounce.New(a.cfg.Search.Debounce))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseFlags.register(browseCmd, false)
}

// searchSession renders the first page of results for each applied term.
type searchSession struct {
	mu       sync.Mutex
	out      io.Writer
	catalog  *catalog.Catalog
	state    *userstate.Store
	cfg      query.Config
	pageSize int
}

func (s *searchSession) run(in io.Reader, d *debounce.Debouncer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		term := scanner.Text()
		d.Trigger(func() { s.apply(term) })
	}
	d.Flush()
	d.Wait()
	return scanner.Err()
}

func (s *searchSession) apply(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg
	cfg.Search = term

	state := s.state.State()
	results := query.Run(s.catalog.All(), cfg, state.Ratings())
	page := paginate.Paginate(results, 1, s.pageSize)

	fmt.Fprintf(s.out, "\n🔎 %q\n", term)
	if page.Total == 0 {
		renderEmpty(s.out)
		return
	}
	renderCount(s.out, page.Total)
	renderTable(s.out, page.Items, state)
	renderPager(s.out, page.Number, page.TotalPages)
}
