package cmd

import (
	"github.com/LavenderBridge/problemset/internal/paginate"
	"github.com/LavenderBridge/problemset/internal/query"
	"github.com/spf13/cobra"
)

var (
	listFlags    queryFlags
	listPage     int
	listPageSize int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"problems"},
	Short:   "Search, filter and page through problems",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := listFlags.config()
		if err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		state := a.state.State()
		results := query.Run(a.catalog.All(), cfg, state.Ratings())

		size := listPageSize
		if size < 1 {
			size = a.cfg.List.PageSize
		}
		page := paginate.Paginate(results, listPage, size)

		out := cmd.OutOrStdout()
		if page.Total == 0 {
			renderEmpty(out)
			return nil
		}

		renderCount(out, page.Total)
		renderTable(out, page.Items, state)
		renderPager(out, page.Number, page.TotalPages)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags.register(listCmd, true)
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page number (clamped to the available pages)")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Problems per page (default from config, 9)")
}
