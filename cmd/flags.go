package cmd

import (
	"fmt"
	"strconv"

	"github.com/LavenderBridge/problemset/internal/query"
	"github.com/spf13/cobra"
)

// queryFlags are the search, filter and sort flags shared by list, random
// and browse.
type queryFlags struct {
	search     string
	difficulty string
	tag        string
	status     string
	sort       string
}

func (f *queryFlags) register(cmd *cobra.Command, withSearch bool) {
	if withSearch {
		cmd.Flags().StringVarP(&f.search, "search", "s", "", "Case-insensitive text to find in title, description or tags")
	}
	cmd.Flags().StringVarP(&f.difficulty, "difficulty", "d", query.AllValue, "Difficulty filter (All, Easy, Medium, Hard)")
	cmd.Flags().StringVarP(&f.tag, "tag", "t", query.AllValue, "Tag filter, exact match (e.g. Array)")
	cmd.Flags().StringVar(&f.status, "status", query.AllValue, "Status filter")
	cmd.Flags().StringVar(&f.sort, "sort", string(query.SortNewest), "Sort order (newest, oldest, difficulty-asc, difficulty-desc, popularity, rating)")
}

func (f *queryFlags) config() (query.Config, error) {
	difficulty, err := query.ParseDifficulty(f.difficulty)
	if err != nil {
		return query.Config{}, err
	}
	sort, err := query.ParseSortKey(f.sort)
	if err != nil {
		return query.Config{}, err
	}
	return query.Config{
		Search:     f.search,
		Difficulty: difficulty,
		Tag:        query.ParseOption(f.tag),
		Status:     query.ParseOption(f.status),
		Sort:       sort,
	}, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}
