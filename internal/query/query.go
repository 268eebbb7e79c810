// Package query filters and orders the problem collection.
//
// Every function here is pure: inputs are never modified and the same inputs
// always produce the same output.
package query

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/LavenderBridge/problemset/internal/models"
)

var (
	ErrUnknownSort       = errors.New("unknown sort key")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// SortKey selects the ordering of a result set.
type SortKey string

const (
	SortNewest         SortKey = "newest"
	SortOldest         SortKey = "oldest"
	SortDifficultyAsc  SortKey = "difficulty-asc"
	SortDifficultyDesc SortKey = "difficulty-desc"
	SortPopularity     SortKey = "popularity"
	SortRating         SortKey = "rating"
)

// SortKeys lists the accepted keys, default first.
var SortKeys = []SortKey{SortNewest, SortOldest, SortDifficultyAsc, SortDifficultyDesc, SortPopularity, SortRating}

// ParseSortKey validates user input. Empty input selects SortNewest.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortNewest, nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	names := make([]string, len(SortKeys))
	for i, k := range SortKeys {
		names[i] = string(k)
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownSort, s, strings.Join(names, ", "))
}

// Config is the search term, filters and sort key for one render.
type Config struct {
	Search     string
	Difficulty Option[models.Difficulty]
	Tag        Option[string]
	Status     Option[string]
	Sort       SortKey
}

// Ratings maps problem ids to the user's own rating.
type Ratings map[int]int

// Matches reports whether p passes every condition of cfg.
func Matches(p models.Problem, cfg Config) bool {
	return matchesSearch(p, cfg.Search) &&
		cfg.Difficulty.Matches(p.Difficulty) &&
		matchesTag(p, cfg.Tag) &&
		matchesStatus(p, cfg.Status)
}

func matchesSearch(p models.Problem, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

func matchesTag(p models.Problem, tag Option[string]) bool {
	v, ok := tag.Get()
	return !ok || p.HasTag(v)
}

// A problem without a status only passes when the dimension is disabled.
func matchesStatus(p models.Problem, status Option[string]) bool {
	v, ok := status.Get()
	if !ok {
		return true
	}
	return p.Status != "" && p.Status == v
}

// Filter returns the problems that match cfg, in input order.
func Filter(problems []models.Problem, cfg Config) []models.Problem {
	out := make([]models.Problem, 0, len(problems))
	for _, p := range problems {
		if Matches(p, cfg) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a stably sorted copy of problems. Unknown keys fall back to
// SortNewest.
func Sort(problems []models.Problem, key SortKey, ratings Ratings) []models.Problem {
	out := make([]models.Problem, len(problems))
	copy(out, problems)

	var less func(a, b models.Problem) bool
	switch key {
	case SortOldest:
		less = func(a, b models.Problem) bool { return a.PublishedAt().Before(b.PublishedAt()) }
	case SortDifficultyAsc:
		less = func(a, b models.Problem) bool { return a.Difficulty.Rank() < b.Difficulty.Rank() }
	case SortDifficultyDesc:
		less = func(a, b models.Problem) bool { return a.Difficulty.Rank() > b.Difficulty.Rank() }
	case SortPopularity:
		less = func(a, b models.Problem) bool { return a.Attempts > b.Attempts }
	case SortRating:
		less = func(a, b models.Problem) bool { return ratings[a.ID] > ratings[b.ID] }
	default:
		less = func(a, b models.Problem) bool { return a.PublishedAt().After(b.PublishedAt()) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Run filters then sorts.
func Run(problems []models.Problem, cfg Config, ratings Ratings) []models.Problem {
	return Sort(Filter(problems, cfg), cfg.Sort, ratings)
}

// Random picks one problem uniformly. It reports false for an empty input.
func Random(problems []models.Problem, rng *rand.Rand) (models.Problem, bool) {
	if len(problems) == 0 {
		return models.Problem{}, false
	}
	return problems[rng.Intn(len(problems))], true
}
