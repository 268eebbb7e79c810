// Package catalog holds the read-only problem collection.
//
// The default collection is compiled into the binary; a YAML file with the
// same shape can replace it at startup.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/LavenderBridge/problemset/internal/models"
	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v3"
)

//go:embed problems.yaml
var defaultData []byte

// ErrDuplicateID is returned when two records share an id.
var ErrDuplicateID = errors.New("duplicate problem id")

// Catalog is an immutable, ordered set of problems.
type Catalog struct {
	problems []models.Problem
	byID     map[int]int
}

// Default returns the built-in collection.
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a YAML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML list of problems.
func Parse(data []byte) (*Catalog, error) {
	var problems []models.Problem
	if err := yaml.Unmarshal(data, &problems); err != nil {
		return nil, fmt.Errorf("cannot decode catalog: %w", err)
	}
	return New(problems)
}

// New validates problems and builds a catalog from a copy of them.
func New(problems []models.Problem) (*Catalog, error) {
	validate := validator.New()

	c := &Catalog{
		problems: make([]models.Problem, 0, len(problems)),
		byID:     make(map[int]int, len(problems)),
	}
	for i, p := range problems {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("problem #%d (id %d): %w", i+1, p.ID, err)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		p.Tags = append([]string(nil), p.Tags...)
		c.byID[p.ID] = len(c.problems)
		c.problems = append(c.problems, p)
	}
	return c, nil
}

// All returns every problem in catalog order. The slice is a copy.
func (c *Catalog) All() []models.Problem {
	out := make([]models.Problem, len(c.problems))
	copy(out, c.problems)
	return out
}

func (c *Catalog) Len() int {
	return len(c.problems)
}

// ByID looks a problem up by its id.
func (c *Catalog) ByID(id int) (models.Problem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Problem{}, false
	}
	return c.problems[i], true
}

// Tags lists distinct tags in first-seen order.
func (c *Catalog) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range c.problems {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// CountByDifficulty counts problems per level.
func (c *Catalog) CountByDifficulty() map[models.Difficulty]int {
	counts := make(map[models.Difficulty]int, len(models.Difficulties))
	for _, p := range c.problems {
		counts[p.Difficulty]++
	}
	return counts
}

// CountByTag counts problems carrying each tag.
func (c *Catalog) CountByTag() map[string]int {
	counts := make(map[string]int)
	for _, p := range c.problems {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	return counts
}
