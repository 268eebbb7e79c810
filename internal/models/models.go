package models

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the ordinal classification of a problem.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists every level in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Rank maps a difficulty onto 1 (Easy) .. 3 (Hard). Unknown values rank 0.
func (d Difficulty) Rank() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	}
	return 0
}

// ParseDifficulty accepts any casing of a known level ("easy", "HARD").
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want Easy, Medium or Hard)", s)
}

// Display defaults for problems that don't carry their own decoration.
const (
	DefaultRating       = 4.2
	DefaultParticipants = 245
	DefaultAvgTime      = "15m"
	DefaultSolutions    = 32
)

// DateLayout is the publish date format used by the catalog.
const DateLayout = "2006-01-02"

// Problem represents a single practice item. Problems are reference data:
// nothing mutates them after the catalog is loaded.
type Problem struct {
	ID                  int        `json:"id" yaml:"id" validate:"gt=0"`
	Title               string     `json:"title" yaml:"title" validate:"required"`
	Description         string     `json:"description" yaml:"description"`
	Explanation         string     `json:"explanation,omitempty" yaml:"explanation"`
	SolutionExplanation string     `json:"solutionExplanation,omitempty" yaml:"solution_explanation"`
	Difficulty          Difficulty `json:"difficulty" yaml:"difficulty" validate:"oneof=Easy Medium Hard"`
	Tags                []string   `json:"tags" yaml:"tags"`
	Date                string     `json:"date" yaml:"date"`
	Solution            string     `json:"solution,omitempty" yaml:"solution"`
	Image               string     `json:"image,omitempty" yaml:"image"`
	Link                string     `json:"leetcodeLink,omitempty" yaml:"link"`

	// Optional fields. Status is reserved: no record sets it yet.
	Status   string `json:"status,omitempty" yaml:"status"`
	Attempts int    `json:"attempts,omitempty" yaml:"attempts"`

	// Display decoration, see Display.
	Rating       float64 `json:"rating,omitempty" yaml:"rating"`
	Participants int     `json:"participants,omitempty" yaml:"participants"`
	AvgTime      string  `json:"avgTime,omitempty" yaml:"avg_time"`
	Solutions    int     `json:"solutions,omitempty" yaml:"solutions"`
}

// HasTag reports exact membership of tag in p.Tags.
func (p Problem) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PublishedAt parses Date. Dates that don't parse sort as the Unix epoch.
func (p Problem) PublishedAt() time.Time {
	if t, err := time.Parse(DateLayout, p.Date); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, p.Date); err == nil {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// DisplayStats is the decoration shown next to a problem.
type DisplayStats struct {
	Rating       float64
	Participants int
	AvgTime      string
	Solutions    int
}

// Display resolves the decoration fields, falling back to the defaults.
func (p Problem) Display() DisplayStats {
	s := DisplayStats{
		Rating:       p.Rating,
		Participants: p.Participants,
		AvgTime:      p.AvgTime,
		Solutions:    p.Solutions,
	}
	if s.Rating == 0 {
		s.Rating = DefaultRating
	}
	if s.Participants == 0 {
		s.Participants = DefaultParticipants
	}
	if s.AvgTime == "" {
		s.AvgTime = DefaultAvgTime
	}
	if s.Solutions == 0 {
		s.Solutions = DefaultSolutions
	}
	return s
}
