package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LavenderBridge/problemset/internal/models"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", c.Len())
	}
	for i, p := range c.All() {
		if p.ID != i+1 {
			t.Errorf("problem %d has id %d", i, p.ID)
		}
		if p.Difficulty != models.Medium {
			t.Errorf("problem %d difficulty = %q, want Medium", p.ID, p.Difficulty)
		}
		if p.Solution == "" {
			t.Errorf("problem %d has no solution", p.ID)
		}
	}

	p, ok := c.ByID(6)
	if !ok || p.Title != "Gold Miner 2025" {
		t.Fatalf("ByID(6) = %q, %v", p.Title, ok)
	}
	if _, ok := c.ByID(99); ok {
		t.Fatal("ByID(99) found a problem")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	all := c.All()
	all[0].Title = "changed"
	all[0].Tags[0] = "changed"

	p, _ := c.ByID(1)
	if p.Title == "changed" {
		t.Fatal("mutating All() changed the catalog")
	}
}

func TestTags(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(c.Tags(), ",")
	want := "Array,Sliding Window,Tree,Binary Tree"
	if got != want {
		t.Fatalf("Tags() = %s, want %s", got, want)
	}
	if n := c.CountByTag()["Tree"]; n != 6 {
		t.Fatalf("CountByTag()[Tree] = %d, want 6", n)
	}
	if n := c.CountByDifficulty()[models.Medium]; n != 8 {
		t.Fatalf("CountByDifficulty()[Medium] = %d, want 8", n)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "- id: [1"},
		{"zero id", "- {id: 0, title: A, difficulty: Easy}"},
		{"no title", "- {id: 1, difficulty: Easy}"},
		{"bad difficulty", "- {id: 1, title: A, difficulty: Trivial}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseDuplicateID(t *testing.T) {
	data := "- {id: 1, title: A, difficulty: Easy}\n- {id: 1, title: B, difficulty: Hard}\n"
	_, err := Parse([]byte(data))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.yaml")
	data := "- {id: 3, title: Two Sum, difficulty: Easy, tags: [Array, Hash Table], date: \"2024-01-01\"}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := c.ByID(3)
	if !ok || p.Title != "Two Sum" || !p.HasTag("Hash Table") {
		t.Fatalf("ByID(3) = %+v, %v", p, ok)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
