package userstate

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/LavenderBridge/problemset/internal/db"
	"github.com/LavenderBridge/problemset/internal/models"
	"github.com/sirupsen/logrus"
)

type memStorage struct {
	data     map[string]string
	failGet  map[string]bool
	failSet  bool
	setCalls int
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string]string{}, failGet: map[string]bool{}}
}

func (m *memStorage) Get(key string) (string, bool, error) {
	if m.failGet[key] {
		return "", false, errors.New("disk on fire")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStorage) Set(key, value string) error {
	m.setCalls++
	if m.failSet {
		return errors.New("quota exceeded")
	}
	m.data[key] = value
	return nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func problem(id int) models.Problem {
	return models.Problem{ID: id, Title: fmt.Sprintf("Problem %d", id), Difficulty: models.Medium}
}

func recentIDs(s *Store) []int {
	var ids []int
	for _, p := range s.RecentlyViewed() {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestLoadEmpty(t *testing.T) {
	s := Load(newMemStorage(), quietLogger())
	if len(s.Bookmarks()) != 0 || len(s.Ratings()) != 0 || len(s.RecentlyViewed()) != 0 {
		t.Fatal("fresh store is not empty")
	}
}

func TestLoadIndependentKeys(t *testing.T) {
	m := newMemStorage()
	m.data[KeyBookmarks] = "[1, 4"
	m.data[KeyRatings] = `{"2": 5, "7": 3}`
	m.data[KeyRecent] = `[{"id": 6, "title": "Gold Miner 2025", "difficulty": "Medium"}]`

	s := Load(m, quietLogger())
	if len(s.Bookmarks()) != 0 {
		t.Fatalf("corrupt bookmarks loaded as %v", s.Bookmarks())
	}
	if s.Rating(2) != 5 || s.Rating(7) != 3 {
		t.Fatalf("ratings = %v", s.Ratings())
	}
	if fmt.Sprint(recentIDs(s)) != "[6]" {
		t.Fatalf("recent = %v", recentIDs(s))
	}
}

func TestLoadWrongShapeAndReadError(t *testing.T) {
	m := newMemStorage()
	m.data[KeyBookmarks] = `[2, 3]`
	m.data[KeyRatings] = `["not", "a", "map"]`
	m.failGet[KeyRecent] = true

	s := Load(m, quietLogger())
	if fmt.Sprint(s.Bookmarks()) != "[2 3]" {
		t.Fatalf("bookmarks = %v", s.Bookmarks())
	}
	if len(s.Ratings()) != 0 || len(s.RecentlyViewed()) != 0 {
		t.Fatal("bad keys did not fall back to empty")
	}

	// Fallbacks are usable.
	s.SetRating(1, 4)
	s.RecordView(problem(1))
	if s.Rating(1) != 4 || len(s.RecentlyViewed()) != 1 {
		t.Fatal("store unusable after fallback")
	}
}

func TestLoadRecentDropsDuplicates(t *testing.T) {
	m := newMemStorage()
	m.data[KeyRecent] = `[{"id": 1}, {"id": 1}, {"id": 2}, {"id": 3}, {"id": 2}, {"id": 4}, {"id": 5}, {"id": 6}]`

	s := Load(m, quietLogger())
	if got := fmt.Sprint(recentIDs(s)); got != "[1 2 3 4 5]" {
		t.Fatalf("recent = %s, want [1 2 3 4 5]", got)
	}
}

func TestToggleBookmarkIdempotent(t *testing.T) {
	m := newMemStorage()
	s := Load(m, quietLogger())
	s.ToggleBookmark(5)
	before := fmt.Sprint(s.Bookmarks())

	if !s.ToggleBookmark(3) {
		t.Fatal("first toggle should set the bookmark")
	}
	if s.ToggleBookmark(3) {
		t.Fatal("second toggle should clear the bookmark")
	}
	if got := fmt.Sprint(s.Bookmarks()); got != before {
		t.Fatalf("bookmarks = %s, want %s", got, before)
	}
	if m.data[KeyBookmarks] != "[5]" {
		t.Fatalf("persisted bookmarks = %s", m.data[KeyBookmarks])
	}
}

func TestBookmarkSurvivesReload(t *testing.T) {
	m := newMemStorage()
	Load(m, quietLogger()).ToggleBookmark(3)

	s := Load(m, quietLogger())
	if !s.IsBookmarked(3) {
		t.Fatal("bookmark 3 lost on reload")
	}
}

func TestRatingLastWriteWins(t *testing.T) {
	m := newMemStorage()
	s := Load(m, quietLogger())
	s.SetRating(2, 5)
	s.SetRating(2, 2)
	if s.Rating(2) != 2 {
		t.Fatalf("Rating(2) = %d, want 2", s.Rating(2))
	}
	if got := Load(m, quietLogger()).Rating(2); got != 2 {
		t.Fatalf("reloaded Rating(2) = %d, want 2", got)
	}
	if s.Rating(9) != 0 {
		t.Fatal("unrated problem should report 0")
	}
}

func TestRecordViewBound(t *testing.T) {
	m := newMemStorage()
	s := Load(m, quietLogger())
	for id := 1; id <= 6; id++ {
		s.RecordView(problem(id))
	}
	if got := fmt.Sprint(recentIDs(s)); got != "[6 5 4 3 2]" {
		t.Fatalf("recent = %s, want [6 5 4 3 2]", got)
	}

	s.RecordView(problem(4))
	if got := fmt.Sprint(recentIDs(s)); got != "[4 6 5 3 2]" {
		t.Fatalf("recent after revisit = %s, want [4 6 5 3 2]", got)
	}

	if got := fmt.Sprint(recentIDs(Load(m, quietLogger()))); got != "[4 6 5 3 2]" {
		t.Fatalf("reloaded recent = %s", got)
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	m := newMemStorage()
	m.failSet = true
	s := Load(m, quietLogger())

	s.ToggleBookmark(1)
	s.SetRating(1, 3)
	s.RecordView(problem(1))

	if m.setCalls != 3 {
		t.Fatalf("Set called %d times, want one per mutation", m.setCalls)
	}
	if !s.IsBookmarked(1) || s.Rating(1) != 3 || len(s.RecentlyViewed()) != 1 {
		t.Fatal("in-memory state lost after failed writes")
	}
}

func TestStateIsImmutable(t *testing.T) {
	a := Empty()
	b := a.ToggleBookmark(1).SetRating(1, 5).RecordView(problem(1))
	if a.IsBookmarked(1) || a.Rating(1) != 0 || len(a.RecentlyViewed()) != 0 {
		t.Fatal("update functions modified the input state")
	}
	if !b.IsBookmarked(1) || b.Rating(1) != 5 || len(b.RecentlyViewed()) != 1 {
		t.Fatal("updates missing from the new state")
	}
}

func TestStoreWithSQLite(t *testing.T) {
	sqlite, err := db.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer sqlite.Close()

	s := Load(sqlite, quietLogger())
	s.ToggleBookmark(3)
	s.SetRating(2, 5)
	s.RecordView(problem(6))

	again := Load(sqlite, quietLogger())
	if !again.IsBookmarked(3) || again.Rating(2) != 5 || fmt.Sprint(recentIDs(again)) != "[6]" {
		t.Fatal("state did not round-trip through sqlite")
	}
}
