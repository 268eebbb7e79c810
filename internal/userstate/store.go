package userstate

import (
	"encoding/json"
	"sync"

	"github.com/LavenderBridge/problemset/internal/models"
	"github.com/sirupsen/logrus"
)

// Storage keys. Each piece of state is stored and parsed independently.
const (
	KeyBookmarks = "problemBookmarks"
	KeyRatings   = "problemRatings"
	KeyRecent    = "recentlyViewed"
)

// Storage is durable string key/value storage.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Store owns the user's State. Every mutation is persisted right away on a
// best-effort basis: write failures are logged and otherwise ignored, and
// the in-memory state stays authoritative.
type Store struct {
	mu      sync.Mutex
	state   State
	storage Storage
	log     logrus.FieldLogger
}

// Load reads the saved state. A missing or unreadable key yields that
// piece's empty value without affecting the other two.
func Load(storage Storage, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Store{state: Empty(), storage: storage, log: log}

	var bookmarks []int
	if s.read(KeyBookmarks, &bookmarks) {
		for _, id := range bookmarks {
			s.state.bookmarks[id] = struct{}{}
		}
	}

	var ratings map[int]int
	if s.read(KeyRatings, &ratings) && ratings != nil {
		s.state.ratings = ratings
	}

	var recent []models.Problem
	if s.read(KeyRecent, &recent) {
		// Replay oldest first so duplicates collapse onto their latest view.
		for i := len(recent) - 1; i >= 0; i-- {
			s.state = s.state.RecordView(recent[i])
		}
	}

	return s
}

func (s *Store) read(key string, v interface{}) bool {
	raw, ok, err := s.storage.Get(key)
	if err != nil {
		s.log.WithFields(logrus.Fields{"key": key, "error": err}).Warn("cannot read saved state")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.log.WithFields(logrus.Fields{"key": key, "error": err}).Warn("discarding malformed saved state")
		return false
	}
	return true
}

func (s *Store) write(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.WithFields(logrus.Fields{"key": key, "error": err}).Warn("cannot encode state")
		return
	}
	if err := s.storage.Set(key, string(raw)); err != nil {
		s.log.WithFields(logrus.Fields{"key": key, "error": err}).Warn("cannot save state")
		return
	}
	s.log.WithField("key", key).Debug("state saved")
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) IsBookmarked(id int) bool {
	return s.State().IsBookmarked(id)
}

func (s *Store) Bookmarks() []int {
	return s.State().Bookmarks()
}

func (s *Store) Rating(id int) int {
	return s.State().Rating(id)
}

func (s *Store) Ratings() map[int]int {
	return s.State().Ratings()
}

func (s *Store) RecentlyViewed() []models.Problem {
	return s.State().RecentlyViewed()
}

// ToggleBookmark flips the bookmark for id and reports whether it is now set.
func (s *Store) ToggleBookmark(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.ToggleBookmark(id)
	s.write(KeyBookmarks, s.state.Bookmarks())
	return s.state.IsBookmarked(id)
}

// SetRating records the user's rating for id, replacing any earlier one.
func (s *Store) SetRating(id, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.SetRating(id, value)
	s.write(KeyRatings, s.state.ratings)
}

// RecordView puts p at the front of the recently viewed list.
func (s *Store) RecordView(p models.Problem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.RecordView(p)
	s.write(KeyRecent, s.state.recent)
}
