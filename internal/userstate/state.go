// Package userstate keeps the user's bookmarks, ratings and view history.
//
// State values are immutable: the update functions return a new State and
// leave the receiver untouched. Store owns the current State and writes each
// change through to durable storage.
package userstate

import (
	"sort"

	"github.com/LavenderBridge/problemset/internal/models"
)

// MaxRecent bounds the recently viewed list.
const MaxRecent = 5

// State is the user's view state.
type State struct {
	bookmarks map[int]struct{}
	ratings   map[int]int
	recent    []models.Problem
}

// Empty returns a state with no bookmarks, ratings or history.
func Empty() State {
	return State{
		bookmarks: map[int]struct{}{},
		ratings:   map[int]int{},
		recent:    []models.Problem{},
	}
}

func (s State) IsBookmarked(id int) bool {
	_, ok := s.bookmarks[id]
	return ok
}

// Bookmarks lists bookmarked ids in ascending order.
func (s State) Bookmarks() []int {
	ids := make([]int, 0, len(s.bookmarks))
	for id := range s.bookmarks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Rating returns the user's rating for id, or 0 when unrated.
func (s State) Rating(id int) int {
	return s.ratings[id]
}

// Ratings returns a copy of the rating map.
func (s State) Ratings() map[int]int {
	out := make(map[int]int, len(s.ratings))
	for id, v := range s.ratings {
		out[id] = v
	}
	return out
}

// RecentlyViewed returns the history, most recent first.
func (s State) RecentlyViewed() []models.Problem {
	out := make([]models.Problem, len(s.recent))
	copy(out, s.recent)
	return out
}

// ToggleBookmark flips membership of id.
func (s State) ToggleBookmark(id int) State {
	next := make(map[int]struct{}, len(s.bookmarks)+1)
	for k := range s.bookmarks {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	s.bookmarks = next
	return s
}

// SetRating overwrites the rating for id. Values are not range checked here.
func (s State) SetRating(id, value int) State {
	next := s.Ratings()
	next[id] = value
	s.ratings = next
	return s
}

// RecordView moves p to the front of the history, dropping any earlier entry
// for the same id and trimming the tail to MaxRecent.
func (s State) RecordView(p models.Problem) State {
	next := make([]models.Problem, 0, MaxRecent)
	next = append(next, p)
	for _, q := range s.recent {
		if q.ID != p.ID {
			next = append(next, q)
		}
	}
	if len(next) > MaxRecent {
		next = next[:MaxRecent]
	}
	s.recent = next
	return s
}
