package query

import (
	"fmt"
	"strings"

	"github.com/LavenderBridge/problemset/internal/models"
)

// AllValue is the user-facing word that disables a filter dimension.
const AllValue = "All"

// Option is a filter dimension: either Any (disabled) or Exactly a value.
// The zero value is Any.
type Option[T comparable] struct {
	value T
	set   bool
}

func Any[T comparable]() Option[T] {
	return Option[T]{}
}

func Exactly[T comparable](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// Get returns the value and whether the filter is active.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Option[T]) IsAny() bool {
	return !o.set
}

// Matches reports whether v passes the filter.
func (o Option[T]) Matches(v T) bool {
	return !o.set || o.value == v
}

func (o Option[T]) String() string {
	if !o.set {
		return AllValue
	}
	return fmt.Sprint(o.value)
}

// ParseOption turns CLI input into a string filter. Empty input and "All"
// (any casing) disable the dimension.
func ParseOption(s string) Option[string] {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AllValue) {
		return Any[string]()
	}
	return Exactly(s)
}

// ParseDifficulty is ParseOption for the difficulty dimension.
func ParseDifficulty(s string) (Option[models.Difficulty], error) {
	o := ParseOption(s)
	v, ok := o.Get()
	if !ok {
		return Any[models.Difficulty](), nil
	}
	d, err := models.ParseDifficulty(v)
	if err != nil {
		return Option[models.Difficulty]{}, fmt.Errorf("%w %q (want All, Easy, Medium or Hard)", ErrUnknownDifficulty, v)
	}
	return Exactly(d), nil
}
