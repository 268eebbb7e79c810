// Package clipboard copies solution listings to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/LavenderBridge/problemset/internal/models"
	"github.com/atotto/clipboard"
)

// ErrNoSolution is returned for problems without a solution listing.
var ErrNoSolution = errors.New("problem has no solution")

// Writer is a write-only clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// CopySolution writes p's solution verbatim.
func CopySolution(w Writer, p models.Problem) error {
	if p.Solution == "" {
		return fmt.Errorf("%w: %d", ErrNoSolution, p.ID)
	}
	if err := w.WriteAll(p.Solution); err != nil {
		return fmt.Errorf("cannot copy solution: %w", err)
	}
	return nil
}
