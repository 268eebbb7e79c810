// Package paginate slices ordered results into pages and computes the page
// number window shown under a list.
package paginate

const (
	// DefaultPageSize is used when a caller passes a size below 1.
	DefaultPageSize = 9
	// MaxVisiblePages is the width of the page number window.
	MaxVisiblePages = 5
)

// Page is one slice of a result set.
type Page[T any] struct {
	Items      []T
	Number     int // 1-indexed, after clamping
	Size       int
	Total      int // items across all pages
	TotalPages int
}

// Paginate returns page number page of items. Out-of-range pages are clamped
// to the first or last page; an empty input has zero pages and reports page 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	p := Page[T]{
		Items:      []T{},
		Number:     page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
	if totalPages == 0 {
		return p
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	p.Items = items[start:end:end]
	return p
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Window describes the navigation controls for a page.
type Window struct {
	Current int
	Total   int
	Pages   []int // consecutive page numbers, at most MaxVisiblePages

	ShowFirst        bool // page 1 sits outside Pages
	LeadingEllipsis  bool
	TrailingEllipsis bool
	ShowLast         bool // the last page sits outside Pages

	PrevDisabled bool
	NextDisabled bool
}

// NewWindow centers up to MaxVisiblePages numbers on current, shifting the
// window at either end instead of running past the range.
func NewWindow(current, total int) Window {
	w := Window{Current: current, Total: total}
	if total < 1 {
		w.PrevDisabled = true
		w.NextDisabled = true
		return w
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	w.Current = current

	var start, end int
	if total <= MaxVisiblePages {
		start, end = 1, total
	} else {
		before := MaxVisiblePages / 2
		after := (MaxVisiblePages+1)/2 - 1
		switch {
		case current <= before:
			start, end = 1, MaxVisiblePages
		case current+after >= total:
			start, end = total-MaxVisiblePages+1, total
		default:
			start, end = current-before, current+after
		}
	}

	for i := start; i <= end; i++ {
		w.Pages = append(w.Pages, i)
	}
	w.ShowFirst = start > 1
	w.LeadingEllipsis = start > 2
	w.ShowLast = end < total
	w.TrailingEllipsis = end < total-1
	w.PrevDisabled = current == 1
	w.NextDisabled = current == total
	return w
}

// Prev is the page the previous control leads to. It stays put on page 1.
func (w Window) Prev() int {
	if w.PrevDisabled {
		return w.Current
	}
	return w.Current - 1
}

// Next is the page the next control leads to. It stays put on the last page.
func (w Window) Next() int {
	if w.NextDisabled {
		return w.Current
	}
	return w.Current + 1
}
