package paginate

import (
	"fmt"
	"math"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginateScenario(t *testing.T) {
	p := Paginate(seq(8), 3, 3)
	if p.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", p.TotalPages)
	}
	if fmt.Sprint(p.Items) != "[7 8]" {
		t.Fatalf("page 3 = %v, want [7 8]", p.Items)
	}
	if p.HasNext() || !p.HasPrev() {
		t.Fatalf("HasPrev/HasNext = %v/%v", p.HasPrev(), p.HasNext())
	}
}

func TestPaginateCoverage(t *testing.T) {
	for n := 0; n <= 20; n++ {
		for size := 1; size <= 7; size++ {
			items := seq(n)
			first := Paginate(items, 1, size)

			var all []int
			for page := 1; page <= first.TotalPages; page++ {
				all = append(all, Paginate(items, page, size).Items...)
			}
			if fmt.Sprint(all) != fmt.Sprint(items[:len(all)]) || len(all) != n {
				t.Fatalf("n=%d size=%d: pages concatenate to %v", n, size, all)
			}
		}
	}
}

func TestPaginateClamp(t *testing.T) {
	items := seq(10)
	tests := []struct {
		page, want int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{4, 4},
		{5, 4},
		{100, 4},
	}
	for _, tt := range tests {
		p := Paginate(items, tt.page, 3)
		if p.Number != tt.want {
			t.Errorf("page %d clamped to %d, want %d", tt.page, p.Number, tt.want)
		}
		if fmt.Sprint(p.Items) != fmt.Sprint(Paginate(items, tt.want, 3).Items) {
			t.Errorf("page %d items = %v", tt.page, p.Items)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]string{}, 2, 5)
	if p.TotalPages != 0 || len(p.Items) != 0 || p.Number != 1 {
		t.Fatalf("empty page = %+v", p)
	}
	if p.HasPrev() || p.HasNext() {
		t.Fatal("empty page has navigation")
	}
}

func TestPaginateDefaultSize(t *testing.T) {
	p := Paginate(seq(20), 1, 0)
	if p.Size != DefaultPageSize || len(p.Items) != DefaultPageSize || p.TotalPages != 3 {
		t.Fatalf("default size page = %+v", p)
	}
}

func TestPaginateHugePageSize(t *testing.T) {
	p := Paginate(seq(3), 1, math.MaxInt)
	if p.TotalPages != 1 || p.Number != 1 || fmt.Sprint(p.Items) != "[1 2 3]" {
		t.Fatalf("page = %+v", p)
	}
	if p.HasNext() {
		t.Fatal("single page reports a next page")
	}
}

func TestPaginateItemsDoNotAlias(t *testing.T) {
	items := seq(6)
	p := Paginate(items, 1, 3)
	p.Items = append(p.Items, 99)
	if items[3] != 4 {
		t.Fatal("appending to a page overwrote the next page")
	}
}

func TestNewWindow(t *testing.T) {
	tests := []struct {
		current, total int
		pages          string
		first, lead    bool
		trail, last    bool
	}{
		{1, 3, "[1 2 3]", false, false, false, false},
		{2, 5, "[1 2 3 4 5]", false, false, false, false},
		{1, 10, "[1 2 3 4 5]", false, false, true, true},
		{3, 10, "[1 2 3 4 5]", false, false, true, true},
		{4, 10, "[2 3 4 5 6]", true, false, true, true},
		{5, 10, "[3 4 5 6 7]", true, true, true, true},
		{7, 10, "[5 6 7 8 9]", true, true, false, true},
		{8, 10, "[6 7 8 9 10]", true, true, false, false},
		{10, 10, "[6 7 8 9 10]", true, true, false, false},
		{4, 6, "[2 3 4 5 6]", true, false, false, false},
	}
	for _, tt := range tests {
		w := NewWindow(tt.current, tt.total)
		if fmt.Sprint(w.Pages) != tt.pages {
			t.Errorf("NewWindow(%d, %d).Pages = %v, want %s", tt.current, tt.total, w.Pages, tt.pages)
		}
		if w.ShowFirst != tt.first || w.LeadingEllipsis != tt.lead ||
			w.TrailingEllipsis != tt.trail || w.ShowLast != tt.last {
			t.Errorf("NewWindow(%d, %d) = first:%v lead:%v trail:%v last:%v", tt.current, tt.total,
				w.ShowFirst, w.LeadingEllipsis, w.TrailingEllipsis, w.ShowLast)
		}
	}
}

func TestWindowPrevNext(t *testing.T) {
	w := NewWindow(1, 4)
	if !w.PrevDisabled || w.Prev() != 1 || w.Next() != 2 {
		t.Fatalf("first page: %+v", w)
	}
	w = NewWindow(4, 4)
	if !w.NextDisabled || w.Next() != 4 || w.Prev() != 3 {
		t.Fatalf("last page: %+v", w)
	}
	w = NewWindow(0, 0)
	if len(w.Pages) != 0 || !w.PrevDisabled || !w.NextDisabled {
		t.Fatalf("no pages: %+v", w)
	}
}
