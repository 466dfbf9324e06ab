// Package pagination derives page counts, page slices, and the page-number
// window from a source list, a page size, and a 1-based current page.
package pagination

// DefaultWindow is the number of page buttons shown around the current page.
const DefaultWindow = 5

// Pager slices a source list into fixed-size pages. The zero state is not
// usable; construct with New. Invariant: 1 <= currentPage <= TotalPages().
type Pager[T any] struct {
	pageSize    int
	currentPage int
	source      []T
	allowed     []int
}

// New creates a pager with the given page size. allowed is the set of
// accepted page sizes; a size outside the set falls back to the first
// allowed value.
func New[T any](pageSize int, allowed []int) *Pager[T] {
	if len(allowed) == 0 {
		allowed = []int{6, 12, 24, 48}
	}
	p := &Pager[T]{
		pageSize:    allowed[0],
		currentPage: 1,
		allowed:     allowed,
	}
	if p.sizeAllowed(pageSize) {
		p.pageSize = pageSize
	}
	return p
}

// SetSource replaces the source list and resets to page 1. Called whenever
// the filtered list identity changes: new search, new view, new data.
func (p *Pager[T]) SetSource(list []T) {
	p.source = list
	p.currentPage = 1
}

// SetPage moves to page n, clamped to [1, TotalPages()].
func (p *Pager[T]) SetPage(n int) {
	total := p.TotalPages()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	p.currentPage = n
}

// NextPage advances one page, clamped at the last page.
func (p *Pager[T]) NextPage() { p.SetPage(p.currentPage + 1) }

// PrevPage goes back one page, clamped at page 1.
func (p *Pager[T]) PrevPage() { p.SetPage(p.currentPage - 1) }

// SetPageSize switches to page size n and resets to page 1. Sizes outside
// the allowed set are ignored; returns whether the size was applied.
func (p *Pager[T]) SetPageSize(n int) bool {
	if !p.sizeAllowed(n) {
		return false
	}
	p.pageSize = n
	p.currentPage = 1
	return true
}

// CyclePageSize switches to the next size in the allowed set, wrapping
// around, and returns it.
func (p *Pager[T]) CyclePageSize() int {
	for i, s := range p.allowed {
		if s == p.pageSize {
			next := p.allowed[(i+1)%len(p.allowed)]
			p.SetPageSize(next)
			return next
		}
	}
	p.SetPageSize(p.allowed[0])
	return p.pageSize
}

// CurrentSlice returns the records visible on the current page, clamped to
// the list bounds. Never padded, never out of range.
func (p *Pager[T]) CurrentSlice() []T {
	start := (p.currentPage - 1) * p.pageSize
	if start >= len(p.source) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.source) {
		end = len(p.source)
	}
	return p.source[start:end]
}

// Page returns the 1-based current page.
func (p *Pager[T]) Page() int { return p.currentPage }

// PageSize returns the current page size.
func (p *Pager[T]) PageSize() int { return p.pageSize }

// Total returns the length of the source list.
func (p *Pager[T]) Total() int { return len(p.source) }

// TotalPages returns the page count, never less than 1.
func (p *Pager[T]) TotalPages() int {
	total := (len(p.source) + p.pageSize - 1) / p.pageSize
	if total < 1 {
		total = 1
	}
	return total
}

// Needed reports whether pagination controls should be shown at all.
func (p *Pager[T]) Needed() bool { return p.TotalPages() > 1 }

// Window returns the inclusive range of page numbers to render as buttons:
// up to maxButtons pages centered on the current page, shifted to stay
// within [1, TotalPages()].
func (p *Pager[T]) Window(maxButtons int) (start, end int) {
	if maxButtons < 1 {
		maxButtons = DefaultWindow
	}
	total := p.TotalPages()
	start = p.currentPage - 2
	if start < 1 {
		start = 1
	}
	end = start + maxButtons - 1
	if end > total {
		end = total
	}
	return start, end
}

// AllowedSizes returns the accepted page sizes for display in the footer.
func (p *Pager[T]) AllowedSizes() []int { return p.allowed }

func (p *Pager[T]) sizeAllowed(n int) bool {
	for _, s := range p.allowed {
		if n == s {
			return true
		}
	}
	return false
}
