package listquery

// Empty says why a page has no items.
type Empty string

const (
	// EmptyNone means the page has items.
	EmptyNone Empty = ""
	// EmptyNoRecords means the collection itself is empty.
	EmptyNoRecords Empty = "no_records"
	// EmptyNoMatches means records exist but none pass the current filters.
	EmptyNoMatches Empty = "no_matches"
)

// DefaultWindow is how many numbered page buttons a pager shows.
const DefaultWindow = 5

// PageResult is one page of a filtered collection plus what a pager needs
// to draw itself.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	// From and To are the 1-based positions of the first and last item on
	// this page ("Showing 11 to 20 of 42"). Both are 0 on an empty page.
	From int `json:"from"`
	To   int `json:"to"`

	Empty Empty `json:"empty,omitempty"`
	// ActiveFilters counts non-empty filters and the search term.
	ActiveFilters int `json:"activeFilters"`
	// ClearFilters is set whenever any filter is active, so the view keeps a
	// clear-filters action visible even when the page is empty.
	ClearFilters bool `json:"clearFilters"`
}

func paginate[T any](matched []T, q Query, collectionSize int) PageResult[T] {
	total := len(matched)
	size := q.PageSize
	// Divide first: total + size overflows for very large sizes.
	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}

	page := q.Page
	if page > totalPages {
		page = 1
	}

	start := (page - 1) * size
	end := min(start+size, total)
	if start > total {
		start = total
	}

	res := PageResult[T]{
		Items:         matched[start:end:end],
		TotalItems:    total,
		TotalPages:    totalPages,
		Page:          page,
		PageSize:      size,
		ActiveFilters: q.ActiveFilters(),
	}
	res.ClearFilters = res.ActiveFilters > 0
	if total > 0 {
		res.From = start + 1
		res.To = end
	}

	switch {
	case total > 0:
		res.Empty = EmptyNone
	case collectionSize == 0:
		res.Empty = EmptyNoRecords
	default:
		res.Empty = EmptyNoMatches
	}
	return res
}

// HasNext reports whether a later page exists.
func (p PageResult[T]) HasNext() bool { return p.Page < p.TotalPages }

// HasPrev reports whether an earlier page exists.
func (p PageResult[T]) HasPrev() bool { return p.Page > 1 }

// Window returns the page numbers to show as buttons, at most size of them,
// keeping the current page centred once it is away from either end. A result
// that fits on one page needs no pager and yields nil.
func (p PageResult[T]) Window(size int) []int {
	return Window(p.Page, p.TotalPages, size)
}

// Window is PageResult.Window for callers that only hold the numbers.
func Window(page, totalPages, size int) []int {
	if totalPages <= 1 || size < 1 {
		return nil
	}
	n := min(size, totalPages)
	half := size / 2

	var first int
	switch {
	case totalPages <= size, page <= half+1:
		first = 1
	case page >= totalPages-half:
		first = totalPages - n + 1
	default:
		first = page - half
	}

	out := make([]int, n)
	for i := range out {
		out[i] = first + i
	}
	return out
}

// Map converts the items of a page, keeping the metadata.
func Map[T, U any](p PageResult[T], fn func(T) U) PageResult[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return PageResult[U]{
		Items:         items,
		TotalItems:    p.TotalItems,
		TotalPages:    p.TotalPages,
		Page:          p.Page,
		PageSize:      p.PageSize,
		From:          p.From,
		To:            p.To,
		Empty:         p.Empty,
		ActiveFilters: p.ActiveFilters,
		ClearFilters:  p.ClearFilters,
	}
}
