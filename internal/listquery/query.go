package listquery

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize matches the ten rows every dashboard table shows.
const DefaultPageSize = 10

var (
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size must be at least 1")
)

// Query is the user-controlled part of a list view: the search box, the
// filter dropdowns, the sort key and the pagination controls.
type Query struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters"`
	// Sort names the field to order by. A leading "-" sorts descending.
	Sort     string `json:"sort,omitempty"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// NewQuery returns the query a view starts with when it mounts.
func NewQuery() Query {
	return Query{
		Filters:  map[string]string{},
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Validate reports malformed paging values. Apply never fails on them; it
// coerces instead, so callers only use this for logging or 400 responses.
func (q Query) Validate() error {
	var errs []error
	if q.Page < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidPage, q.Page))
	}
	if q.PageSize < 1 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidPageSize, q.PageSize))
	}
	return errors.Join(errs...)
}

// ActiveFilters counts the constraints currently narrowing the list,
// the search term included.
func (q Query) ActiveFilters() int {
	n := 0
	if q.Search != "" {
		n++
	}
	for _, v := range q.Filters {
		if v != "" {
			n++
		}
	}
	return n
}

func (q Query) normalized() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 1
	}
	return q
}

// Patch is a partial Query. Nil fields are left as they are.
type Patch struct {
	Search *string
	// Filters replaces the whole filter set when non-nil.
	Filters  map[string]string
	Sort     *string
	Page     *int
	PageSize *int
}

// ChangeQuery merges patch into current and returns the new query. Changing
// anything other than the page sends the user back to page 1. Setting the
// filters always counts as a change, even to the same values; re-sending the
// same search term does not.
func ChangeQuery(current Query, patch Patch) Query {
	next := current
	next.Filters = maps.Clone(current.Filters)
	if next.Filters == nil {
		next.Filters = map[string]string{}
	}

	changed := false
	if patch.Search != nil && *patch.Search != current.Search {
		next.Search = *patch.Search
		changed = true
	}
	if patch.Filters != nil {
		next.Filters = maps.Clone(patch.Filters)
		changed = true
	}
	if patch.Sort != nil && *patch.Sort != current.Sort {
		next.Sort = *patch.Sort
		changed = true
	}
	if patch.PageSize != nil && *patch.PageSize != current.PageSize {
		next.PageSize = *patch.PageSize
		changed = true
	}

	switch {
	case changed:
		next.Page = 1
	case patch.Page != nil:
		next.Page = *patch.Page
	}
	return next.normalized()
}

// WithFilter sets a single filter value, keeping the others.
func (q Query) WithFilter(key, value string) Query {
	filters := maps.Clone(q.Filters)
	if filters == nil {
		filters = map[string]string{}
	}
	filters[key] = value
	return ChangeQuery(q, Patch{Filters: filters})
}

// WithSearch sets the search term.
func (q Query) WithSearch(term string) Query {
	return ChangeQuery(q, Patch{Search: &term})
}

// WithPage moves to another page without touching anything else.
func (q Query) WithPage(page int) Query {
	return ChangeQuery(q, Patch{Page: &page})
}

// ClearFilters drops the search term and every filter.
func (q Query) ClearFilters() Query {
	empty := ""
	return ChangeQuery(q, Patch{Search: &empty, Filters: map[string]string{}})
}

// Reserved query-string keys. Other keys are filters when accepted.
const (
	ParamSearch   = "search"
	ParamSort     = "sort"
	ParamPage     = "page"
	ParamPageSize = "pageSize"
)

// IsReserved reports whether key is one of the paging, sort or search
// parameters.
func IsReserved(key string) bool {
	switch key {
	case ParamSearch, ParamSort, ParamPage, ParamPageSize:
		return true
	}
	return false
}

// ParseValues builds a Query from URL query parameters. Unparseable numbers
// fall back to the defaults. Non-reserved keys become filters only if accept
// allows them; a nil accept takes every key.
func ParseValues(values url.Values, accept func(key string) bool) Query {
	q := NewQuery()
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		v := vals[0]
		switch key {
		case ParamSearch:
			q.Search = v
		case ParamSort:
			q.Sort = v
		case ParamPage:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				q.Page = n
			}
		case ParamPageSize:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				q.PageSize = n
			}
		default:
			if accept == nil || accept(key) {
				q.Filters[key] = v
			}
		}
	}
	return q
}

// Values is the inverse of ParseValues. Empty filters are omitted.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set(ParamSearch, q.Search)
	}
	if q.Sort != "" {
		v.Set(ParamSort, q.Sort)
	}
	v.Set(ParamPage, strconv.Itoa(q.Page))
	v.Set(ParamPageSize, strconv.Itoa(q.PageSize))
	for k, f := range q.Filters {
		if f != "" {
			v.Set(k, f)
		}
	}
	return v
}
