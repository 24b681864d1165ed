// Package listquery turns an in-memory collection and a Query into one page
// of results. It backs every list view: the REST list endpoints, the CLI,
// and any client that already holds the full collection.
package listquery

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Getter returns the named field of a record, or nil when it is absent.
type Getter[T any] func(rec T, field string) any

// Range declares a numeric range filter. The bounds arrive as two filter
// keys (for example "minSalary" and "maxSalary") that constrain one field.
type Range struct {
	Field string
	Min   string
	Max   string
}

// Config describes one view: how to read fields and which of them the
// search box, the dropdowns and the range inputs look at.
type Config[T any] struct {
	Get          Getter[T]
	SearchFields []string
	// FilterFields maps a filter key to the record field it compares against,
	// e.g. "company" -> "company.id". Unlisted keys compare the field of the
	// same name.
	FilterFields map[string]string
	Ranges       []Range
}

// Engine applies queries for a single Config. It holds no per-query state
// and is safe for concurrent use.
type Engine[T any] struct {
	cfg      Config[T]
	rangeFor map[string]int
}

// New builds an Engine. A nil Getter matches nothing on search or filters.
func New[T any](cfg Config[T]) *Engine[T] {
	if cfg.Get == nil {
		cfg.Get = func(T, string) any { return nil }
	}
	e := &Engine[T]{cfg: cfg, rangeFor: make(map[string]int, 2*len(cfg.Ranges))}
	for i, r := range cfg.Ranges {
		if r.Min != "" {
			e.rangeFor[r.Min] = i
		}
		if r.Max != "" {
			e.rangeFor[r.Max] = i
		}
	}
	return e
}

// NewRecordEngine is New for schema-less records with dotted field paths.
func NewRecordEngine(cfg Config[Record]) *Engine[Record] {
	if cfg.Get == nil {
		cfg.Get = Field
	}
	return New(cfg)
}

// Apply filters, sorts and paginates collection. It never fails: bad paging
// values are coerced and values that cannot be compared simply do not match.
func (e *Engine[T]) Apply(collection []T, q Query) PageResult[T] {
	q = q.normalized()
	pred := e.predicate(q)

	matched := make([]T, 0, len(collection))
	for _, rec := range collection {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}

	if field, desc := sortKey(q.Sort); field != "" {
		get := e.cfg.Get
		slices.SortStableFunc(matched, func(a, b T) int {
			va, vb := get(a, field), get(b, field)
			c := compareValues(va, vb)
			// Missing values stay last in either direction.
			if desc && present(va) && present(vb) {
				return -c
			}
			return c
		})
	}

	return paginate(matched, q, len(collection))
}

// Matches reports whether a single record passes the query's search and
// filters, ignoring paging.
func (e *Engine[T]) Matches(rec T, q Query) bool {
	return e.predicate(q)(rec)
}

func (e *Engine[T]) predicate(q Query) func(T) bool {
	var preds []func(T) bool

	if q.Search != "" {
		term := strings.ToLower(q.Search)
		fields := e.cfg.SearchFields
		get := e.cfg.Get
		preds = append(preds, func(rec T) bool {
			for _, f := range fields {
				s, ok := text(get(rec, f))
				if ok && strings.Contains(strings.ToLower(s), term) {
					return true
				}
			}
			return false
		})
	}

	seenRange := map[int]bool{}
	for key, want := range q.Filters {
		if idx, ok := e.rangeFor[key]; ok {
			if seenRange[idx] {
				continue
			}
			seenRange[idx] = true
			r := e.cfg.Ranges[idx]
			if p := e.rangePredicate(r, q.Filters[r.Min], q.Filters[r.Max]); p != nil {
				preds = append(preds, p)
			}
			continue
		}
		if want == "" {
			continue
		}
		field := key
		if mapped, ok := e.cfg.FilterFields[key]; ok && mapped != "" {
			field = mapped
		}
		get := e.cfg.Get
		preds = append(preds, func(rec T) bool {
			got, ok := text(get(rec, field))
			return ok && got == want
		})
	}

	return func(rec T) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// rangePredicate returns nil when both bounds are empty.
func (e *Engine[T]) rangePredicate(r Range, minRaw, maxRaw string) func(T) bool {
	if minRaw == "" && maxRaw == "" {
		return nil
	}
	lo := parseBound(minRaw, 0)
	hi := parseBound(maxRaw, math.Inf(1))
	get := e.cfg.Get
	return func(rec T) bool {
		n, ok := number(get(rec, r.Field))
		return ok && n >= lo && n <= hi
	}
}

func parseBound(raw string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) {
		return fallback
	}
	return f
}

func sortKey(s string) (field string, desc bool) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return rest, true
	}
	return s, false
}

func present(v any) bool {
	if _, ok := number(v); ok {
		return true
	}
	_, ok := text(v)
	return ok
}
