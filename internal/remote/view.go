package remote

import (
	"context"
	"errors"
	"sync"

	"github.com/justsurfingit/placement-portal/internal/listquery"
)

// ErrSuperseded is returned by Refresh when a newer Refresh was started
// before this one finished. Its response is dropped.
var ErrSuperseded = errors.New("response superseded by a newer fetch")

// Fetcher is the read side of the collection store.
type Fetcher interface {
	FetchAll(ctx context.Context, resource string) ([]listquery.Record, error)
}

// View caches one resource for a list screen. Only the most recently
// issued fetch may replace the cache, so a slow response to an old query
// can never overwrite a newer one.
type View struct {
	store    Fetcher
	resource string

	mu      sync.Mutex
	gen     uint64
	records []listquery.Record
	err     error
}

// NewView creates an empty view of resource.
func NewView(store Fetcher, resource string) *View {
	return &View{store: store, resource: resource, records: []listquery.Record{}}
}

// Resource is the path this view fetches.
func (v *View) Resource() string { return v.resource }

// Refresh fetches the resource again. On failure the cache is emptied
// rather than left partial, and the error is returned for the caller to
// report.
func (v *View) Refresh(ctx context.Context) ([]listquery.Record, error) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	recs, err := v.store.FetchAll(ctx, v.resource)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		v.records = []listquery.Record{}
		v.err = err
		return v.records, err
	}
	if recs == nil {
		recs = []listquery.Record{}
	}
	v.records = recs
	v.err = nil
	return recs, nil
}

// Records returns the cached collection, never nil.
func (v *View) Records() []listquery.Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.records
}

// Err is the error of the last applied fetch.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Page runs a query over the cached collection.
func (v *View) Page(e *listquery.Engine[listquery.Record], q listquery.Query) listquery.PageResult[listquery.Record] {
	return e.Apply(v.Records(), q)
}
