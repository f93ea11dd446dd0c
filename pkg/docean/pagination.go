package docean

import (
	"context"
	"errors"
)

// PageLister fetches a single page of a listing. pageURL is either the
// collection path for the first request or the verbatim next-page URL taken
// from the previous response's links.
type PageLister[T any] interface {
	ListPage(ctx context.Context, pageURL string, opts *ListOptions) (*Page[T], error)
}

// PageListerFunc adapts a function to the PageLister interface.
type PageListerFunc[T any] func(ctx context.Context, pageURL string, opts *ListOptions) (*Page[T], error)

// ListPage implements PageLister.
func (f PageListerFunc[T]) ListPage(ctx context.Context, pageURL string, opts *ListOptions) (*Page[T], error) {
	return f(ctx, pageURL, opts)
}

// PageIterator lazily walks a paginated listing one item at a time. Each page
// is fetched exactly once, when the previous one is exhausted; a page whose
// links lack a next URL ends the sequence for good. The iterator is owned by
// a single caller and must not be advanced concurrently.
type PageIterator[T any] struct {
	ctx     context.Context
	lister  PageLister[T]
	path    string
	opts    *ListOptions
	items   []T
	index   int
	nextURL string
	started bool
	err     error
}

// NewPageIterator creates an iterator over the listing at path.
func NewPageIterator[T any](ctx context.Context, lister PageLister[T], path string, opts *ListOptions) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:    ctx,
		lister: lister,
		path:   path,
		opts:   opts,
	}
}

// HasNext reports whether another item may be available. Before the first
// fetch it is optimistic; after that it is exact.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.index < len(it.items) {
		return true
	}

	if !it.started {
		return true
	}

	return it.nextURL != ""
}

// Next returns the next item, fetching the next page when needed. It returns
// ErrNoMoreItems once the sequence is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	for it.index >= len(it.items) {
		if it.started && it.nextURL == "" {
			return zero, ErrNoMoreItems
		}

		err := it.fetch()
		if err != nil {
			it.err = err

			return zero, err
		}
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

// All drains the remaining items into a slice.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to each remaining item, stopping on the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// fetch loads the next page into the buffer. The first fetch uses the
// collection path and the caller's options; later fetches follow the next
// link verbatim, which already carries its own query string.
func (it *PageIterator[T]) fetch() error {
	pageURL := it.path
	opts := it.opts

	if it.started {
		pageURL = it.nextURL
		opts = nil
	}

	page, err := it.lister.ListPage(it.ctx, pageURL, opts)
	if err != nil {
		return err
	}

	it.items = page.Items
	it.index = 0
	it.nextURL = page.NextPageURL()
	it.started = true

	return nil
}

// PaginationOptions tunes the bulk pagination helpers.
type PaginationOptions struct {
	// PageSize overrides per_page on the first request.
	PageSize int
	// MaxPages bounds how many pages are fetched. Zero means no bound.
	MaxPages int
}

// DefaultPaginationOptions returns options that fetch every page at the
// largest page size the API accepts.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: MaxPerPage,
	}
}

// FetchAllPages collects every item of a listing into a single slice,
// following next links until the sequence ends or MaxPages is reached.
func FetchAllPages[T any](ctx context.Context, lister PageLister[T], path string, opts *ListOptions, paginationOpts *PaginationOptions) ([]T, error) {
	opts = applyPageSize(opts, paginationOpts)

	var all []T

	pageURL := path
	fetched := 0

	for {
		page, err := lister.ListPage(ctx, pageURL, opts)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Items...)
		fetched++

		next := page.NextPageURL()
		if next == "" {
			return all, nil
		}

		if paginationOpts != nil && paginationOpts.MaxPages > 0 && fetched >= paginationOpts.MaxPages {
			return all, nil
		}

		pageURL = next
		opts = nil
	}
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages sequentially and delivers each one on the
// returned channel. The channel is closed after the last page, after an
// error, or when ctx is cancelled. Fetching only happens as the consumer
// reads: the channel is unbuffered, so abandoning the consumer after ctx
// cancellation leaves no work behind.
func StreamPages[T any](ctx context.Context, lister PageLister[T], path string, opts *ListOptions, paginationOpts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	opts = applyPageSize(opts, paginationOpts)

	go func() {
		defer close(results)

		pageURL := path
		pageOpts := opts
		fetched := 0

		for {
			page, err := lister.ListPage(ctx, pageURL, pageOpts)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Items}:
			case <-ctx.Done():
				return
			}

			fetched++

			next := page.NextPageURL()
			if next == "" {
				return
			}

			if paginationOpts != nil && paginationOpts.MaxPages > 0 && fetched >= paginationOpts.MaxPages {
				return
			}

			pageURL = next
			pageOpts = nil
		}
	}()

	return results
}

func applyPageSize(opts *ListOptions, paginationOpts *PaginationOptions) *ListOptions {
	if paginationOpts == nil || paginationOpts.PageSize <= 0 {
		return opts
	}

	// A page size the caller already chose wins.
	if opts != nil && opts.PerPage != 0 {
		return opts
	}

	opts = opts.Clone()
	opts.PerPage = paginationOpts.PageSize

	return opts
}
