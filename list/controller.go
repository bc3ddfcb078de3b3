// Package list holds the paginated collection state behind every management
// screen: current page, filter, loading phase, and the bookkeeping that
// keeps late responses from clobbering newer ones.
package list

import "warranty-tui/api"

// Phase is the controller's lifecycle. It is re-enterable: Loaded and
// Errored both go back to Loading on the next fetch.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Errored
)

// Controller owns one remote collection's client-side state. It does not
// perform I/O itself; the screen runs the fetch (inside a tea.Cmd) between
// Begin and Complete. Responses are applied last-request-wins: a completion
// carrying a stale sequence number is discarded, so rapid page flips never
// paint an old page over a new one.
type Controller[T any] struct {
	phase    Phase
	page     api.Page[T]
	err      error
	filter   string
	pageSize int

	seq       uint64 // most recently issued fetch
	requested int    // page number of that fetch
}

// New builds an idle controller with the given page size.
func New[T any](pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Controller[T]{pageSize: pageSize}
}

func (c *Controller[T]) Phase() Phase      { return c.phase }
func (c *Controller[T]) Page() api.Page[T] { return c.page }
func (c *Controller[T]) Items() []T        { return c.page.Items }
func (c *Controller[T]) Err() error        { return c.err }
func (c *Controller[T]) Filter() string    { return c.filter }
func (c *Controller[T]) PageSize() int     { return c.pageSize }

// Requested returns the page number of the in-flight (or latest) fetch.
func (c *Controller[T]) Requested() int { return c.requested }

// Begin marks a fetch of pageNumber as in flight and returns its sequence
// number. The previous page stays visible while loading.
func (c *Controller[T]) Begin(pageNumber int) uint64 {
	if pageNumber < 0 {
		pageNumber = 0
	}
	c.seq++
	c.requested = pageNumber
	c.phase = Loading
	return c.seq
}

// Complete applies a fetch result. It reports false, without touching any
// state, when seq is not the latest issued sequence. On failure the prior
// page is preserved so the screen can keep rendering stale-but-valid rows
// under an error banner.
func (c *Controller[T]) Complete(seq uint64, page api.Page[T], err error) bool {
	if seq != c.seq {
		return false
	}
	if err != nil {
		c.phase = Errored
		c.err = err
		return true
	}
	c.phase = Loaded
	c.err = nil
	c.page = page
	return true
}

// SetPage validates a page change. Out-of-range targets are a silent no-op,
// matching the web client's pager. The second return reports whether the
// caller should fetch.
func (c *Controller[T]) SetPage(n int) (int, bool) {
	if n < 0 || n >= c.page.TotalPages {
		return c.page.PageNumber, false
	}
	if n == c.page.PageNumber && c.phase == Loaded {
		return n, false
	}
	return n, true
}

// ApplyFilter records a new filter and resets the target to page 0. The
// caller always refetches after a filter change.
func (c *Controller[T]) ApplyFilter(filter string) int {
	c.filter = filter
	return 0
}

// PatchLocal splices a mutation result into the current page, avoiding a
// full refetch. With a nil record the matching row is removed; with a match
// it is replaced in place; otherwise the record is prepended. TotalElements
// tracks the net change.
func (c *Controller[T]) PatchLocal(match func(T) bool, record *T) {
	items := c.page.Items
	for i := range items {
		if match(items[i]) {
			if record == nil {
				c.page.Items = append(items[:i:i], items[i+1:]...)
				if c.page.TotalElements > 0 {
					c.page.TotalElements--
				}
			} else {
				items[i] = *record
			}
			return
		}
	}
	if record != nil {
		c.page.Items = append([]T{*record}, items...)
		c.page.TotalElements++
		if c.page.TotalPages == 0 {
			c.page.TotalPages = 1
		}
	}
}

// Empty reports the designated empty state: a successful fetch that
// returned zero rows.
func (c *Controller[T]) Empty() bool {
	return c.phase == Loaded && c.page.Empty()
}
