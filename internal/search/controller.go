package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Madhu-Juttiga/TourMate-2/internal/discovery"
	"github.com/Madhu-Juttiga/TourMate-2/internal/places"
)

// SearchFunc runs a remote free-text search for the current scope.
type SearchFunc func(ctx context.Context, query string) ([]places.Place, error)

// Result is one committed update of the display list.
type Result struct {
	Query  string
	Places []places.Place
	// Err is set when a remote search failed; Places then still holds the
	// previous display list so the view is never cleared by a transient
	// failure.
	Err error
}

// Controller coordinates free-text input with either a remote search (query
// non-empty) or a purely local filter/sort pass (query empty). Every input
// change arms a trailing-edge debounce timer; a keystroke before expiry
// restarts it. Remote completions carry a generation number and only the
// most recently issued search may commit (last-request-wins); stale
// responses are discarded, not cancelled.
type Controller struct {
	delay  time.Duration
	search SearchFunc
	emit   func(Result)

	mu       sync.Mutex
	timer    *time.Timer
	fullSet  []places.Place
	query    string
	filter   discovery.Filter
	sortBy   discovery.SortKey
	current  []places.Place
	gen      uint64
	inFlight int
	stopped  bool
}

func NewController(delay time.Duration, search SearchFunc, emit func(Result)) *Controller {
	return &Controller{
		delay:  delay,
		search: search,
		emit:   emit,
		filter: discovery.FilterAll,
		sortBy: discovery.SortByDistance,
	}
}

// SetPlaces replaces the full place set. The scope changed, so the old set
// is discarded wholesale, never patched.
func (c *Controller) SetPlaces(fullSet []places.Place) {
	c.mu.Lock()
	c.fullSet = fullSet
	c.armLocked()
	c.mu.Unlock()
}

// SetQuery records a keystroke and restarts the settle timer.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	c.query = query
	c.armLocked()
	c.mu.Unlock()
}

// SetView changes the active category filter and sort key.
func (c *Controller) SetView(filter discovery.Filter, sortBy discovery.SortKey) {
	c.mu.Lock()
	c.filter = filter
	c.sortBy = sortBy
	c.armLocked()
	c.mu.Unlock()
}

// IsSearching reports whether a remote search is in flight.
func (c *Controller) IsSearching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// Stop cancels any pending dispatch. In-flight searches finish but their
// results are discarded.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
}

func (c *Controller) armLocked() {
	if c.stopped {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.dispatch)
}

// dispatch fires once the input has settled.
func (c *Controller) dispatch() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	query := c.query

	if strings.TrimSpace(query) == "" {
		derived := discovery.Derive(c.fullSet, "", c.filter, c.sortBy)
		c.current = derived
		c.mu.Unlock()
		c.emit(Result{Query: query, Places: derived})
		return
	}

	c.gen++
	gen := c.gen
	c.inFlight++
	c.mu.Unlock()

	go c.runSearch(gen, query)
}

func (c *Controller) runSearch(gen uint64, query string) {
	found, err := c.search(context.Background(), query)

	c.mu.Lock()
	c.inFlight--
	if c.stopped || gen != c.gen {
		// A newer request has since started; this response is stale.
		c.mu.Unlock()
		return
	}
	if err != nil {
		previous := c.current
		c.mu.Unlock()
		c.emit(Result{Query: query, Places: previous, Err: err})
		return
	}
	c.current = found
	c.mu.Unlock()
	c.emit(Result{Query: query, Places: found})
}
