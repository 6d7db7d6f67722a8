// Package session implements the interactive command-palette session:
// debounced live search, keyboard-driven selection and dispatch of the
// chosen result to external collaborators. It holds no rendering or
// storage code; the UI plugs in through the Sink interface.
package session

import (
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/rubiojr/travelog/pkg/search"
)

// DefaultDebounce is how long input must be quiet before a search runs.
const DefaultDebounce = 200 * time.Millisecond

// State enumerates the palette states.
type State int

const (
	// StateClosed means the palette is not visible.
	StateClosed State = iota
	// StateOpenEmpty means the palette is open with no query typed yet.
	StateOpenEmpty
	// StateOpenResults means a search ran; the result list may be empty,
	// which is still a rendered state distinct from StateOpenEmpty.
	StateOpenResults
)

// Action describes the result the user picked. Kind decides which of
// the other fields are meaningful.
type Action struct {
	Kind    search.Kind
	Year    int
	Month   int
	EntryID string
}

// Searcher runs a query and returns ranked results.
type Searcher interface {
	Search(query string) []search.Result
}

// Sink receives the session's side effects: rendering a result list,
// navigating to a selection, and clearing any lingering highlight when
// the palette opens or closes. Implementations must tolerate being
// called from the debounce timer goroutine.
type Sink interface {
	RenderResults(results []search.Result)
	Navigate(action Action)
	ClearHighlight()
}

// Controller owns the palette state machine. All methods are safe for
// concurrent use; in practice one goroutine drives input events while
// the debounce timer fires searches.
type Controller struct {
	mu        sync.Mutex
	state     State
	query     string
	results   []search.Result
	selected  int
	gen       uint64
	debounced func(func())
	searcher  Searcher
	sink      Sink
	history   *History
}

// NewController creates a palette controller. A nil history gets a
// default-capacity one; a non-positive interval uses DefaultDebounce.
func NewController(searcher Searcher, sink Sink, history *History, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	if history == nil {
		history = NewHistory(DefaultHistoryLimit)
	}
	return &Controller{
		state:     StateClosed,
		selected:  -1,
		debounced: debounce.New(interval),
		searcher:  searcher,
		sink:      sink,
		history:   history,
	}
}

// Open transitions to the open-empty state, resetting the query, the
// selection and any highlight left behind by a previous session.
func (c *Controller) Open() {
	c.mu.Lock()
	c.state = StateOpenEmpty
	c.query = ""
	c.results = nil
	c.selected = -1
	c.gen++
	c.mu.Unlock()

	c.sink.ClearHighlight()
}

// Close shuts the palette. A debounce timer still in flight is fenced
// off by the generation counter, so a late fire can never render into a
// closed session.
func (c *Controller) Close() {
	c.mu.Lock()
	c.state = StateClosed
	c.results = nil
	c.selected = -1
	c.gen++
	c.mu.Unlock()

	c.sink.ClearHighlight()
}

// Input records a keystroke's worth of query text and (re)starts the
// debounce timer. Only the last text entered before the timer fires is
// searched; earlier pending callbacks are cancelled and replaced.
// Input is ignored while the palette is closed.
func (c *Controller) Input(text string) {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	c.query = text
	gen := c.gen
	c.mu.Unlock()

	c.debounced(func() {
		c.runSearch(text, gen)
	})
}

func (c *Controller) runSearch(text string, gen uint64) {
	results := c.searcher.Search(text)

	c.mu.Lock()
	if c.state == StateClosed || c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.state = StateOpenResults
	c.results = results
	c.selected = -1
	c.mu.Unlock()

	c.sink.RenderResults(results)
}

// MoveDown advances the selection, clamped to the last result.
func (c *Controller) MoveDown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected < len(c.results)-1 {
		c.selected++
	}
}

// MoveUp retreats the selection, clamped to -1 ("nothing highlighted").
func (c *Controller) MoveUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected > -1 {
		c.selected--
	}
}

// Select dispatches the highlighted result: the raw query is appended
// to the history, the palette closes, and the sink receives the
// navigation action. With no valid selection Select is a no-op.
// Returns true when an action was dispatched.
func (c *Controller) Select() bool {
	c.mu.Lock()
	if c.selected < 0 || c.selected >= len(c.results) {
		c.mu.Unlock()
		return false
	}
	result := c.results[c.selected]
	query := c.query
	c.mu.Unlock()

	c.history.Add(query)
	c.Close()
	c.sink.Navigate(actionFor(result))
	return true
}

func actionFor(r search.Result) Action {
	action := Action{Kind: r.Kind, Year: r.Year, Month: r.Month}
	if r.Kind == search.KindEntry {
		action.EntryID = r.Entry.ID
	}
	return action
}

// State returns the current palette state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Query returns the text of the last keystroke.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Selected returns the selection index, -1 when nothing is highlighted.
func (c *Controller) Selected() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Results returns the current result list.
func (c *Controller) Results() []search.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]search.Result, len(c.results))
	copy(out, c.results)
	return out
}

// History returns the session's search history.
func (c *Controller) History() *History {
	return c.history
}
