// Package viewstate computes the transaction collection a browsing session
// should display. It is a pure state machine: a State record, a closed set
// of Actions (reset, group, sort, filter, search), and a reducer that
// recomputes the displayed collection from an immutable initial snapshot on
// every transition. Nothing here performs I/O.
package viewstate

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ndewijer/ynab-compass/internal/model"
)

// State is the full view state. Collection is always a pure function of
// (initial, Filter, Group, Sort, Search); the reducer re-derives it from
// the initial snapshot on every transition and never patches it
// incrementally. At most one of Filter and Search narrows membership:
// issuing either clears the other.
type State struct {
	Filter     *Filter
	Group      GroupField
	Sort       Sort
	Search     string
	Collection Collection

	// initial is the snapshot every projection derives from. Replaced only
	// by a reset carrying a new collection, never reordered or filtered.
	initial []model.Transaction
}

// NewState builds the post-reset state for a snapshot: no filter, no
// grouping, no search, default sort, collection equal to the snapshot.
func NewState(initial []model.Transaction) State {
	return State{
		Sort:       SortDefault,
		Collection: flatCollection(initial),
		initial:    initial,
	}
}

// Initial returns the snapshot the state projects from.
func (s State) Initial() []model.Transaction {
	return s.initial
}

// project recomputes the displayed collection from the initial snapshot:
// narrow by filter or search, order by the stored sort (or by search match
// rank while a free-text query is active), then group. Determinism falls
// out of the pipeline reading nothing but the snapshot and the criteria.
func project(s State) Collection {
	items := s.initial
	ranked := false

	switch {
	case s.Filter != nil:
		items = FilterBy(s.Filter, items)
	case s.Search != "":
		items = SearchBy(s.Search, items)
		ranked = hasFreeText(s.Search)
	}

	if !ranked {
		items = SortBy(s.Sort, items)
	}

	if s.Group != GroupNone {
		groups, err := GroupBy(s.Group, items)
		if err != nil {
			// Group is validated before it is stored.
			panic(fmt.Sprintf("viewstate: project with invalid group %q", s.Group))
		}
		return groupedCollection(groups)
	}
	return flatCollection(items)
}

// Reduce applies one action to a state and returns the next state. It is a
// pure function; neither argument is mutated. An action kind outside the
// closed set is a programmer error and panics.
//
// Toggle semantics: dispatching a criterion equal to the one already stored
// clears that criterion instead of being a no-op. A nil filter or empty
// group field likewise clears.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActionReset:
		initial := s.initial
		if a.Initial != nil {
			initial = a.Initial
		}
		return NewState(initial)

	case ActionGroup:
		next := s
		if a.Group == GroupNone || a.Group == s.Group {
			next.Group = GroupNone
		} else {
			next.Group = a.Group
		}
		next.Collection = project(next)
		return next

	case ActionSort:
		next := s
		if a.Sort == "" || a.Sort == s.Sort {
			next.Sort = SortDefault
		} else {
			next.Sort = a.Sort
		}
		next.Collection = project(next)
		return next

	case ActionFilter:
		next := s
		if a.Filter == nil || a.Filter.Equal(s.Filter) {
			next.Filter = nil
		} else {
			next.Filter = a.Filter
			next.Search = ""
		}
		next.Collection = project(next)
		return next

	case ActionSearch:
		next := s
		next.Search = strings.TrimSpace(a.Query)
		if next.Search != "" {
			next.Filter = nil
		}
		next.Collection = project(next)
		return next
	}

	panic(fmt.Sprintf("viewstate: invalid action kind %d", a.Kind))
}

// Engine owns one State and serializes transitions. Actions apply in
// dispatch order; every Apply runs to completion before the next begins,
// matching the single-queue ordering the presentation contract assumes.
type Engine struct {
	mu    sync.Mutex
	state State
}

// NewEngine creates an engine seeded with the given snapshot.
func NewEngine(initial []model.Transaction) *Engine {
	return &Engine{state: NewState(initial)}
}

// Apply dispatches one action and returns the resulting state snapshot.
func (e *Engine) Apply(a Action) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Reduce(e.state, a)
	return e.state
}

// State returns the current state snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}
