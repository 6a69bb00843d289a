package viewstate

import "github.com/ndewijer/ynab-compass/internal/model"

// ActionKind tags the closed set of view-state transitions.
type ActionKind int

// The five transition kinds.
const (
	ActionReset ActionKind = iota
	ActionGroup
	ActionSort
	ActionFilter
	ActionSearch
)

func (k ActionKind) String() string {
	switch k {
	case ActionReset:
		return "reset"
	case ActionGroup:
		return "group"
	case ActionSort:
		return "sort"
	case ActionFilter:
		return "filter"
	case ActionSearch:
		return "search"
	}
	return "unknown"
}

// Action is a tagged variant: Kind selects the transition and exactly one
// payload field is meaningful. Construct actions through the helpers below.
type Action struct {
	Kind ActionKind

	Initial []model.Transaction // reset: replacement snapshot, nil keeps the current one
	Group   GroupField          // group
	Sort    Sort                // sort
	Filter  *Filter             // filter
	Query   string              // search
}

// ResetAction clears every criterion. A non-nil initial replaces the
// snapshot the engine derives all projections from.
func ResetAction(initial []model.Transaction) Action {
	return Action{Kind: ActionReset, Initial: initial}
}

// GroupAction toggles grouping by the given field.
func GroupAction(field GroupField) Action {
	return Action{Kind: ActionGroup, Group: field}
}

// SortAction toggles the given sort criterion.
func SortAction(s Sort) Action {
	return Action{Kind: ActionSort, Sort: s}
}

// FilterAction toggles the given filter criterion.
func FilterAction(f *Filter) Action {
	return Action{Kind: ActionFilter, Filter: f}
}

// SearchAction applies a free-text search query.
func SearchAction(query string) Action {
	return Action{Kind: ActionSearch, Query: query}
}
