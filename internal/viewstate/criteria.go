package viewstate

import (
	"time"

	"github.com/ndewijer/ynab-compass/internal/model"
)

// GroupField selects which transaction field a grouped view buckets by.
type GroupField string

// Grouping criteria. GroupNone means the view is ungrouped.
const (
	GroupNone     GroupField = ""
	GroupCategory GroupField = "category"
	GroupPayee    GroupField = "payee"
	GroupAccount  GroupField = "account"
)

// Valid reports whether f is one of the known grouping criteria.
// GroupNone is not a valid grouping target; dispatching it clears grouping.
func (f GroupField) Valid() bool {
	switch f {
	case GroupCategory, GroupPayee, GroupAccount:
		return true
	}
	return false
}

// key extracts the grouping-key value from a record. Missing fields
// collapse into the empty-string group.
func (f GroupField) key(t model.Transaction) string {
	switch f {
	case GroupCategory:
		return t.CategoryName
	case GroupPayee:
		return t.PayeeName
	case GroupAccount:
		return t.AccountName
	}
	return ""
}

// Sort is a combined sort criterion: field and direction.
type Sort string

// Sort criteria over the two sortable fields.
const (
	SortDateDesc   Sort = "date_desc"
	SortDateAsc    Sort = "date_asc"
	SortAmountDesc Sort = "amount_desc"
	SortAmountAsc  Sort = "amount_asc"
)

// SortDefault is the ordering every reset returns to.
const SortDefault = SortDateDesc

// Valid reports whether s is one of the known sort criteria.
func (s Sort) Valid() bool {
	switch s {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return true
	}
	return false
}

// Descending reports the sort direction.
func (s Sort) Descending() bool {
	return s == SortDateDesc || s == SortAmountDesc
}

func (s Sort) byDate() bool {
	return s == SortDateDesc || s == SortDateAsc
}

// FilterKey identifies which record field a filter compares against.
type FilterKey string

// Filter keys. FilterAmount filters on the sign of the amount and takes
// the values "inflow" or "outflow"; the name keys match strictly.
const (
	FilterCategory FilterKey = "category"
	FilterAccount  FilterKey = "account"
	FilterAmount   FilterKey = "amount"
)

// Amount-direction filter values.
const (
	AmountInflow  = "inflow"
	AmountOutflow = "outflow"
)

// Filter is a single key/value membership criterion. A nil *Filter means
// no filter is active.
type Filter struct {
	Key   FilterKey `json:"key"`
	Value string    `json:"value"`
}

// Valid reports whether the filter uses a known key, and for amount
// filters a known direction value.
func (f *Filter) Valid() bool {
	if f == nil {
		return false
	}
	switch f.Key {
	case FilterCategory, FilterAccount:
		return true
	case FilterAmount:
		return f.Value == AmountInflow || f.Value == AmountOutflow
	}
	return false
}

// Equal reports whether two filters select the same criterion.
// Two nils are not equal: toggling off needs a concrete criterion to match.
func (f *Filter) Equal(other *Filter) bool {
	if f == nil || other == nil {
		return false
	}
	return f.Key == other.Key && f.Value == other.Value
}

// Matches reports whether a record satisfies the filter.
// A zero amount counts as inflow.
func (f *Filter) Matches(t model.Transaction) bool {
	if f == nil {
		return true
	}
	switch f.Key {
	case FilterAmount:
		if f.Value == AmountInflow {
			return t.Amount >= 0
		}
		if f.Value == AmountOutflow {
			return t.Amount < 0
		}
		return false
	case FilterCategory:
		return t.CategoryName == f.Value
	case FilterAccount:
		return t.AccountName == f.Value
	}
	return false
}

// Period is the timeline lookback range the data source fetches for.
type Period string

// Lookback periods, narrowest to widest.
const (
	PeriodDay     Period = "day"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// Start returns the beginning of the lookback window ending at now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return now.AddDate(0, 0, -1)
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodQuarter:
		return now.AddDate(0, -3, 0)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	}
	return now.AddDate(0, -1, 0)
}

// Widen returns the next wider period on the day-week-month-quarter-year
// ladder. The second result is false once the ladder tops out at year.
func (p Period) Widen() (Period, bool) {
	switch p {
	case PeriodDay:
		return PeriodWeek, true
	case PeriodWeek:
		return PeriodMonth, true
	case PeriodMonth:
		return PeriodQuarter, true
	case PeriodQuarter:
		return PeriodYear, true
	}
	return PeriodYear, false
}
