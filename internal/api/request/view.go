package request

// GroupRequest carries one grouping criterion: "category", "payee" or
// "account". An empty criterion clears grouping.
type GroupRequest struct {
	Criterion string `json:"criterion"`
}

// SortRequest carries one sort criterion: "date_desc", "date_asc",
// "amount_desc" or "amount_asc". An empty criterion reverts to the default.
type SortRequest struct {
	Criterion string `json:"criterion"`
}

// FilterCriterion is one key/value filter over category, account or
// amount direction.
type FilterCriterion struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FilterRequest carries one filter criterion. A null filter clears
// filtering; repeating the active criterion toggles it off.
type FilterRequest struct {
	Filter *FilterCriterion `json:"filter"`
}

// SearchRequest carries a free-text search query, optionally embedding
// inline modifiers ("coffee account:checking -type:outflow"). An empty
// query clears the search.
type SearchRequest struct {
	Query string `json:"query"`
}

// TimelineRequest carries a lookback period: "day", "week", "month",
// "quarter" or "year".
type TimelineRequest struct {
	Timeline string `json:"timeline"`
}
