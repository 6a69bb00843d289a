package viewstate

import (
	"sort"

	"github.com/google/uuid"
	"github.com/ndewijer/ynab-compass/internal/apperrors"
	"github.com/ndewijer/ynab-compass/internal/model"
)

// groupNamespace seeds the deterministic group-ID derivation so that the
// same group key always yields the same ID across recomputations.
var groupNamespace = uuid.MustParse("9f2d7a54-3b1c-4e8a-9c26-5d14f0a8b7e1")

// GroupID derives a stable identifier from a group key.
func GroupID(key string) string {
	return uuid.NewSHA1(groupNamespace, []byte(key)).String()
}

// GroupBy buckets records by the given field. Groups appear in
// first-occurrence order of their key in the input, and each group's items
// keep the input order, so every record lands in exactly one group.
// Records missing the field collapse into the empty-string group.
func GroupBy(field GroupField, records []model.Transaction) ([]model.Group, error) {
	if !field.Valid() {
		return nil, apperrors.ErrInvalidGroupField
	}

	index := make(map[string]int)
	groups := make([]model.Group, 0)
	for _, t := range records {
		key := field.key(t)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, model.Group{ID: GroupID(key), Title: key})
		}
		groups[i].Items = append(groups[i].Items, t)
	}

	return groups, nil
}

// SortBy returns a sorted copy of records; the input is left untouched.
// The sort is stable: records with equal keys keep their relative order in
// both directions, so ties are never swapped by reversing the direction.
func SortBy(s Sort, records []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(records))
	copy(out, records)

	byDate := s.byDate()
	desc := s.Descending()
	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		if byDate {
			cmp = out[i].Date.Compare(out[j].Date)
		} else {
			switch {
			case out[i].Amount < out[j].Amount:
				cmp = -1
			case out[i].Amount > out[j].Amount:
				cmp = 1
			}
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}

// FilterBy returns the subsequence of records matching the filter,
// preserving input order. A nil filter keeps everything.
func FilterBy(f *Filter, records []model.Transaction) []model.Transaction {
	if f == nil {
		return records
	}
	out := make([]model.Transaction, 0, len(records))
	for _, t := range records {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
