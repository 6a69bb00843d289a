package viewstate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ndewijer/ynab-compass/internal/model"
)

// modifier is one inline key:value token extracted from a search query.
// An unrecognized name never matches, which narrows instead of erroring.
type modifier struct {
	name   string
	value  string
	negate bool
}

var modifierToken = regexp.MustCompile(`^(-?)([A-Za-z]+):(.+)$`)

// parseQuery splits a search query into inline modifiers and the remaining
// free-text portion.
func parseQuery(query string) (text string, mods []modifier) {
	var words []string
	for _, tok := range strings.Fields(query) {
		m := modifierToken.FindStringSubmatch(tok)
		if m == nil {
			words = append(words, tok)
			continue
		}
		mods = append(mods, modifier{
			name:   strings.ToLower(m[2]),
			value:  m[3],
			negate: m[1] == "-",
		})
	}
	return strings.Join(words, " "), mods
}

func (m modifier) matches(t model.Transaction) bool {
	switch m.name {
	case "type":
		var ok bool
		switch strings.ToLower(m.value) {
		case AmountInflow:
			ok = t.Amount >= 0
		case AmountOutflow:
			ok = t.Amount < 0
		default:
			return false
		}
		if m.negate {
			ok = !ok
		}
		return ok
	case "account":
		return m.matchesName(t.AccountName)
	case "category":
		return m.matchesName(t.CategoryName)
	}
	return false
}

// matchesName does a case-insensitive substring match, with dashes in the
// modifier value standing in for spaces ("account:td-checking").
func (m modifier) matchesName(name string) bool {
	needle := strings.ReplaceAll(m.value, "-", " ")
	ok := strings.Contains(strings.ToLower(name), strings.ToLower(needle))
	if m.negate {
		ok = !ok
	}
	return ok
}

// SearchBy narrows records to those matching the query. Inline modifiers
// AND together; the free-text portion must appear as a substring of the
// payee name, and when present the result is ordered by match position
// (earliest match first). An empty query returns the input unchanged.
func SearchBy(query string, records []model.Transaction) []model.Transaction {
	if strings.TrimSpace(query) == "" {
		return records
	}

	text, mods := parseQuery(query)

	candidates := records
	if len(mods) > 0 {
		candidates = make([]model.Transaction, 0, len(records))
		for _, t := range records {
			keep := true
			for _, m := range mods {
				if !m.matches(t) {
					keep = false
					break
				}
			}
			if keep {
				candidates = append(candidates, t)
			}
		}
	}

	if text == "" {
		return candidates
	}

	needle := strings.ToLower(text)
	type ranked struct {
		t    model.Transaction
		rank int
	}
	matches := make([]ranked, 0, len(candidates))
	for _, t := range candidates {
		idx := strings.Index(strings.ToLower(t.PayeeName), needle)
		if idx < 0 {
			continue
		}
		matches = append(matches, ranked{t: t, rank: idx})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].rank < matches[j].rank })

	out := make([]model.Transaction, len(matches))
	for i, m := range matches {
		out[i] = m.t
	}
	return out
}

// hasFreeText reports whether the query carries a free-text portion whose
// match rank should drive the display order.
func hasFreeText(query string) bool {
	text, _ := parseQuery(query)
	return text != ""
}
