package viewstate

import "github.com/ndewijer/ynab-compass/internal/model"

// Collection is the displayed projection: either a flat ordered sequence of
// transactions or an ordered sequence of groups. It is a value type; the
// engine replaces it wholesale on every transition and never mutates one
// in place.
type Collection struct {
	items   []model.Transaction
	groups  []model.Group
	grouped bool
}

func flatCollection(items []model.Transaction) Collection {
	return Collection{items: items}
}

func groupedCollection(groups []model.Group) Collection {
	return Collection{groups: groups, grouped: true}
}

// Grouped reports whether the collection holds groups rather than a flat list.
func (c Collection) Grouped() bool {
	return c.grouped
}

// Items returns the flat sequence. Nil when the collection is grouped.
func (c Collection) Items() []model.Transaction {
	return c.items
}

// Groups returns the ordered groups. Nil when the collection is flat.
func (c Collection) Groups() []model.Group {
	return c.groups
}

// Flatten returns every visible record in display order, ungrouping if
// necessary.
func (c Collection) Flatten() []model.Transaction {
	if !c.grouped {
		return c.items
	}
	var out []model.Transaction
	for _, g := range c.groups {
		out = append(out, g.Items...)
	}
	return out
}

// Len is the total number of visible records.
func (c Collection) Len() int {
	if !c.grouped {
		return len(c.items)
	}
	n := 0
	for _, g := range c.groups {
		n += len(g.Items)
	}
	return n
}
