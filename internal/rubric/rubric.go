package rubric

import (
	"fmt"
	"slices"
)

// Item is a single grading criterion with a fixed maximum score.
type Item struct {
	Name     string
	Max      float64
	Category Category
	Criteria string
}

// Critical reports whether the item must pass for the repository to be accepted.
func (i Item) Critical() bool {
	return i.Category == CategoryCritical
}

// table holds the rubric with precomputed indices.
type table struct {
	items      []Item
	byName     map[string]*Item
	byCategory map[Category][]Item
	possible   map[Category]float64
}

// t is the package-level rubric, set by init() in seed.go and never mutated.
var t *table

func buildTable(items []Item) *table {
	tb := &table{
		items:      items,
		byName:     make(map[string]*Item, len(items)),
		byCategory: make(map[Category][]Item),
		possible:   make(map[Category]float64),
	}
	for i := range tb.items {
		it := &tb.items[i]
		tb.byName[it.Name] = it
		tb.byCategory[it.Category] = append(tb.byCategory[it.Category], *it)
		tb.possible[it.Category] += it.Max
	}
	return tb
}

// Items returns every rubric item in category order.
func Items() []Item {
	return slices.Clone(t.items)
}

// Lookup returns the item with the given name.
func Lookup(name string) (Item, bool) {
	it, ok := t.byName[name]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// MustLookup returns the item with the given name or panics.
func MustLookup(name string) Item {
	it, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("rubric: unknown item %q", name))
	}
	return it
}

// ItemsIn returns the items of a category in display order.
func ItemsIn(c Category) []Item {
	return slices.Clone(t.byCategory[c])
}

// PointsPossible returns the sum of the maxima of a category's items.
func PointsPossible(c Category) float64 {
	return t.possible[c]
}

// TotalPossible returns the sum of all maxima.
func TotalPossible() float64 {
	var total float64
	for _, it := range t.items {
		total += it.Max
	}
	return total
}
