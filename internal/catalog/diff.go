package catalog

import (
	"slices"

	"github.com/nerrad567/gray-logic-units/internal/units"
)

// Change records a member whose display string differs between snapshots.
type Change struct {
	Category units.Category `json:"category"`
	Name     string         `json:"name"`
	Old      string         `json:"old"`
	New      string         `json:"new"`
}

// Report is the difference between a stored snapshot and the compiled
// registry.
type Report struct {
	Added   []units.Ref `json:"added,omitempty"`
	Removed []units.Ref `json:"removed,omitempty"`
	Changed []Change    `json:"changed,omitempty"`

	// Reordered lists categories whose surviving members changed order.
	Reordered []units.Category `json:"reordered,omitempty"`

	// CategoriesReordered is true when categories present in both snapshots
	// appear in a different order.
	CategoriesReordered bool `json:"categories_reordered,omitempty"`

	// Initial is true when there was no previous snapshot.
	Initial bool `json:"initial,omitempty"`
}

// Breaking reports whether any stored member was removed, changed or moved.
// Additions alone are never breaking.
func (r Report) Breaking() bool {
	return len(r.Removed) > 0 || len(r.Changed) > 0 ||
		len(r.Reordered) > 0 || r.CategoriesReordered
}

// Empty reports whether the two snapshots are identical.
func (r Report) Empty() bool {
	return len(r.Added) == 0 && !r.Breaking()
}

type memberKey struct {
	category units.Category
	name     string
}

// Diff compares two snapshots member by member, keyed on (category, name).
//
// Added and Changed follow the order of current; Removed follows the order
// of previous. Order is compared over the members and categories present in
// both snapshots, so an addition or removal alone never counts as a move.
func Diff(previous, current []units.Ref) Report {
	var report Report

	prev := make(map[memberKey]string, len(previous))
	for _, ref := range previous {
		prev[memberKey{ref.Category, ref.Name}] = ref.Symbol
	}

	cur := make(map[memberKey]struct{}, len(current))
	for _, ref := range current {
		key := memberKey{ref.Category, ref.Name}
		cur[key] = struct{}{}

		old, existed := prev[key]
		switch {
		case !existed:
			report.Added = append(report.Added, ref)
		case old != ref.Symbol:
			report.Changed = append(report.Changed, Change{
				Category: ref.Category,
				Name:     ref.Name,
				Old:      old,
				New:      ref.Symbol,
			})
		}
	}

	for _, ref := range previous {
		if _, ok := cur[memberKey{ref.Category, ref.Name}]; !ok {
			report.Removed = append(report.Removed, ref)
		}
	}

	prevCats, prevNames := orderOf(previous, func(k memberKey) bool {
		_, ok := cur[k]
		return ok
	})
	curCats, curNames := orderOf(current, func(k memberKey) bool {
		_, ok := prev[k]
		return ok
	})

	for _, c := range curCats {
		if !slices.Equal(prevNames[c], curNames[c]) {
			report.Reordered = append(report.Reordered, c)
		}
	}
	report.CategoriesReordered = !slices.Equal(prevCats, curCats)

	return report
}

// orderOf returns the categories of refs in first-seen order and the member
// names of each category in order, keeping only members for which keep is
// true.
func orderOf(refs []units.Ref, keep func(memberKey) bool) ([]units.Category, map[units.Category][]string) {
	var cats []units.Category
	names := make(map[units.Category][]string)

	for _, ref := range refs {
		key := memberKey{ref.Category, ref.Name}
		if !keep(key) {
			continue
		}
		if _, seen := names[ref.Category]; !seen {
			cats = append(cats, ref.Category)
		}
		names[ref.Category] = append(names[ref.Category], ref.Name)
	}

	return cats, names
}
