// Package selection tracks which rows of a list view are expanded to show
// their details.
package selection

import "maps"

// Expanded holds at most one expanded record per group, for example one open
// candidate card per pipeline column. A group that is absent is collapsed.
// Values are never mutated in place; every change returns a new map.
type Expanded[G, ID comparable] map[G]ID

// Toggle collapses the group if id is the one expanded there, and expands id
// otherwise, collapsing whatever the group showed before.
func Toggle[G, ID comparable](state Expanded[G, ID], group G, id ID) Expanded[G, ID] {
	next := maps.Clone(state)
	if next == nil {
		next = Expanded[G, ID]{}
	}
	if cur, ok := state[group]; ok && cur == id {
		delete(next, group)
	} else {
		next[group] = id
	}
	return next
}

// IsExpanded reports whether id is the expanded record of group.
func IsExpanded[G, ID comparable](state Expanded[G, ID], group G, id ID) bool {
	cur, ok := state[group]
	return ok && cur == id
}

// Current returns the expanded record of group, if any.
func Current[G, ID comparable](state Expanded[G, ID], group G) (ID, bool) {
	cur, ok := state[group]
	return cur, ok
}

// Set allows any number of expanded records.
type Set[ID comparable] map[ID]struct{}

// ToggleSet adds id when absent and removes it when present.
func ToggleSet[ID comparable](s Set[ID], id ID) Set[ID] {
	next := maps.Clone(s)
	if next == nil {
		next = Set[ID]{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

// Contains reports whether id is expanded.
func (s Set[ID]) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}
