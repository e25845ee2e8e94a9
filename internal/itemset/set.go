// Package itemset provides the item set type used by association rules,
// plus a format-restricted decoder for the textual set encodings found in
// rule exports.
package itemset

import "sort"

// Set is an unordered collection of distinct item names.
type Set map[string]struct{}

// New creates a Set from the given items.
func New(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Len returns the number of items in the set.
func (s Set) Len() int {
	return len(s)
}

// Contains reports whether item is in the set.
func (s Set) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// SubsetOf reports whether every item of s is in other.
func (s Set) SubsetOf(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one item.
func (s Set) Intersects(other Set) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for item := range small {
		if large.Contains(item) {
			return true
		}
	}
	return false
}

// Equal reports whether s and other contain exactly the same items.
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Items returns the set's items sorted lexicographically, for deterministic
// display and encoding.
func (s Set) Items() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
