// Package model defines the plain immutable records shared across the
// application: transactions, item frequencies, association rules, and
// recommendations.
package model

// Transaction is a single market basket: the ordered sequence of items
// purchased together. Transactions are immutable once loaded; their
// identity is positional (index into the loaded transaction list).
type Transaction []string

// Contains reports whether the transaction includes item at least once.
func (t Transaction) Contains(item string) bool {
	for _, it := range t {
		if it == item {
			return true
		}
	}
	return false
}

// FrequencyEntry records how often an item appears across the corpus.
type FrequencyEntry struct {
	Item  string
	Count int
}
