// Package catalog normalizes raw transaction rows into item sequences and
// derives per-item frequency statistics.
package catalog

import (
	"sort"
	"strings"

	"github.com/cartwise/cartwise/internal/model"
)

// Load normalizes raw table rows into transactions. The first cell of every
// row is a row index, not a product, and is dropped; remaining cells are
// trimmed and blank cells skipped. Cell order is preserved. A transaction
// may be empty after normalization.
func Load(rows [][]string) []model.Transaction {
	transactions := make([]model.Transaction, 0, len(rows))

	for _, row := range rows {
		txn := model.Transaction{}
		for i, cell := range row {
			if i == 0 {
				continue
			}
			item := strings.TrimSpace(cell)
			if item == "" {
				continue
			}
			txn = append(txn, item)
		}
		transactions = append(transactions, txn)
	}

	return transactions
}

// Frequency counts how often each distinct item occurs across all
// transactions and returns entries sorted by count descending, ties broken
// by first-seen order. Every occurrence counts, including duplicates within
// a single transaction; co-occurrence analysis deliberately uses
// per-transaction presence instead (see the cooccur package).
func Frequency(transactions []model.Transaction) []model.FrequencyEntry {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, txn := range transactions {
		for _, item := range txn {
			if _, seen := counts[item]; !seen {
				firstSeen[item] = order
				order++
			}
			counts[item]++
		}
	}

	entries := make([]model.FrequencyEntry, 0, len(counts))
	for item, count := range counts {
		entries = append(entries, model.FrequencyEntry{Item: item, Count: count})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Item] < firstSeen[entries[j].Item]
	})

	return entries
}
