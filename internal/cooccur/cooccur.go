// Package cooccur counts and ranks items that appear in the same
// transactions as a target item.
package cooccur

import (
	"sort"

	"github.com/cartwise/cartwise/internal/model"
)

// Pair is one co-occurring item and the number of transactions in which it
// appears together with the target.
type Pair struct {
	Item  string
	Count int
}

// Analyze counts, for every transaction containing target, the other
// distinct items in that transaction. An item repeated within one
// transaction still counts once for that transaction; frequency counting
// (catalog.Frequency) deliberately counts duplicates instead. The target
// itself is excluded. Results are sorted by count descending, ties broken
// by first-encountered order. A target absent from every transaction yields
// an empty slice.
func Analyze(target string, transactions []model.Transaction) []Pair {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, txn := range transactions {
		if !txn.Contains(target) {
			continue
		}

		seen := make(map[string]struct{}, len(txn))
		for _, item := range txn {
			if item == target {
				continue
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}

			if _, known := counts[item]; !known {
				firstSeen[item] = order
				order++
			}
			counts[item]++
		}
	}

	pairs := make([]Pair, 0, len(counts))
	for item, count := range counts {
		pairs = append(pairs, Pair{Item: item, Count: count})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return firstSeen[pairs[i].Item] < firstSeen[pairs[j].Item]
	})

	return pairs
}

// OccurrenceCount returns the number of transactions containing target at
// least once.
func OccurrenceCount(target string, transactions []model.Transaction) int {
	count := 0
	for _, txn := range transactions {
		if txn.Contains(target) {
			count++
		}
	}
	return count
}

// SampleTransactions returns the first limit transactions, in original
// order, that contain target. Fewer than limit may exist; that is not an
// error.
func SampleTransactions(target string, transactions []model.Transaction, limit int) []model.Transaction {
	if limit <= 0 {
		return nil
	}

	var samples []model.Transaction
	for _, txn := range transactions {
		if !txn.Contains(target) {
			continue
		}
		samples = append(samples, txn)
		if len(samples) == limit {
			break
		}
	}
	return samples
}
