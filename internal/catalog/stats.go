package catalog

import "github.com/cartwise/cartwise/internal/model"

// Summary holds corpus-level statistics for the overview display.
type Summary struct {
	SizeHistogram   map[int]int // transaction length -> number of transactions
	Transactions    int
	UniqueItems     int
	AvgItemsPerTxn  float64
	LargestTxnItems int
}

// Stats computes summary statistics over the loaded corpus.
func Stats(transactions []model.Transaction, frequencies []model.FrequencyEntry) Summary {
	s := Summary{
		SizeHistogram: make(map[int]int),
		Transactions:  len(transactions),
		UniqueItems:   len(frequencies),
	}

	totalItems := 0
	for _, txn := range transactions {
		n := len(txn)
		totalItems += n
		s.SizeHistogram[n]++
		if n > s.LargestTxnItems {
			s.LargestTxnItems = n
		}
	}

	if len(transactions) > 0 {
		s.AvgItemsPerTxn = float64(totalItems) / float64(len(transactions))
	}

	return s
}
