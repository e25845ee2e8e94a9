package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/cartwise/cartwise/internal/config"
	"github.com/cartwise/cartwise/internal/ingest"
	"github.com/cartwise/cartwise/internal/service"
)

// Default display limits.
const (
	topProductsLimit     = 20
	coOccurrenceLimit    = 20
	sampleTxnLimit       = 10
	recommendationsLimit = 10
	explainingRulesLimit = 3
	listedRulesLimit     = 50
)

// loadSnapshot builds the immutable data snapshot from the configured CSV
// paths, with a progress bar for large corpora.
func loadSnapshot(ctx context.Context) (*service.Snapshot, error) {
	loader := &ingest.FileLoader{
		TransactionsPath: config.ExpandPath(viper.GetString("data.transactions")),
		RulesPath:        config.ExpandPath(viper.GetString("data.rules")),
		Progress:         true,
	}

	return service.NewProvider(loader).Load(ctx)
}
