// Package service wires ingestion, the catalog, and the rule store into an
// immutable process-wide snapshot with atomic reload semantics.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cartwise/cartwise/internal/catalog"
	"github.com/cartwise/cartwise/internal/common"
	"github.com/cartwise/cartwise/internal/model"
	"github.com/cartwise/cartwise/internal/rules"
)

// Loader supplies the two raw input tables.
type Loader interface {
	LoadTransactions(ctx context.Context) ([][]string, error)
	LoadRules(ctx context.Context) ([]rules.Row, error)
}

// Snapshot is the fully loaded, immutable state of the engine: transactions,
// the derived frequency table, and the rule collection. Once built it is
// never mutated, so unsynchronized concurrent reads are safe.
type Snapshot struct {
	LoadedAt     time.Time
	Transactions []model.Transaction
	Frequencies  []model.FrequencyEntry
	Rules        []model.AssociationRule
}

// Stats returns corpus summary statistics.
func (s *Snapshot) Stats() catalog.Summary {
	return catalog.Stats(s.Transactions, s.Frequencies)
}

// Provider owns the current snapshot. Load memoizes the first build;
// Reload builds a fresh snapshot off to the side and swaps the shared
// pointer atomically, so in-flight queries always see a complete snapshot,
// never a partially loaded one.
type Provider struct {
	loader  Loader
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serializes builds, not reads
}

// NewProvider creates a Provider over the given loader.
func NewProvider(loader Loader) *Provider {
	return &Provider{loader: loader}
}

// Load returns the current snapshot, building it on first use.
func (p *Provider) Load(ctx context.Context) (*Snapshot, error) {
	if snap := p.current.Load(); snap != nil {
		return snap, nil
	}
	return p.Reload(ctx)
}

// Reload builds a new snapshot from the loader and atomically replaces the
// current one.
func (p *Provider) Reload(ctx context.Context) (*Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()

	rawRows, err := p.loader.LoadTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	ruleRows, err := p.loader.LoadRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	transactions := catalog.Load(rawRows)
	if len(transactions) == 0 {
		return nil, common.ErrNoTransactions
	}
	frequencies := catalog.Frequency(transactions)

	loaded, err := rules.Load(ruleRows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if len(loaded) == 0 {
		return nil, common.ErrNoRules
	}

	snap := &Snapshot{
		LoadedAt:     time.Now(),
		Transactions: transactions,
		Frequencies:  frequencies,
		Rules:        loaded,
	}
	p.current.Store(snap)

	common.LogDebug("snapshot loaded", common.Fields{
		"transactions": len(transactions),
		"unique_items": len(frequencies),
		"rules":        len(loaded),
		"elapsed":      time.Since(start),
	})

	return snap, nil
}
