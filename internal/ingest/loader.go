package ingest

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/cartwise/cartwise/internal/common"
	"github.com/cartwise/cartwise/internal/rules"
)

// FileLoader reads both input tables from CSV files on disk. With Progress
// set it renders a byte-based progress bar while reading, which matters for
// transaction corpora in the tens of thousands of rows.
type FileLoader struct {
	TransactionsPath string
	RulesPath        string
	Progress         bool
}

// LoadTransactions reads the raw transaction rows from TransactionsPath.
func (l *FileLoader) LoadTransactions(ctx context.Context) ([][]string, error) {
	var records [][]string
	err := l.readFile(ctx, l.TransactionsPath, "Loading transactions...", func(r io.Reader) error {
		var err error
		records, err = ReadTransactions(r)
		return err
	})
	return records, err
}

// LoadRules reads the raw rule rows from RulesPath.
func (l *FileLoader) LoadRules(ctx context.Context) ([]rules.Row, error) {
	var rows []rules.Row
	err := l.readFile(ctx, l.RulesPath, "Loading rules...", func(r io.Reader) error {
		var err error
		rows, err = ReadRules(r)
		return err
	})
	return rows, err
}

func (l *FileLoader) readFile(ctx context.Context, path, description string, read func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if path == "" {
		return fmt.Errorf("no input path configured: %w", common.ErrMissingConfig)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var reader io.Reader = f
	if l.Progress {
		if info, statErr := f.Stat(); statErr == nil {
			bar := progressbar.DefaultBytes(info.Size(), description)
			reader = io.TeeReader(f, bar)
			defer func() { _ = bar.Finish() }()
		}
	}

	if err := read(reader); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
