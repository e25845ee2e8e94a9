package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartwise/cartwise/internal/common"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()

	loader := &FileLoader{
		TransactionsPath: writeFile(t, dir, "groceries.csv",
			"Item(s),Item 1,Item 2\n1,milk,bread\n2,eggs,\n"),
		RulesPath: writeFile(t, dir, "rules.csv",
			"antecedents,consequents,support,confidence,lift,conviction\n"+
				`"{'milk'}","{'bread'}",0.02,0.6,1.8,1.2`+"\n"),
	}

	ctx := context.Background()

	rows, err := loader.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	ruleRows, err := loader.LoadRules(ctx)
	require.NoError(t, err)
	require.Len(t, ruleRows, 1)
	assert.Equal(t, "{'milk'}", ruleRows[0].Antecedents)
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := &FileLoader{TransactionsPath: filepath.Join(t.TempDir(), "absent.csv")}

	_, err := loader.LoadTransactions(context.Background())
	assert.Error(t, err)
}

func TestFileLoader_EmptyPath(t *testing.T) {
	loader := &FileLoader{}

	_, err := loader.LoadTransactions(context.Background())
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, err = loader.LoadRules(context.Background())
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestFileLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &FileLoader{TransactionsPath: "whatever.csv"}
	_, err := loader.LoadTransactions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
