// Package ingest reads the two tabular inputs: the transactions table and
// the association rules table. Both are consumed once at startup; parsing
// failures are DataFormatErrors, fatal to the load.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cartwise/cartwise/internal/common"
	"github.com/cartwise/cartwise/internal/rules"
)

// Required columns of the rules table.
var ruleColumns = []string{"antecedents", "consequents", "support", "confidence", "lift", "conviction"}

// ReadTransactions reads raw transaction rows from r. The first line is a
// header and is skipped; rows may be ragged. Cells are returned untouched —
// normalization (dropping the index column, trimming, skipping blanks) is
// the catalog's job.
func ReadTransactions(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // baskets vary in length

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &common.DataFormatError{Msg: "malformed transactions table", Err: err}
	}

	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// ReadRules reads the association rules table from r. The header row maps
// column names to positions; the required columns are antecedents,
// consequents, support, confidence, lift, and conviction (conviction may be
// "inf"). Extra columns are ignored.
func ReadRules(r io.Reader) ([]rules.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &common.DataFormatError{Msg: "malformed rules table", Err: err}
	}

	if len(records) == 0 {
		return nil, &common.DataFormatError{Msg: "rules table is empty"}
	}

	columns, err := mapRuleColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]rules.Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseRuleRow(record, columns)
		if err != nil {
			return nil, common.NewDataFormatError(i+1, "bad rule row", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func mapRuleColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range ruleColumns {
		if _, ok := columns[name]; !ok {
			return nil, &common.DataFormatError{Msg: fmt.Sprintf("rules table is missing column %q", name)}
		}
	}
	return columns, nil
}

func parseRuleRow(record []string, columns map[string]int) (rules.Row, error) {
	cell := func(name string) (string, error) {
		idx := columns[name]
		if idx >= len(record) {
			return "", fmt.Errorf("missing cell for column %q", name)
		}
		return record[idx], nil
	}

	metric := func(name string) (float64, error) {
		text, err := cell(name)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		return value, nil
	}

	var row rules.Row
	var err error

	if row.Antecedents, err = cell("antecedents"); err != nil {
		return row, err
	}
	if row.Consequents, err = cell("consequents"); err != nil {
		return row, err
	}
	if row.Support, err = metric("support"); err != nil {
		return row, err
	}
	if row.Confidence, err = metric("confidence"); err != nil {
		return row, err
	}
	if row.Lift, err = metric("lift"); err != nil {
		return row, err
	}
	if row.Conviction, err = metric("conviction"); err != nil {
		return row, err
	}

	return row, nil
}
