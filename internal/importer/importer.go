// Package importer parses cashbook CSV uploads into transaction inputs.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/caixa/internal/encoding"
	"github.com/MrJamesThe3rd/caixa/internal/ledger"
)

// Expected header columns, matched case-insensitively. Extra columns are
// ignored; missing required ones reject the file.
const (
	colDate        = "date"
	colType        = "type"
	colAmount      = "amount"
	colDescription = "description"
	colCategory    = "category"
	colMode        = "mode"
)

var requiredCols = []string{colDate, colType, colAmount}

var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006", time.RFC3339}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a CSV of transactions. The charset is detected first, so
// spreadsheet exports in Windows-1252 or BOM-prefixed UTF-16 work as-is.
func (p *Parser) Parse(r io.Reader) ([]ledger.TransactionInput, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var inputs []ledger.TransactionInput

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		if blankRow(row) {
			continue
		}

		in, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		inputs = append(inputs, in)
	}

	return inputs, nil
}

// colIndex maps lowercase column names to their position.
type colIndex map[string]int

func headerIndex(header []string) (colIndex, error) {
	cols := make(colIndex, len(header))

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	return cols, nil
}

func parseRow(cols colIndex, row []string) (ledger.TransactionInput, error) {
	date, err := parseDate(cell(row, cols, colDate))
	if err != nil {
		return ledger.TransactionInput{}, err
	}

	txType, err := parseType(cell(row, cols, colType))
	if err != nil {
		return ledger.TransactionInput{}, err
	}

	amount, err := parseAmount(cell(row, cols, colAmount))
	if err != nil {
		return ledger.TransactionInput{}, err
	}

	return ledger.TransactionInput{
		Type:        txType,
		Amount:      amount,
		Description: cell(row, cols, colDescription),
		Category:    cell(row, cols, colCategory),
		Mode:        cell(row, cols, colMode),
		Date:        date,
	}, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

func cell(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func parseType(s string) (ledger.Type, error) {
	switch strings.ToUpper(s) {
	case "CASH_IN", "IN", "INCOME":
		return ledger.TypeCashIn, nil
	case "CASH_OUT", "OUT", "EXPENSE":
		return ledger.TypeCashOut, nil
	}

	return "", fmt.Errorf("unrecognized type %q", s)
}

// parseAmount accepts both 1234.56 and European 1.234,56 notations.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return -1
		}

		return r
	}, s)

	if strings.Contains(s, ",") {
		// A comma after the last dot is the decimal separator.
		if dot := strings.LastIndex(s, "."); dot < strings.LastIndex(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unrecognized amount: %w", err)
	}

	return amount, nil
}
