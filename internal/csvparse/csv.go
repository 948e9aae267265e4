// Package csvparse turns raw bank-statement CSV text into untyped rows
// keyed by canonical field names.
package csvparse

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical field keys.
const (
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldDate        = "date"
)

// aliases maps accepted header spellings to canonical keys. Statements
// from different producers disagree on header casing.
var aliases = map[string]string{
	"Description": FieldDescription,
	"description": FieldDescription,
	"Amount":      FieldAmount,
	"amount":      FieldAmount,
	"Date":        FieldDate,
	"date":        FieldDate,
}

// Row is one CSV data line as a canonical-header-to-cell mapping,
// prior to type coercion.
type Row map[string]string

// Description returns the description cell, empty when absent.
func (r Row) Description() string {
	return r[FieldDescription]
}

// AmountCent coerces the amount cell to signed cents. Cells that do not
// parse as a number coerce to zero rather than failing the row.
func (r Row) AmountCent() int64 {
	s := strings.TrimSpace(r[FieldAmount])
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.Shift(2).Round(0).IntPart()
}

// Parse reads statement CSV text. The first line is the header; header
// names are resolved through the alias table, unrecognized columns are
// kept under their trimmed original name. Empty lines are skipped.
// Rows with fewer cells than the header are kept with the missing
// fields defaulted to the empty string; extra cells are dropped.
// Only a payload that is not readable as CSV at all is an error.
func Parse(raw string) ([]Row, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // ragged rows handled below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty statement")
	}

	headers := parseHeaders(records[0])

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			cell := ""
			if i < len(record) {
				cell = strings.TrimSpace(record[i])
			}
			row[header] = cell
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseHeaders(record []string) []string {
	headers := make([]string, len(record))
	for i, h := range record {
		h = strings.TrimSpace(h)
		if canonical, ok := aliases[h]; ok {
			h = canonical
		}
		headers[i] = h
	}
	return headers
}
