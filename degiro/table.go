// Package degiro ingests the DEGIRO transaction export: it repairs the
// vendor's CSV quirks, loads the rows into a tabular store and parses each
// row into a depot.Transaction. One malformed row never aborts the run; it
// is surfaced as a depot.ParseError and parsing continues.
package degiro

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Table is a column-major grid of raw cell strings.
type Table struct {
	columns [][]string
	rows    int
}

// AddRow appends one row, growing the column set as needed.
func (t *Table) AddRow(cells []string) {
	for len(t.columns) < len(cells) {
		// pad new columns for rows already stored
		t.columns = append(t.columns, make([]string, t.rows))
	}
	for i := range t.columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		t.columns[i] = append(t.columns[i], cell)
	}
	t.rows++
}

// Cell returns the raw cell at (row, column), or an out-of-range error.
func (t *Table) Cell(row, column int) (string, error) {
	if column < 0 || column >= len(t.columns) || row < 0 || row >= t.rows {
		return "", fmt.Errorf("cell (%d, %d) out of range: table is %dx%d", row, column, t.rows, len(t.columns))
	}
	return t.columns[column][row], nil
}

// Row returns the raw row joined back with the field delimiter.
func (t *Table) Row(row int) (string, error) {
	if row < 0 || row >= t.rows {
		return "", fmt.Errorf("row %d out of range: table has %d rows", row, t.rows)
	}
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = col[row]
	}
	return strings.Join(cells, ","), nil
}

// DeleteRow removes one row from every column.
func (t *Table) DeleteRow(row int) error {
	if row < 0 || row >= t.rows {
		return fmt.Errorf("row %d out of range: table has %d rows", row, t.rows)
	}
	for i, col := range t.columns {
		t.columns[i] = append(col[:row], col[row+1:]...)
	}
	t.rows--
	return nil
}

func (t *Table) Rows() int    { return t.rows }
func (t *Table) Columns() int { return len(t.columns) }

// ReadTable reads the raw export text line by line, repairs each line and
// loads it into a table. The only fatal condition is an unsupported row
// shape (more than one quoted span): the input then no longer matches the
// expected tabular form.
func ReadTable(r io.Reader) (*Table, error) {
	RegisterCurrencies()

	t := &Table{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		repaired, err := repairRow(line)
		if err != nil {
			return nil, err
		}
		t.AddRow(strings.Split(repaired, ","))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read export: %w", err)
	}
	return t, nil
}
