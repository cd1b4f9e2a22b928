// Package output provides utilities for formatting command output.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Column is a single table column with its header and current width.
type Column struct {
	Header string
	Width  int
}

// Table buffers rows and renders them with aligned columns.
// Widths are measured in terminal cells so names with wide characters line up.
//
// Fields:
//   - columns: Columns in display order
//   - rows: Buffered data rows
//   - separator: String placed between columns (default: "  ")
type Table struct {
	columns   []Column
	rows      [][]string
	separator string
}

// NewTable creates an empty table with a two-space column separator.
//
// Parameters:
//   - headers: Column headers in display order
//
// Returns:
//   - *Table: A new table ready for rows
func NewTable(headers ...string) *Table {
	t := &Table{separator: "  "}
	for _, h := range headers {
		t.AddColumn(h)
	}
	return t
}

// WithSeparator sets a custom column separator and returns the table.
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn appends a column sized to its header and returns the table.
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{Header: header, Width: DisplayWidth(header)})
	return t
}

// AddRow buffers a data row and widens columns to fit it.
//
// Missing values are rendered empty; values beyond the last column are ignored.
//
// Parameters:
//   - values: One string per column
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.columns))
	copy(row, values)
	for i, val := range row {
		if w := DisplayWidth(val); w > t.columns[i].Width {
			t.columns[i].Width = w
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// Len returns the number of buffered rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HeaderRow returns the formatted header row.
func (t *Table) HeaderRow() string {
	values := make([]string, len(t.columns))
	for i, col := range t.columns {
		values[i] = col.Header
	}
	return t.FormatRow(values...)
}

// SeparatorRow returns a row of dashes matching the column widths.
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = strings.Repeat("-", col.Width)
	}
	return strings.Join(parts, t.separator)
}

// FormatRow pads values to the current column widths.
//
// The last column is not padded so rows carry no trailing spaces.
//
// Parameters:
//   - values: One string per column; missing values are treated as empty
//
// Returns:
//   - string: The aligned row
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		if i == len(t.columns)-1 {
			parts[i] = val
			continue
		}
		parts[i] = PadRight(val, col.Width)
	}
	return strings.Join(parts, t.separator)
}

// Render writes the header, separator and every buffered row to w.
//
// Parameters:
//   - w: Destination writer
//
// Returns:
//   - error: The first write error, if any
func (t *Table) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, t.HeaderRow()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, t.SeparatorRow()); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, t.FormatRow(row...)); err != nil {
			return err
		}
	}
	return nil
}
