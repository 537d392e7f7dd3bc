// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc // optional per-cell color function
	// Wrap word-wraps cells longer than this many runes onto continuation
	// lines. Zero disables wrapping.
	Wrap int
}

// Table renders aligned text tables to an io.Writer. Widths are measured in
// runes so labels such as "≤ 30 years" stay aligned.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are silently ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	// Compute max width per column.
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			for _, line := range wrap(cell, t.columns[i].Wrap) {
				widths[i] = max(widths[i], utf8.RuneCountInString(line))
			}
		}
	}

	// Render header (bold).
	if err := t.renderHeader(w, widths); err != nil {
		return err
	}

	// Render separator.
	parts := make([]string, len(t.columns))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	// Render data rows.
	for _, row := range t.rows {
		if err := t.renderRow(w, row, widths); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) renderHeader(w io.Writer, widths []int) error {
	bold := color.New(color.Bold)
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func (t *Table) renderRow(w io.Writer, values []string, widths []int) error {
	cells := make([][]string, len(t.columns))
	height := 1
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		cells[i] = wrap(val, col.Wrap)
		height = max(height, len(cells[i]))
	}

	for line := range height {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			val := ""
			if line < len(cells[i]) {
				val = cells[i][line]
			}
			display := val
			if col.Color != nil && val != "" {
				display = col.Color(val)
			}
			// Padding is based on raw value length, not ANSI-colored length.
			n := max(widths[i]-utf8.RuneCountInString(val), 0)
			if col.Align == AlignRight {
				parts[i] = strings.Repeat(" ", n) + display
			} else {
				parts[i] = display + strings.Repeat(" ", n)
			}
		}
		if _, err := fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " ")); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	return nil
}

// wrap splits s into lines of at most limit runes at word boundaries. Words
// longer than limit get a line of their own.
func wrap(s string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func pad(s string, width int, align Alignment) string {
	n := max(width-utf8.RuneCountInString(s), 0)
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}
