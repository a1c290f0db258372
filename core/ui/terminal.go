// Package ui - Terminal output helpers
// Headers, status lines and aligned tables for catalog listings and
// candidate breakdowns.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("%s", w.color(Bold+Cyan, title))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Yellow, "! "), msg)
}

// Table renders an aligned table
type Table struct {
	w         *Writer
	headers   []string
	rows      [][]string
	highlight map[int]bool
	widths    []int
	rightCols map[int]bool
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:         w,
		headers:   headers,
		widths:    widths,
		highlight: make(map[int]bool),
		rightCols: make(map[int]bool),
	}
}

// AlignRight right-aligns the given columns (numbers)
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.rightCols[c] = true
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// AddHighlightedRow adds a row rendered in bold green
func (t *Table) AddHighlightedRow(cells ...string) {
	t.AddRow(cells...)
	t.highlight[len(t.rows)-1] = true
}

// Rows returns the number of data rows
func (t *Table) Rows() int {
	return len(t.rows)
}

func (t *Table) line(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if t.rightCols[i] {
			parts[i] = fmt.Sprintf("%*s", t.widths[i], cell)
		} else {
			parts[i] = fmt.Sprintf("%-*s", t.widths[i], cell)
		}
	}
	return strings.TrimRight(strings.Join(parts, " │ "), " ")
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for i, row := range t.rows {
		text := t.line(row)
		if t.highlight[i] {
			text = t.w.color(Bold+Green, text)
		}
		t.w.Println("%s", text)
	}
}
