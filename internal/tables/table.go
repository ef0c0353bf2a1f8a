package tables

import (
	"strconv"
	"strings"
)

// Table is a two-dimensional table with named columns and ordered rows.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Width returns the number of columns
func (t Table) Width() int {
	return len(t.Columns)
}

// Column returns the cells of column i, top to bottom
func (t Table) Column(i int) []string {
	cells := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if i < len(row) {
			cells = append(cells, row[i])
		}
	}
	return cells
}

// Markdown renders the table as a markdown pipe table
func (t Table) Markdown() string {
	if len(t.Columns) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, cell := range cells {
			b.WriteString(" ")
			b.WriteString(escapeMarkdown(cell))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(t.Columns)
	b.WriteString("|")
	for range t.Columns {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
	return b.String()
}

// escapeMarkdown escapes characters that break markdown tables
func escapeMarkdown(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '|':
			b.WriteString("\\|")
		case '\n':
			b.WriteString(" ")
		case '\r':
			// Skip
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func positionalColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return cols
}
