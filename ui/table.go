package ui

import "strings"

// Column is one table column: a header and a fixed cell width.
type Column struct {
	Title string
	Width int
}

// Table renders a fixed-width row grid with a cursor, in the same windowed
// style as Menu. Rows are plain string slices; the caller formats cells.
type Table struct {
	Columns        []Column
	Rows           [][]string
	Cursor         int
	MaxVisibleRows int
}

func NewTable(columns []Column) *Table {
	return &Table{
		Columns:        columns,
		MaxVisibleRows: 12,
	}
}

// SetRows replaces the table contents, clamping the cursor.
func (t *Table) SetRows(rows [][]string) {
	t.Rows = rows
	if t.Cursor >= len(rows) {
		t.Cursor = len(rows) - 1
	}
	if t.Cursor < 0 {
		t.Cursor = 0
	}
}

func (t *Table) Up() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

func (t *Table) Down() {
	if t.Cursor < len(t.Rows)-1 {
		t.Cursor++
	}
}

// SelectedRow returns the row under the cursor, or -1 when the table is
// empty.
func (t *Table) SelectedRow() int {
	if len(t.Rows) == 0 {
		return -1
	}
	return t.Cursor
}

func (t *Table) View() string {
	var b strings.Builder

	var header strings.Builder
	for _, col := range t.Columns {
		header.WriteString(padToWidth(TruncateTo(col.Title, col.Width), col.Width+2))
	}
	b.WriteString("  " + TableHeaderStyle.Render(strings.TrimRight(header.String(), " ")))
	b.WriteString("\n")

	if len(t.Rows) == 0 {
		return b.String()
	}

	// Window the rows around the cursor like Menu does.
	start := 0
	end := len(t.Rows)
	if len(t.Rows) > t.MaxVisibleRows {
		half := t.MaxVisibleRows / 2
		start = t.Cursor - half
		if start < 0 {
			start = 0
		}
		end = start + t.MaxVisibleRows
		if end > len(t.Rows) {
			end = len(t.Rows)
			start = end - t.MaxVisibleRows
		}
	}

	for i := start; i < end; i++ {
		row := t.Rows[i]
		var line strings.Builder
		for j, col := range t.Columns {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			line.WriteString(padToWidth(TruncateTo(cell, col.Width), col.Width+2))
		}

		text := strings.TrimRight(line.String(), " ")
		if i == t.Cursor {
			b.WriteString(SelectedStyle.Render("› ") + SelectedLabelStyle.Render(text))
		} else {
			b.WriteString("  " + NormalLabelStyle.Render(text))
		}
		b.WriteString("\n")
	}

	return b.String()
}
