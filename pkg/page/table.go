package page

import "sync"

// Row is one rendered table row: its text cells followed by an actions cell of links.
type Row struct {
	Cells []string
	Links []*Element
}

// TableBody is the body of a results table.
type TableBody struct {
	mu   sync.Mutex
	id   string
	rows []Row
}

// ID returns the table body's element id.
func (t *TableBody) ID() string {
	return t.id
}

// Rows returns a copy of the current rows.
func (t *TableBody) Rows() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Row(nil), t.rows...)
}

// Len returns the number of rows.
func (t *TableBody) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// Clear removes every row.
func (t *TableBody) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = nil
}

// Append adds a row at the end.
func (t *TableBody) Append(row Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row)
}

// Replace swaps every row for rows in a single step.
func (t *TableBody) Replace(rows []Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append([]Row(nil), rows...)
}

// Links returns the links of every row, in row order.
func (t *TableBody) Links() []*Element {
	t.mu.Lock()
	defer t.mu.Unlock()

	var links []*Element
	for _, row := range t.rows {
		links = append(links, row.Links...)
	}
	return links
}
