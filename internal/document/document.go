// Package document holds the in-memory grid being edited: an ordered
// header row plus an ordered list of data rows. Every row always has
// exactly as many cells as there are headers; column operations apply to
// the headers and every row in one step so the two can never drift.
//
// The document does not record undo state itself. Callers that mutate it
// are expected to capture a Snapshot first (see internal/history).
package document

// Document is a header row plus a grid of string cells.
type Document struct {
	headers []string
	rows    [][]string
}

// Snapshot is an immutable deep copy of a document's contents,
// captured for undo.
type Snapshot struct {
	headers []string
	rows    [][]string
}

// New builds a document from headers and rows. Rows are normalized to the
// header width: short rows are padded with empty cells, long rows
// truncated. The inputs are copied; the caller keeps ownership.
func New(headers []string, rows [][]string) *Document {
	d := &Document{headers: append([]string(nil), headers...)}
	d.rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		d.rows = append(d.rows, normalizeRow(row, len(headers)))
	}
	return d
}

func normalizeRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// Headers returns the header row. The slice is shared; callers must not
// mutate it.
func (d *Document) Headers() []string { return d.headers }

// Rows returns the data grid. The slices are shared; callers must not
// mutate them.
func (d *Document) Rows() [][]string { return d.rows }

// RowCount returns the number of data rows.
func (d *Document) RowCount() int { return len(d.rows) }

// ColCount returns the number of columns.
func (d *Document) ColCount() int { return len(d.headers) }

// Cell returns the value at (row, col).
func (d *Document) Cell(row, col int) string { return d.rows[row][col] }

// Header returns the header value for col.
func (d *Document) Header(col int) string { return d.headers[col] }

// InsertRowAfter inserts an empty row after idx. On an empty grid the new
// row becomes row 0 regardless of idx, so an empty document can always
// grow a first row.
func (d *Document) InsertRowAfter(idx int) {
	if len(d.rows) == 0 {
		d.insertRow(0)
		return
	}
	d.insertRow(idx + 1)
}

// InsertRowBefore inserts an empty row at idx, pushing idx and everything
// after it down. On an empty grid the new row becomes row 0.
func (d *Document) InsertRowBefore(idx int) {
	if len(d.rows) == 0 {
		d.insertRow(0)
		return
	}
	d.insertRow(idx)
}

func (d *Document) insertRow(at int) {
	empty := make([]string, len(d.headers))
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = empty
}

// DeleteRow removes the row at idx. Deleting the last remaining row is
// legal and leaves a zero-row grid.
func (d *Document) DeleteRow(idx int) {
	d.rows = append(d.rows[:idx], d.rows[idx+1:]...)
}

// InsertColAfter inserts an empty column after idx, in the headers and in
// every row together. On a zero-column grid the new column becomes
// column 0 regardless of idx.
func (d *Document) InsertColAfter(idx int) {
	if len(d.headers) == 0 {
		d.insertCol(0)
		return
	}
	d.insertCol(idx + 1)
}

// InsertColBefore inserts an empty column at idx, in the headers and in
// every row together. On a zero-column grid the new column becomes
// column 0.
func (d *Document) InsertColBefore(idx int) {
	if len(d.headers) == 0 {
		d.insertCol(0)
		return
	}
	d.insertCol(idx)
}

func (d *Document) insertCol(at int) {
	d.headers = insertAt(d.headers, at)
	for i, row := range d.rows {
		d.rows[i] = insertAt(row, at)
	}
}

func insertAt(s []string, at int) []string {
	s = append(s, "")
	copy(s[at+1:], s[at:])
	s[at] = ""
	return s
}

// DeleteCol removes column idx from the headers and from every row.
func (d *Document) DeleteCol(idx int) {
	d.headers = append(d.headers[:idx], d.headers[idx+1:]...)
	for i, row := range d.rows {
		d.rows[i] = append(row[:idx], row[idx+1:]...)
	}
}

// SetCell overwrites the value at (row, col).
func (d *Document) SetCell(row, col int, value string) {
	d.rows[row][col] = value
}

// SetHeader overwrites the header value for col.
func (d *Document) SetHeader(col int, value string) {
	d.headers[col] = value
}

// AppendChar appends c to the cell at (row, col).
func (d *Document) AppendChar(row, col int, c rune) {
	d.rows[row][col] += string(c)
}

// PopChar removes the last character of the cell at (row, col).
// Popping an empty cell is a no-op.
func (d *Document) PopChar(row, col int) {
	d.rows[row][col] = popLast(d.rows[row][col])
}

// AppendHeaderChar appends c to the header for col.
func (d *Document) AppendHeaderChar(col int, c rune) {
	d.headers[col] += string(c)
}

// PopHeaderChar removes the last character of the header for col.
// Popping an empty header is a no-op.
func (d *Document) PopHeaderChar(col int) {
	d.headers[col] = popLast(d.headers[col])
}

func popLast(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}

// Snapshot captures a deep copy of the current headers and rows.
func (d *Document) Snapshot() Snapshot {
	snap := Snapshot{headers: append([]string(nil), d.headers...)}
	snap.rows = make([][]string, len(d.rows))
	for i, row := range d.rows {
		snap.rows[i] = append([]string(nil), row...)
	}
	return snap
}

// Restore replaces the document's contents with the snapshot, wholesale.
// The snapshot stays valid; its contents are copied in.
func (d *Document) Restore(snap Snapshot) {
	d.headers = append([]string(nil), snap.headers...)
	d.rows = make([][]string, len(snap.rows))
	for i, row := range snap.rows {
		d.rows[i] = append([]string(nil), row...)
	}
}

// RowCount returns the number of data rows in the snapshot.
func (s Snapshot) RowCount() int { return len(s.rows) }

// ColCount returns the number of columns in the snapshot.
func (s Snapshot) ColCount() int { return len(s.headers) }

// Equal reports whether two documents hold identical headers and cells.
func (d *Document) Equal(other *Document) bool {
	if len(d.headers) != len(other.headers) || len(d.rows) != len(other.rows) {
		return false
	}
	for i, h := range d.headers {
		if other.headers[i] != h {
			return false
		}
	}
	for i, row := range d.rows {
		for j, c := range row {
			if other.rows[i][j] != c {
				return false
			}
		}
	}
	return true
}
