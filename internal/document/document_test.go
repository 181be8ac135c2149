package document

import "testing"

func sample() *Document {
	return New(
		[]string{"Name", "Age"},
		[][]string{{"Alice", "30"}, {"Bob", "25"}},
	)
}

func checkWidths(t *testing.T, d *Document) {
	t.Helper()
	want := d.ColCount()
	if len(d.Headers()) != want {
		t.Fatalf("header width = %d, want %d", len(d.Headers()), want)
	}
	for i, row := range d.Rows() {
		if len(row) != want {
			t.Fatalf("row %d width = %d, want %d", i, len(row), want)
		}
	}
}

func TestNewNormalizesRaggedRows(t *testing.T) {
	d := New(
		[]string{"a", "b", "c"},
		[][]string{{"1"}, {"1", "2", "3", "4"}, nil},
	)
	checkWidths(t, d)
	if got := d.Cell(0, 1); got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
	if got := d.Cell(1, 2); got != "3" {
		t.Errorf("truncated row cell = %q, want %q", got, "3")
	}
}

func TestRowInsertDelete(t *testing.T) {
	d := sample()

	d.InsertRowAfter(0)
	if d.RowCount() != 3 {
		t.Fatalf("RowCount = %d, want 3", d.RowCount())
	}
	if d.Cell(1, 0) != "" || d.Cell(2, 0) != "Bob" {
		t.Errorf("insert after row 0 misplaced rows: %v", d.Rows())
	}

	d.InsertRowBefore(0)
	if d.Cell(0, 0) != "" || d.Cell(1, 0) != "Alice" {
		t.Errorf("insert before row 0 misplaced rows: %v", d.Rows())
	}

	d.DeleteRow(0)
	d.DeleteRow(1)
	if d.RowCount() != 2 || d.Cell(0, 0) != "Alice" || d.Cell(1, 0) != "Bob" {
		t.Errorf("after deletes rows = %v", d.Rows())
	}
	checkWidths(t, d)
}

func TestDeleteLastRowLeavesEmptyGrid(t *testing.T) {
	d := New([]string{"a"}, [][]string{{"1"}})
	d.DeleteRow(0)
	if d.RowCount() != 0 {
		t.Fatalf("RowCount = %d, want 0", d.RowCount())
	}
	// An empty grid can always grow a first row again.
	d.InsertRowAfter(0)
	if d.RowCount() != 1 {
		t.Fatalf("RowCount after insert = %d, want 1", d.RowCount())
	}
	checkWidths(t, d)
}

func TestColumnOpsKeepHeadersAndRowsInSync(t *testing.T) {
	d := sample()

	ops := []struct {
		name string
		op   func()
	}{
		{"insert after 0", func() { d.InsertColAfter(0) }},
		{"insert before 0", func() { d.InsertColBefore(0) }},
		{"delete 1", func() { d.DeleteCol(1) }},
		{"insert after last", func() { d.InsertColAfter(d.ColCount() - 1) }},
		{"delete 0", func() { d.DeleteCol(0) }},
		{"delete 0 again", func() { d.DeleteCol(0) }},
	}
	for _, tt := range ops {
		tt.op()
		checkWidths(t, d)
	}
	if d.ColCount() != 2 {
		t.Errorf("ColCount = %d, want 2", d.ColCount())
	}
}

func TestInsertColAfterPlacesEmptyColumn(t *testing.T) {
	d := sample()
	d.InsertColAfter(0)
	if got := d.Header(1); got != "" {
		t.Errorf("new header = %q, want empty", got)
	}
	if d.Cell(0, 0) != "Alice" || d.Cell(0, 1) != "" || d.Cell(0, 2) != "30" {
		t.Errorf("row 0 after insert = %v", d.Rows()[0])
	}
}

func TestCellEditing(t *testing.T) {
	d := sample()

	d.SetCell(1, 1, "31")
	if d.Cell(1, 1) != "31" {
		t.Errorf("SetCell: got %q", d.Cell(1, 1))
	}

	d.AppendChar(1, 1, '!')
	if d.Cell(1, 1) != "31!" {
		t.Errorf("AppendChar: got %q", d.Cell(1, 1))
	}

	d.PopChar(1, 1)
	d.PopChar(1, 1)
	if d.Cell(1, 1) != "3" {
		t.Errorf("PopChar: got %q", d.Cell(1, 1))
	}

	d.SetCell(1, 1, "")
	d.PopChar(1, 1) // no-op on empty
	if d.Cell(1, 1) != "" {
		t.Errorf("PopChar on empty: got %q", d.Cell(1, 1))
	}
}

func TestHeaderEditing(t *testing.T) {
	d := sample()
	d.SetHeader(0, "")
	d.PopHeaderChar(0) // no-op on empty
	d.AppendHeaderChar(0, 'I')
	d.AppendHeaderChar(0, 'D')
	d.PopHeaderChar(0)
	if d.Header(0) != "I" {
		t.Errorf("header = %q, want %q", d.Header(0), "I")
	}
}

func TestPopCharHandlesMultibyte(t *testing.T) {
	d := New([]string{"a"}, [][]string{{"héllo"}})
	for i := 0; i < 4; i++ {
		d.PopChar(0, 0)
	}
	if d.Cell(0, 0) != "h" {
		t.Errorf("got %q, want %q", d.Cell(0, 0), "h")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	d := sample()
	snap := d.Snapshot()

	d.SetCell(0, 0, "Mallory")
	d.DeleteCol(1)
	d.InsertRowAfter(0)

	d.Restore(snap)
	if !d.Equal(sample()) {
		t.Errorf("restored document differs: %v / %v", d.Headers(), d.Rows())
	}
}

func TestSnapshotIsIsolatedFromLaterEdits(t *testing.T) {
	d := sample()
	snap := d.Snapshot()
	d.SetCell(0, 0, "Eve")
	d.SetHeader(0, "Who")

	fresh := New(nil, nil)
	fresh.Restore(snap)
	if fresh.Cell(0, 0) != "Alice" || fresh.Header(0) != "Name" {
		t.Errorf("snapshot mutated by later edits: %v %v", fresh.Headers(), fresh.Rows())
	}
}
