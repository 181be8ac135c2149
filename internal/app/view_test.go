package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsGridContents(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	for _, want := range []string{"Name", "Age", "Alice", "Bob", "30", "25"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(view, "NAV") {
		t.Error("view missing mode indicator")
	}
}

func TestViewBeforeFirstWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m.ready = false
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before sizing = %q", got)
	}
}

func TestViewEmptyGrid(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyRune('d'), keyRune('d'))

	view := m.View()
	if !strings.Contains(view, "no rows") {
		t.Error("empty grid view missing the empty-state hint")
	}
	if !strings.Contains(view, "Name") {
		t.Error("headers must still render with zero rows")
	}
}

func TestModeIndicators(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, keyRune('i'))
	if !strings.Contains(m.View(), "EDIT") {
		t.Error("view missing EDIT indicator")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, keyRune('H'))
	if !strings.Contains(m.View(), "HEADER") {
		t.Error("view missing HEADER indicator")
	}
}

func TestColumnWidthsRespectBounds(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyRune('r'))
	for i := 0; i < 60; i++ {
		m = press(t, m, keyRune('w'))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	widths := m.columnWidths()
	for i, w := range widths {
		if w < minColWidth {
			t.Errorf("col %d width %d below minimum %d", i, w, minColWidth)
		}
		if w > m.cfg.UI.MaxColWidth {
			t.Errorf("col %d width %d above cap %d", i, w, m.cfg.UI.MaxColWidth)
		}
	}
}

func TestVisibleColRangeKeepsCursorOnScreen(t *testing.T) {
	m, _ := newTestModel(t)

	// Grow to many columns so they cannot all fit in a narrow window.
	for i := 0; i < 20; i++ {
		m = press(t, m, keyRune('n'))
	}
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 24})
	m = sized.(Model)

	_, curCol := m.editor.Cursor()
	start, end := m.visibleColRange(m.columnWidths(), gutterWidth(m.editor.Document().RowCount()))
	if curCol < start || curCol >= end {
		t.Errorf("cursor col %d outside visible range [%d,%d)", curCol, start, end)
	}

	m = press(t, m, keyRune('I')) // jump to first column
	start, end = m.visibleColRange(m.columnWidths(), gutterWidth(m.editor.Document().RowCount()))
	if start != 0 {
		t.Errorf("start = %d, want 0 after jumping to the first column", start)
	}
	if end <= start {
		t.Errorf("empty visible range [%d,%d)", start, end)
	}
}

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		rows, want int
	}{
		{0, 2},
		{9, 2},
		{10, 3},
		{1234, 5},
	}
	for _, tt := range tests {
		if got := gutterWidth(tt.rows); got != tt.want {
			t.Errorf("gutterWidth(%d) = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestPadCellTruncatesWideContent(t *testing.T) {
	got := padCell("abcdefgh", 5)
	if !strings.Contains(got, "…") {
		t.Errorf("padCell(%q, 5) = %q, want ellipsis", "abcdefgh", got)
	}
	got = padCell("ab", 5)
	if want := " ab    "; got != want {
		t.Errorf("padCell(%q, 5) = %q, want %q", "ab", got, want)
	}
}
