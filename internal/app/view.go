package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/csved/internal/editor"
	"github.com/marcus/csved/internal/keymap"
	"github.com/marcus/csved/internal/styles"
	"github.com/mattn/go-runewidth"
)

const (
	// title + header + separator + status + footer
	chromeHeight = 5

	minColWidth = 4
	cellPadding = 1 // spaces either side of a cell
	editCursor  = "_"
)

// View renders the entire grid UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	doc := m.editor.Document()
	widths := m.columnWidths()
	gutter := gutterWidth(doc.RowCount())
	visStart, visEnd := m.visibleColRange(widths, gutter)

	var b strings.Builder

	// Title
	title := styles.Title.Render(" csved ") + styles.Muted.Render(m.file.Path())
	if m.Dirty() {
		title += styles.Dirty.Render(" *")
	}
	b.WriteString(ansi.Truncate(title, m.width, "…"))
	b.WriteString("\n")

	// Header row
	b.WriteString(m.renderHeaderRow(widths, gutter, visStart, visEnd))
	b.WriteString("\n")

	// Separator
	b.WriteString(m.renderSeparator(widths, gutter, visStart, visEnd))
	b.WriteString("\n")

	// Data rows
	if doc.RowCount() == 0 {
		b.WriteString(styles.Muted.Render(" (no rows - press o to add one)"))
		b.WriteString("\n")
	} else {
		endRow := min(m.top+m.visibleRows(), doc.RowCount())
		for ri := m.top; ri < endRow; ri++ {
			b.WriteString(m.renderDataRow(ri, widths, gutter, visStart, visEnd))
			b.WriteString("\n")
		}
	}

	// Status bar + footer
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeaderRow(widths []int, gutter, visStart, visEnd int) string {
	doc := m.editor.Document()
	editingCol := -1
	if eh, ok := m.editor.Mode().(editor.EditingHeader); ok {
		editingCol = eh.Col
	}

	var b strings.Builder
	b.WriteString(styles.Gutter.Render(strings.Repeat(" ", gutter)))
	for ci := visStart; ci < visEnd; ci++ {
		text := doc.Header(ci)
		style := styles.Header
		if ci == editingCol {
			text += editCursor
			style = styles.HeaderEditing
		}
		b.WriteString(style.Render(padCell(text, widths[ci])))
		if ci < visEnd-1 {
			b.WriteString(styles.Separator.Render("│"))
		}
	}
	return b.String()
}

func (m Model) renderSeparator(widths []int, gutter, visStart, visEnd int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter))
	for ci := visStart; ci < visEnd; ci++ {
		b.WriteString(styles.Separator.Render(strings.Repeat("─", widths[ci]+2*cellPadding)))
		if ci < visEnd-1 {
			b.WriteString(styles.Separator.Render("┼"))
		}
	}
	return b.String()
}

func (m Model) renderDataRow(ri int, widths []int, gutter, visStart, visEnd int) string {
	doc := m.editor.Document()
	curRow, curCol := m.editor.Cursor()

	var b strings.Builder
	b.WriteString(styles.Gutter.Render(fmt.Sprintf("%*d ", gutter-1, ri+1)))
	for ci := visStart; ci < visEnd; ci++ {
		text := doc.Cell(ri, ci)
		style := styles.Cell
		if ri == curRow && ci == curCol {
			switch m.editor.Mode().(type) {
			case editor.Navigating:
				style = styles.CursorNavigating
			case editor.EditingCell:
				text += editCursor
				style = styles.CursorEditing
			}
		}
		b.WriteString(style.Render(padCell(text, widths[ci])))
		if ci < visEnd-1 {
			b.WriteString(styles.Separator.Render("│"))
		}
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	doc := m.editor.Document()
	row, col := m.editor.Cursor()

	mode := styles.StatusMode.Render(m.modeName())
	pos := fmt.Sprintf(" %d,%d  %dx%d ", row+1, col+1, doc.RowCount(), doc.ColCount())
	status := mode + styles.StatusBar.Render(pos)
	if m.Dirty() {
		status += styles.Dirty.Render("* ")
	}
	if toast := m.activeToast(); toast != "" {
		status += styles.Toast.Render(" " + toast + " ")
	}
	return ansi.Truncate(status, m.width, "…")
}

func (m Model) renderFooter() string {
	bindings := keymap.NavigateHelp()
	if m.context() != keymap.ContextNavigate {
		bindings = keymap.EditHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return ansi.Truncate(styles.Muted.Render(" "+strings.Join(parts, "  ")), m.width, "…")
}

func (m Model) modeName() string {
	switch m.editor.Mode().(type) {
	case editor.EditingCell:
		return "EDIT"
	case editor.EditingHeader:
		return "HEADER"
	default:
		return "NAV"
	}
}

// columnWidths sizes each column to its content: at least minColWidth, at
// most the configured cap, sampling up to 100 rows for speed.
func (m Model) columnWidths() []int {
	doc := m.editor.Document()
	widths := make([]int, doc.ColCount())
	for i, h := range doc.Headers() {
		widths[i] = max(minColWidth, runewidth.StringWidth(h))
	}

	sampleEnd := min(doc.RowCount(), 100)
	for _, row := range doc.Rows()[:sampleEnd] {
		for i, c := range row {
			if w := runewidth.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i := range widths {
		widths[i] = min(widths[i], m.cfg.UI.MaxColWidth)
	}
	return widths
}

// visibleColRange picks the contiguous run of columns to draw, keeping
// the cursor's column on screen.
func (m Model) visibleColRange(widths []int, gutter int) (int, int) {
	if len(widths) == 0 {
		return 0, 0
	}
	_, curCol := m.editor.Cursor()

	start := min(m.leftCol, len(widths)-1)
	if curCol < start {
		start = curCol
	}

	avail := m.width - gutter
	fits := func(from int) int {
		used := 0
		end := from
		for end < len(widths) {
			w := widths[end] + 2*cellPadding + 1 // padding + separator
			if used+w > avail && end > from {
				break
			}
			used += w
			end++
		}
		return end
	}

	end := fits(start)
	// Slide the window right until the cursor column is inside it.
	for curCol >= end && start < curCol {
		start++
		end = fits(start)
	}
	return start, end
}

func gutterWidth(rows int) int {
	return len(strconv.Itoa(max(rows, 1))) + 1
}

func padCell(s string, width int) string {
	pad := strings.Repeat(" ", cellPadding)
	return pad + runewidth.FillRight(runewidth.Truncate(s, width, "…"), width) + pad
}
