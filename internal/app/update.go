package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/csved/internal/editor"
)

// FileChangedMsg reports that the source file was modified by another
// process while a session is open.
type FileChangedMsg struct{}

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.clampScroll()
		return m, nil

	case FileChangedMsg:
		m.logger.Info("source file changed on disk", "path", m.file.Path())
		m.ShowToast("file changed on disk; quitting will overwrite it", 8*time.Second)
		if m.changes == nil {
			return m, nil
		}
		return m, waitForChange(m.changes)
	}

	return m, nil
}

// handleKeyMsg maps one key event to a logical symbol and dispatches it.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sym := m.keymap.Resolve(msg.String(), m.context())

	status, err := m.editor.Dispatch(sym)
	if err != nil {
		// Only the save-on-quit path can fail. Surface it after exit.
		m.saveErr = err
		return m, tea.Quit
	}
	if status == editor.Stop {
		return m, tea.Quit
	}

	m.clampScroll()
	return m, nil
}

// clampScroll recomputes the scroll anchor so the cursor stays inside
// the viewport.
func (m *Model) clampScroll() {
	row, col := m.editor.Cursor()

	visible := m.visibleRows()
	if row < m.top {
		m.top = row
	}
	if row >= m.top+visible {
		m.top = row - visible + 1
	}
	if m.top < 0 {
		m.top = 0
	}

	if col < m.leftCol {
		m.leftCol = col
	}
	if m.leftCol < 0 {
		m.leftCol = 0
	}
}

// visibleRows returns how many data rows fit under the chrome
// (title, header, separator, status, footer).
func (m Model) visibleRows() int {
	v := m.height - chromeHeight
	if v < 1 {
		return 1
	}
	return v
}
