// Package app is the Bubble Tea glue around the editor core: it
// translates key events into logical symbols, asks the editor to
// dispatch them, and paints the grid. It reads editor state but owns
// none of the editing logic.
package app

import (
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/csved/internal/config"
	"github.com/marcus/csved/internal/csvio"
	"github.com/marcus/csved/internal/document"
	"github.com/marcus/csved/internal/editor"
	"github.com/marcus/csved/internal/keymap"
)

// Model is the root Bubble Tea model for csved.
type Model struct {
	editor *editor.Editor
	file   *csvio.File
	keymap *keymap.Registry
	cfg    *config.Config
	logger *slog.Logger

	// Viewport
	width, height int
	ready         bool
	top           int // scroll anchor: topmost visible row
	leftCol       int // leftmost visible column

	// Dirty tracking: content hash captured at load time.
	baseline uint64

	// Toast messages
	toast       string
	toastExpiry time.Time

	// External-change watch
	changes <-chan struct{}

	// Save-on-quit failure, reported by main after the program exits.
	saveErr error
}

// New builds the application model and starts the external-change watch.
func New(ed *editor.Editor, file *csvio.File, km *keymap.Registry, cfg *config.Config, logger *slog.Logger) Model {
	m := Model{
		editor:   ed,
		file:     file,
		keymap:   km,
		cfg:      cfg,
		logger:   logger,
		baseline: hashDocument(ed.Document()),
	}
	ch, err := watchFile(file.Path(), logger)
	if err != nil {
		// Watching is advisory; editing works without it.
		logger.Warn("file watch unavailable", "path", file.Path(), "err", err)
	} else {
		m.changes = ch
	}
	return m
}

// Init starts listening for external file changes.
func (m Model) Init() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return waitForChange(m.changes)
}

// SaveErr returns the save-on-quit failure, if any. Main inspects this
// after Run so a failed rewrite is a visible non-zero exit, never a
// silent loss of edits.
func (m Model) SaveErr() error { return m.saveErr }

// ScrollAnchor returns the topmost visible row index.
func (m Model) ScrollAnchor() int { return m.top }

// Dirty reports whether the document differs from its loaded state.
func (m Model) Dirty() bool {
	return hashDocument(m.editor.Document()) != m.baseline
}

// ShowToast displays a transient status-bar message.
func (m *Model) ShowToast(msg string, d time.Duration) {
	m.toast = msg
	m.toastExpiry = time.Now().Add(d)
}

func (m *Model) activeToast() string {
	if m.toast == "" || time.Now().After(m.toastExpiry) {
		return ""
	}
	return m.toast
}

// context returns the keymap context for the editor's current mode.
func (m Model) context() string {
	switch m.editor.Mode().(type) {
	case editor.EditingCell:
		return keymap.ContextEdit
	case editor.EditingHeader:
		return keymap.ContextHeader
	default:
		return keymap.ContextNavigate
	}
}

// hashDocument fingerprints headers and cells for dirty tracking.
// Cells are length-prefix separated so shifting content between
// neighboring cells cannot collide.
func hashDocument(doc *document.Document) uint64 {
	h := xxhash.New()
	sep := []byte{0}
	for _, s := range doc.Headers() {
		_, _ = h.WriteString(s)
		_, _ = h.Write(sep)
	}
	for _, row := range doc.Rows() {
		_, _ = h.Write([]byte{1})
		for _, c := range row {
			_, _ = h.WriteString(c)
			_, _ = h.Write(sep)
		}
	}
	return h.Sum64()
}
