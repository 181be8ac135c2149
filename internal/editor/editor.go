// Package editor is the mode/cursor state machine at the heart of csved.
// It consumes logical key symbols and drives the document, the undo stack
// and the clipboard; it never touches the terminal. Each dispatch returns
// an explicit Continue/Stop status, so loop termination is a value the
// host inspects rather than a shared flag.
package editor

import (
	"fmt"
	"time"

	"github.com/marcus/csved/internal/clipboard"
	"github.com/marcus/csved/internal/document"
	"github.com/marcus/csved/internal/history"
)

// DefaultPageSize is how many rows a page-movement symbol jumps.
const DefaultPageSize = 5

// DateFormat is the layout pasted by the paste-date symbol.
const DateFormat = "2006-01-02"

// Status tells the host loop whether to keep reading events.
type Status int

const (
	Continue Status = iota
	Stop
)

// Saver persists the document on quit. Implemented by internal/csvio.
type Saver interface {
	Save(doc *document.Document) error
}

// Editor owns the current mode and cursor and mediates every mutation of
// the document, history and clipboard. It is single-threaded by design:
// one Dispatch runs to completion before the next event is read.
type Editor struct {
	doc      *document.Document
	history  history.Stack
	clip     clipboard.Clipboard
	mode     Mode
	saver    Saver
	pageSize int
	now      func() time.Time
}

// New builds an editor over doc, starting in Navigating(0,0).
func New(doc *document.Document, saver Saver) *Editor {
	return &Editor{
		doc:      doc,
		mode:     Navigating{},
		saver:    saver,
		pageSize: DefaultPageSize,
		now:      time.Now,
	}
}

// SetPageSize overrides the page-movement jump distance.
func (e *Editor) SetPageSize(n int) {
	if n > 0 {
		e.pageSize = n
	}
}

// SetClock overrides the clock used by paste-date. Tests use this to pin
// the pasted date.
func (e *Editor) SetClock(now func() time.Time) { e.now = now }

// Document returns the live document for read access by the renderer.
func (e *Editor) Document() *document.Document { return e.doc }

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// Cursor returns the cursor position regardless of mode. Header editing
// has no row concept and reports row 0.
func (e *Editor) Cursor() (row, col int) {
	switch m := e.mode.(type) {
	case Navigating:
		return m.Row, m.Col
	case EditingCell:
		return m.Row, m.Col
	case EditingHeader:
		return 0, m.Col
	}
	return 0, 0
}

// HistoryLen returns the undo stack depth.
func (e *Editor) HistoryLen() int { return e.history.Len() }

// Dispatch applies one logical symbol. Unrecognized symbols are explicit
// no-ops. The returned error is only non-nil for the save-on-quit path.
func (e *Editor) Dispatch(sym Symbol) (Status, error) {
	switch m := e.mode.(type) {
	case Navigating:
		return e.dispatchNavigating(m, sym)
	case EditingCell:
		e.dispatchEditingCell(m, sym)
	case EditingHeader:
		e.dispatchEditingHeader(m, sym)
	}
	return Continue, nil
}

func (e *Editor) dispatchNavigating(m Navigating, sym Symbol) (Status, error) {
	rows, cols := e.doc.RowCount(), e.doc.ColCount()

	switch sym.Kind {
	case SymbolMoveLeft:
		if m.Col > 0 {
			m.Col--
		}
	case SymbolMoveRight:
		if m.Col < cols-1 {
			m.Col++
		}
	case SymbolMoveUp:
		if m.Row > 0 {
			m.Row--
		}
	case SymbolMoveDown:
		if m.Row < rows-1 {
			m.Row++
		}
	case SymbolPageUp:
		m.Row = max(0, m.Row-e.pageSize)
	case SymbolPageDown:
		if rows > 0 {
			m.Row = min(rows-1, m.Row+e.pageSize)
		}
	case SymbolJumpTop:
		m.Row = 0
	case SymbolJumpBottom:
		if rows > 0 {
			m.Row = rows - 1
		}
	case SymbolJumpRowStart:
		m.Col = 0
	case SymbolJumpRowEnd:
		if cols > 0 {
			m.Col = cols - 1
		}

	case SymbolUndo:
		m = e.undo(m)

	case SymbolInsertRowAfter:
		e.history.Push(e.doc.Snapshot())
		e.doc.InsertRowAfter(m.Row)
		if rows > 0 {
			m.Row++ // onto the new row; on an empty grid it is row 0 already
		}
	case SymbolInsertRowBefore:
		e.history.Push(e.doc.Snapshot())
		e.doc.InsertRowBefore(m.Row)
	case SymbolDeleteRow:
		if rows == 0 {
			break
		}
		e.history.Push(e.doc.Snapshot())
		e.doc.DeleteRow(m.Row)
		if m.Row >= e.doc.RowCount() {
			m.Row = max(0, e.doc.RowCount()-1)
		}

	case SymbolInsertColAfter:
		e.history.Push(e.doc.Snapshot())
		e.doc.InsertColAfter(m.Col)
		if cols > 0 {
			m.Col++
		}
	case SymbolInsertColBefore:
		e.history.Push(e.doc.Snapshot())
		e.doc.InsertColBefore(m.Col)
	case SymbolDeleteCol:
		if cols == 0 {
			break
		}
		e.history.Push(e.doc.Snapshot())
		e.doc.DeleteCol(m.Col)
		if m.Col >= e.doc.ColCount() {
			m.Col = max(0, e.doc.ColCount()-1)
		}

	case SymbolEditInsert:
		if !e.cellExists(m) {
			break
		}
		e.history.Push(e.doc.Snapshot())
		e.mode = EditingCell{Row: m.Row, Col: m.Col}
		return Continue, nil
	case SymbolEditReplace:
		if !e.cellExists(m) {
			break
		}
		// Snapshot before clearing, so one undo restores the old value.
		e.history.Push(e.doc.Snapshot())
		e.doc.SetCell(m.Row, m.Col, "")
		e.mode = EditingCell{Row: m.Row, Col: m.Col}
		return Continue, nil
	case SymbolEditHeader:
		if cols == 0 {
			break
		}
		e.history.Push(e.doc.Snapshot())
		e.mode = EditingHeader{Col: m.Col}
		return Continue, nil

	case SymbolCopy:
		if e.cellExists(m) {
			e.clip.Copy(e.doc.Cell(m.Row, m.Col))
		}
	case SymbolPaste:
		value, ok := e.clip.Paste()
		if !ok || !e.cellExists(m) {
			break
		}
		e.history.Push(e.doc.Snapshot())
		e.doc.SetCell(m.Row, m.Col, value)
	case SymbolPasteDate:
		if !e.cellExists(m) {
			break
		}
		e.history.Push(e.doc.Snapshot())
		e.doc.SetCell(m.Row, m.Col, e.now().Format(DateFormat))

	case SymbolQuit:
		if err := e.saver.Save(e.doc); err != nil {
			return Stop, fmt.Errorf("saving on quit: %w", err)
		}
		return Stop, nil
	}

	e.mode = m
	return Continue, nil
}

func (e *Editor) dispatchEditingCell(m EditingCell, sym Symbol) {
	switch sym.Kind {
	case SymbolInput:
		e.doc.AppendChar(m.Row, m.Col, sym.Rune)
	case SymbolBackspace:
		e.doc.PopChar(m.Row, m.Col)
	case SymbolConfirm:
		e.mode = Navigating{Row: m.Row, Col: m.Col}
	}
}

func (e *Editor) dispatchEditingHeader(m EditingHeader, sym Symbol) {
	switch sym.Kind {
	case SymbolInput:
		e.doc.AppendHeaderChar(m.Col, sym.Rune)
	case SymbolBackspace:
		e.doc.PopHeaderChar(m.Col)
	case SymbolConfirm:
		e.mode = Navigating{Row: 0, Col: m.Col}
	}
}

// undo pops the newest snapshot into the live document and clamps the
// cursor to the restored dimensions. A shrunken row range moves the
// cursor to the last row, column 0.
func (e *Editor) undo(m Navigating) Navigating {
	snap, ok := e.history.Pop()
	if !ok {
		return m
	}
	e.doc.Restore(snap)
	if rows := e.doc.RowCount(); m.Row >= rows {
		m.Row = max(0, rows-1)
		m.Col = 0
	}
	if cols := e.doc.ColCount(); m.Col >= cols {
		m.Col = max(0, cols-1)
	}
	return m
}

// cellExists reports whether the cursor addresses a real cell. False on a
// zero-row or zero-column grid, where cell-level actions are blocked.
func (e *Editor) cellExists(m Navigating) bool {
	return m.Row < e.doc.RowCount() && m.Col < e.doc.ColCount()
}
