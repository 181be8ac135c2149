package editor

// SymbolKind enumerates the logical key symbols the state machine
// understands. The host maps raw key events to symbols (see
// internal/keymap); the state machine never sees terminal key codes.
type SymbolKind int

const (
	SymbolNone SymbolKind = iota

	SymbolMoveLeft
	SymbolMoveRight
	SymbolMoveUp
	SymbolMoveDown
	SymbolPageUp
	SymbolPageDown
	SymbolJumpTop
	SymbolJumpBottom
	SymbolJumpRowStart
	SymbolJumpRowEnd

	SymbolInsertRowAfter
	SymbolInsertRowBefore
	SymbolDeleteRow
	SymbolInsertColAfter
	SymbolInsertColBefore
	SymbolDeleteCol

	SymbolEditInsert
	SymbolEditReplace
	SymbolEditHeader

	SymbolCopy
	SymbolPaste
	SymbolPasteDate
	SymbolUndo
	SymbolQuit

	SymbolConfirm
	SymbolBackspace
	SymbolInput
)

var symbolNames = map[SymbolKind]string{
	SymbolNone:            "none",
	SymbolMoveLeft:        "move-left",
	SymbolMoveRight:       "move-right",
	SymbolMoveUp:          "move-up",
	SymbolMoveDown:        "move-down",
	SymbolPageUp:          "page-up",
	SymbolPageDown:        "page-down",
	SymbolJumpTop:         "jump-top",
	SymbolJumpBottom:      "jump-bottom",
	SymbolJumpRowStart:    "jump-row-start",
	SymbolJumpRowEnd:      "jump-row-end",
	SymbolInsertRowAfter:  "insert-row-after",
	SymbolInsertRowBefore: "insert-row-before",
	SymbolDeleteRow:       "delete-row",
	SymbolInsertColAfter:  "insert-col-after",
	SymbolInsertColBefore: "insert-col-before",
	SymbolDeleteCol:       "delete-col",
	SymbolEditInsert:      "edit-cell",
	SymbolEditReplace:     "replace-cell",
	SymbolEditHeader:      "edit-header",
	SymbolCopy:            "copy-cell",
	SymbolPaste:           "paste-cell",
	SymbolPasteDate:       "paste-date",
	SymbolUndo:            "undo",
	SymbolQuit:            "save-quit",
	SymbolConfirm:         "confirm",
	SymbolBackspace:       "backspace",
	SymbolInput:           "input",
}

func (k SymbolKind) String() string {
	if name, ok := symbolNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindByName resolves a symbol name as used in keymap bindings and config
// overrides. ok is false for unknown names.
func KindByName(name string) (SymbolKind, bool) {
	for k, n := range symbolNames {
		if n == name {
			return k, true
		}
	}
	return SymbolNone, false
}

// Symbol is one logical input event. Rune is only meaningful for
// SymbolInput.
type Symbol struct {
	Kind SymbolKind
	Rune rune
}

// Input builds a printable-character symbol.
func Input(r rune) Symbol { return Symbol{Kind: SymbolInput, Rune: r} }
