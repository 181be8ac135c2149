package editor

// Mode is the editor's current interaction mode. It is a closed sum: each
// variant carries exactly the coordinates that are meaningful in that
// mode, so header editing cannot reference a row index at all.
type Mode interface {
	isMode()
}

// Navigating is cursor-movement mode; no text entry is active.
type Navigating struct {
	Row, Col int
}

// EditingCell means keystrokes edit the cell at (Row, Col).
type EditingCell struct {
	Row, Col int
}

// EditingHeader means keystrokes edit the header for Col.
type EditingHeader struct {
	Col int
}

func (Navigating) isMode()    {}
func (EditingCell) isMode()   {}
func (EditingHeader) isMode() {}
