// Package clipboard is the editor's single-slot copy buffer. Copy
// overwrites the slot, paste reads it without clearing, so a value can be
// pasted any number of times. Copies are also mirrored to the system
// clipboard so yanked cells can be pasted into other programs; the mirror
// is best effort and never read back, which keeps paste strictly by value.
package clipboard

import "github.com/atotto/clipboard"

// Clipboard holds at most one string value. The zero value is empty.
type Clipboard struct {
	value  string
	filled bool
}

// Copy overwrites the slot with value and mirrors it to the OS clipboard.
// OS clipboard failures (headless sessions, missing xclip) are ignored.
func (c *Clipboard) Copy(value string) {
	c.value = value
	c.filled = true
	_ = clipboard.WriteAll(value)
}

// Paste returns the stored value without clearing it. ok is false when
// nothing has been copied yet.
func (c *Clipboard) Paste() (value string, ok bool) {
	return c.value, c.filled
}
