// Package history keeps the undo stack: whole-document snapshots pushed
// immediately before each mutating action. Undo is whole-document by
// construction; a burst of keystrokes inside one edit session reverts as a
// unit to the state captured at edit entry.
package history

import "github.com/marcus/csved/internal/document"

// Stack is a LIFO stack of document snapshots. The zero value is an empty
// stack ready for use. It is unbounded; documents edited here are small
// enough that capping it has not been worth the complexity.
type Stack struct {
	snaps []document.Snapshot
}

// Push records a snapshot as the newest undo point.
func (s *Stack) Push(snap document.Snapshot) {
	s.snaps = append(s.snaps, snap)
}

// Pop removes and returns the newest snapshot. ok is false when the stack
// is empty, which callers treat as a no-op.
func (s *Stack) Pop() (snap document.Snapshot, ok bool) {
	if len(s.snaps) == 0 {
		return document.Snapshot{}, false
	}
	snap = s.snaps[len(s.snaps)-1]
	s.snaps = s.snaps[:len(s.snaps)-1]
	return snap, true
}

// Len returns the number of stored snapshots.
func (s *Stack) Len() int { return len(s.snaps) }
