// Package editor holds the set of open documents and the action
// dispatch state machine that is the sole mutation entry point for
// document state.
package editor

import (
	"fmt"
	"time"

	"github.com/quill-editor/quill/internal/engine/caret"
	"github.com/quill-editor/quill/internal/engine/document"
	"github.com/quill-editor/quill/internal/input"
)

// ControlFlow tells the run loop whether to keep going after a dispatch.
// The absence of further input is not an error, so stopping is signalled
// by value rather than by a returned error.
type ControlFlow int

const (
	// Continue means the run loop should keep cycling.
	Continue ControlFlow = iota

	// Stop means the run loop should terminate.
	Stop
)

// String returns "continue" or "stop".
func (c ControlFlow) String() string {
	if c == Stop {
		return "stop"
	}
	return "continue"
}

// Editor owns the open documents. The collection is never empty and the
// active index is always in range; violating either is a programming
// defect and panics rather than surfacing as a recoverable error.
type Editor struct {
	files        []*document.Document
	open         int
	lastActivity time.Time
}

// New returns an editor with a single empty document active.
func New() *Editor {
	return &Editor{
		files:        []*document.Document{document.New()},
		lastActivity: time.Now(),
	}
}

// Active returns the active document.
func (e *Editor) Active() *document.Document {
	if len(e.files) == 0 || e.open < 0 || e.open >= len(e.files) {
		panic(fmt.Sprintf("editor: active index %d out of range for %d documents", e.open, len(e.files)))
	}
	return e.files[e.open]
}

// DocumentCount returns the number of open documents.
func (e *Editor) DocumentCount() int {
	return len(e.files)
}

// OpenBlank appends a fresh document and returns its index. The new
// document does not become active.
func (e *Editor) OpenBlank() int {
	e.files = append(e.files, document.New())
	return len(e.files) - 1
}

// SetActive switches the active document. The index is validated here so
// the active handle can never go out of range.
func (e *Editor) SetActive(index int) error {
	if index < 0 || index >= len(e.files) {
		return fmt.Errorf("%w: index %d of %d", ErrNoSuchDocument, index, len(e.files))
	}
	e.open = index
	return nil
}

// LastActivity returns the time of the most recent dispatched action.
// Stored for future idle handling; nothing consumes it yet.
func (e *Editor) LastActivity() time.Time {
	return e.lastActivity
}

// Apply runs one action against the active document and reports whether
// the run loop should continue. The dispatcher is stateless per call and
// is the only authorized path to document mutation.
func (e *Editor) Apply(a input.Action) ControlFlow {
	e.lastActivity = time.Now()

	switch a.Kind {
	case input.Exit:
		return Stop
	case input.Up:
		e.Active().MoveCaret(caret.Up)
	case input.Down:
		e.Active().MoveCaret(caret.Down)
	case input.Left:
		e.Active().MoveCaret(caret.Left)
	case input.Right:
		e.Active().MoveCaret(caret.Right)
	case input.Place:
		e.Active().Place(a.Text)
	case input.Remove:
		e.Active().Remove()
	case input.Delete:
		e.Active().Delete()
	}

	return Continue
}
