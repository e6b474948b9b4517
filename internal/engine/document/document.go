// Package document models one open text buffer: an ordered sequence of
// lines plus the committed and desired caret positions. Documents own
// their lines and carets exclusively; every mutation goes through the
// entry points defined here.
package document

import (
	"github.com/google/uuid"

	"github.com/quill-editor/quill/internal/engine/caret"
	"github.com/quill-editor/quill/internal/engine/line"
)

// Document is a single open buffer. The line sequence only ever grows
// (writes may extend it, movement never does) and always holds at least
// one line. The current caret is the committed, on-screen position; the
// desired caret is the most recent movement request after clamping, and
// is adopted as current by the render pass.
type Document struct {
	id      uuid.UUID
	lines   []*line.Line
	current caret.Logical
	desired caret.Logical
}

// New creates an empty document with a single empty line.
func New() *Document {
	return &Document{
		id:    uuid.New(),
		lines: []*line.Line{line.New()},
	}
}

// ID returns the document identity used in log fields.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at the given row, or nil when out of range.
func (d *Document) Line(row int) *line.Line {
	if row < 0 || row >= len(d.lines) {
		return nil
	}
	return d.lines[row]
}

// CurrentCaret returns the committed caret position.
func (d *Document) CurrentCaret() caret.Logical {
	return d.current
}

// DesiredCaret returns the pending caret position.
func (d *Document) DesiredCaret() caret.Logical {
	return d.desired
}

// Place writes text into the line at the committed caret row, growing
// the line sequence with empty lines up to that row first. The caret
// column advances by the text length, saturating at the new line length.
func (d *Document) Place(text string) {
	row := int(d.current.Row)
	for len(d.lines) <= row {
		d.lines = append(d.lines, line.New())
	}
	ln := d.lines[row]
	ln.InsertAtCaret(text)

	col := d.current.Col + int64(len([]rune(text)))
	if end := int64(ln.Length()); col > end {
		col = end
	}
	d.current.Col = col
	d.desired = d.current
}

// Remove deletes the last character before the caret on the current row
// and decrements the caret column, saturating at zero. Removing on an
// already-empty line changes nothing.
func (d *Document) Remove() {
	row := int(d.current.Row)
	if row < 0 || row >= len(d.lines) {
		return
	}
	d.lines[row].RemoveBeforeCaret()
	if d.current.Col > 0 {
		d.current.Col--
	}
	d.desired = d.current
}

// Delete is forward-delete. The transition exists in the action table
// but has no assigned semantics yet; it must stay an explicit no-op.
func (d *Document) Delete() {}

// MoveCaret shifts the desired caret by the delta and clamps it: row
// first against the existing line count, then column against the
// resolved line's length. Movement never grows the document and never
// fails; out-of-range requests settle on the nearest valid position.
func (d *Document) MoveCaret(m caret.Move) {
	pos := d.current.Add(m)
	pos = pos.ClampRow(len(d.lines))
	pos = pos.ClampCol(d.lines[int(pos.Row)].Length())
	d.desired = pos
}

// CommitCaret adopts the desired caret as the committed position and
// returns it. The render pass calls this once the position is on screen.
func (d *Document) CommitCaret() caret.Logical {
	d.current = d.desired
	return d.current
}
