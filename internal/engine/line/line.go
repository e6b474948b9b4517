// Package line implements the split-buffer line storage used by
// documents: two character segments whose concatenation is the visible
// text, plus a per-column dirty bitmap bounding terminal redraws.
package line

// Line is one row of a document. Text to the left of the caret lives in
// the before segment, text to the right in the after segment, so
// inserting at the caret is an append instead of a mid-sequence shift.
// The dirty bitmap holds one bit per character column, eight columns per
// byte. Bits are only ever set; the render pass does not clear them, so
// a touched cell is re-sent every frame.
type Line struct {
	before []rune
	after  []rune
	dirty  []byte
}

// New returns an empty line.
func New() *Line {
	return &Line{}
}

// NewFromSegments builds a line split at the given point. Editing only
// ever appends to the before segment; this constructor exists so the
// after-segment resolution can be exercised until caret crossing lands.
func NewFromSegments(before, after string) *Line {
	return &Line{before: []rune(before), after: []rune(after)}
}

// Length returns the number of characters in the line.
func (l *Line) Length() int {
	return len(l.before) + len(l.after)
}

// Text returns the full visible text: before segment then after segment.
func (l *Line) Text() string {
	out := make([]rune, 0, l.Length())
	out = append(out, l.before...)
	out = append(out, l.after...)
	return string(out)
}

// InsertAtCaret appends text to the before segment and marks the written
// columns dirty, growing the bitmap to cover the new length. The caret
// must already be positioned by the owning document; inserting into the
// middle of the after segment independently of the caret is unsupported.
func (l *Line) InsertAtCaret(text string) {
	start := len(l.before)
	l.before = append(l.before, []rune(text)...)
	l.growDirty()
	for col := start; col < len(l.before); col++ {
		l.dirty[col/8] |= 1 << (col % 8)
	}
}

// RemoveBeforeCaret removes the last character of the before segment.
// Removing from an empty before segment is a no-op, not an error.
func (l *Line) RemoveBeforeCaret() {
	if len(l.before) == 0 {
		return
	}
	l.before = l.before[:len(l.before)-1]
}

// CharAt resolves the column against the before segment first, then the
// after segment. ok is false when no character exists at that offset.
func (l *Line) CharAt(col int) (rune, bool) {
	if col < 0 {
		return 0, false
	}
	if col < len(l.before) {
		return l.before[col], true
	}
	col -= len(l.before)
	if col < len(l.after) {
		return l.after[col], true
	}
	return 0, false
}

// IsDirty reports whether the column is marked for redraw.
func (l *Line) IsDirty(col int) bool {
	if col < 0 || col/8 >= len(l.dirty) {
		return false
	}
	return l.dirty[col/8]&(1<<(col%8)) != 0
}

// DirtyColumns returns every marked column in ascending order.
func (l *Line) DirtyColumns() []int {
	var cols []int
	for col := 0; col < len(l.dirty)*8; col++ {
		if l.dirty[col/8]&(1<<(col%8)) != 0 {
			cols = append(cols, col)
		}
	}
	return cols
}

// growDirty grows the bitmap to at least length/8+1 bytes.
func (l *Line) growDirty() {
	want := l.Length()/8 + 1
	for len(l.dirty) < want {
		l.dirty = append(l.dirty, 0)
	}
}
