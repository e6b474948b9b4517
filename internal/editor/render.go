package editor

// Sink receives positioned draw instructions from the render pass.
// Instructions arrive in ascending column order within a line and carry
// no batching contract; each may be flushed independently.
type Sink interface {
	// Put draws a single character at the given cell.
	Put(col, row int, ch rune)

	// MoveCursor places the terminal cursor at the given cell.
	MoveCursor(col, row int)
}

// Render repaints the active document's dirty cells. For each line the
// marked columns are visited in ascending order; a column whose offset
// no longer holds a character is skipped without error. Dirty bits stay
// set after the pass, so every touched cell is re-sent each frame.
// Finally the desired caret is committed and the cursor placed on it.
func (e *Editor) Render(sink Sink) {
	doc := e.Active()

	for row := 0; row < doc.LineCount(); row++ {
		ln := doc.Line(row)
		for _, col := range ln.DirtyColumns() {
			ch, ok := ln.CharAt(col)
			if !ok {
				continue
			}
			sink.Put(col, row, ch)
		}
	}

	pos := doc.CommitCaret()
	sink.MoveCursor(int(pos.Col), int(pos.Row))
}
