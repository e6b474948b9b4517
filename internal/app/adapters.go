package app

import (
	"github.com/quill-editor/quill/internal/editor"
	"github.com/quill-editor/quill/internal/renderer/backend"
)

// backendSink adapts a terminal backend to the editor's draw sink.
type backendSink struct {
	b backend.Backend
}

func (s backendSink) Put(col, row int, ch rune) {
	s.b.SetCell(col, row, ch)
}

func (s backendSink) MoveCursor(col, row int) {
	s.b.ShowCursor(col, row)
}

// Ensure backendSink implements the editor sink.
var _ editor.Sink = backendSink{}
