package editor

import (
	"testing"

	"github.com/quill-editor/quill/internal/input"
)

// drawOp records one Put instruction.
type drawOp struct {
	col, row int
	ch       rune
}

// recordingSink captures render output for assertions.
type recordingSink struct {
	ops         []drawOp
	cursorX     int
	cursorY     int
	cursorMoves int
}

func (s *recordingSink) Put(col, row int, ch rune) {
	s.ops = append(s.ops, drawOp{col: col, row: row, ch: ch})
}

func (s *recordingSink) MoveCursor(col, row int) {
	s.cursorX, s.cursorY = col, row
	s.cursorMoves++
}

func TestRenderEmitsDirtyCells(t *testing.T) {
	e := New()
	e.Apply(input.Action{Kind: input.Place, Text: "abc"})

	sink := &recordingSink{}
	e.Render(sink)

	want := []drawOp{
		{0, 0, 'a'},
		{1, 0, 'b'},
		{2, 0, 'c'},
	}
	if len(sink.ops) != len(want) {
		t.Fatalf("expected %d draw ops, got %d: %v", len(want), len(sink.ops), sink.ops)
	}
	for i := range want {
		if sink.ops[i] != want[i] {
			t.Errorf("op %d = %v, want %v", i, sink.ops[i], want[i])
		}
	}
}

func TestRenderRepeatsTouchedCells(t *testing.T) {
	e := New()
	e.Apply(input.Action{Kind: input.Place, Text: "a"})

	sink := &recordingSink{}
	e.Render(sink)
	e.Render(sink)

	// Dirty bits are never cleared, so both passes emit column 0.
	if len(sink.ops) != 2 {
		t.Fatalf("expected 2 draw ops across 2 passes, got %d", len(sink.ops))
	}
}

func TestRenderScenarioPlaceAndRemove(t *testing.T) {
	e := New()

	// Place("hi"), Place("!"), Remove, Remove.
	for _, a := range []input.Action{
		{Kind: input.Place, Text: "hi"},
		{Kind: input.Place, Text: "!"},
		{Kind: input.Remove},
		{Kind: input.Remove},
	} {
		if flow := e.Apply(a); flow != Continue {
			t.Fatalf("expected continue, got %v", flow)
		}
	}

	doc := e.Active()
	if got := doc.Line(0).Text(); got != "h" {
		t.Fatalf("expected line content %q, got %q", "h", got)
	}
	if pos := doc.CurrentCaret(); pos.Col != 1 || pos.Row != 0 {
		t.Fatalf("expected caret at (1, 0), got (%d, %d)", pos.Col, pos.Row)
	}

	sink := &recordingSink{}
	e.Render(sink)

	// Columns 1 and 2 stay dirty but hold no character anymore; only
	// column 0 may be drawn for row 0.
	var sawZero bool
	for _, op := range sink.ops {
		if op.row != 0 {
			continue
		}
		if op.col == 0 {
			if op.ch != 'h' {
				t.Errorf("column 0 drew %q, want %q", op.ch, 'h')
			}
			sawZero = true
			continue
		}
		t.Errorf("unexpected draw at column %d: %v", op.col, op)
	}
	if !sawZero {
		t.Error("render should emit column 0 containing 'h'")
	}

	if sink.cursorX != 1 || sink.cursorY != 0 {
		t.Errorf("cursor placed at (%d, %d), want (1, 0)", sink.cursorX, sink.cursorY)
	}
}

func TestRenderCommitsDesiredCaret(t *testing.T) {
	e := New()
	e.Apply(input.Action{Kind: input.Place, Text: "ab"})
	e.Apply(input.Action{Kind: input.Left})

	sink := &recordingSink{}
	e.Render(sink)

	if pos := e.Active().CurrentCaret(); pos.Col != 1 {
		t.Errorf("render should commit the desired caret, got column %d", pos.Col)
	}
	if sink.cursorX != 1 || sink.cursorY != 0 {
		t.Errorf("cursor placed at (%d, %d), want (1, 0)", sink.cursorX, sink.cursorY)
	}
}
