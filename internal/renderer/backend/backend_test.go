package backend

import (
	"testing"
	"time"
)

func TestNullBackendCells(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	b.SetCell(3, 1, 'q')

	ch, ok := b.CellAt(3, 1)
	if !ok || ch != 'q' {
		t.Errorf("CellAt(3, 1) = (%q, %v), want ('q', true)", ch, ok)
	}
	if _, ok := b.CellAt(0, 0); ok {
		t.Error("unwritten cell should be absent")
	}

	b.Clear()
	if _, ok := b.CellAt(3, 1); ok {
		t.Error("clear should drop staged cells")
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.ShowCursor(5, 7)
	x, y, visible := b.CursorPosition()
	if x != 5 || y != 7 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (5, 7, true)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)

	posted := Event{Type: EventKey, Key: KeyRune, Rune: 'a'}
	b.PostEvent(posted)

	got := b.PollEvent()
	if got != posted {
		t.Errorf("PollEvent = %v, want %v", got, posted)
	}
}

func TestNullBackendShutdownUnblocksPoll(t *testing.T) {
	b := NewNullBackend(80, 24)

	done := make(chan Event, 1)
	go func() {
		done <- b.PollEvent()
	}()

	// Give the goroutine a brief moment to start and block on PollEvent.
	time.Sleep(10 * time.Millisecond)
	b.Shutdown()

	select {
	case ev := <-done:
		if ev.Type != EventNone {
			t.Errorf("expected EventNone after shutdown, got %v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not unblock after Shutdown")
	}
}

func TestNullBackendShutdownIsIdempotent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Shutdown()
	b.Shutdown()
}

func TestNullBackendSize(t *testing.T) {
	b := NewNullBackend(120, 40)
	w, h := b.Size()
	if w != 120 || h != 40 {
		t.Errorf("Size = (%d, %d), want (120, 40)", w, h)
	}
}

func TestNullBackendShowCount(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Show()
	b.Show()
	if got := b.ShowCount(); got != 2 {
		t.Errorf("ShowCount = %d, want 2", got)
	}
}
