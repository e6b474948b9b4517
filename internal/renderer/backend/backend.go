// Package backend provides the terminal abstraction the editor draws
// through and reads key events from. The real implementation sits on
// tcell; NullBackend is an in-memory double for tests.
package backend

import "sync"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Key represents a keyboard key. KeyRune carries a printable character
// in the event's Rune field.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlD
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlX
)

// Event is one terminal event. Width and Height are set for resize
// events only.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int
	Height int
}

// Backend is the terminal surface the editor renders to and polls.
// Positions outside the terminal are silently ignored by SetCell.
type Backend interface {
	// Init prepares the terminal (raw mode, alternate screen).
	Init() error

	// Shutdown restores the terminal and unblocks a pending PollEvent.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell stages a single character at the given position.
	SetCell(x, y int, ch rune)

	// Clear clears the whole screen.
	Clear()

	// Show flushes staged changes to the display.
	Show()

	// ShowCursor positions and displays the terminal cursor.
	ShowCursor(x, y int)

	// HideCursor hides the terminal cursor.
	HideCursor()

	// PollEvent blocks until the next event or shutdown.
	PollEvent() Event

	// PostEvent queues a synthetic event, best-effort.
	PostEvent(Event)
}

// NullBackend is an in-memory backend for tests. Cells, cursor state and
// flush counts are observable through extra accessors.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         map[[2]int]rune
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int
	events        chan Event
	done          chan struct{}
	closeOnce     sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		cells:  make(map[[2]int]rune),
		events: make(chan Event, 100),
		done:   make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	return nil
}

func (b *NullBackend) Shutdown() {
	b.closeOnce.Do(func() { close(b.done) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, ch rune) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cells[[2]int{x, y}] = ch
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cells = make(map[[2]int]rune)
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return Event{Type: EventNone}
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Queue full; drop, matching the best-effort contract.
	}
}

// CellAt returns the staged character at the given position for tests.
func (b *NullBackend) CellAt(x, y int) (rune, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.cells[[2]int{x, y}]
	return ch, ok
}

// CursorPosition returns the cursor state for tests.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// ShowCount returns how many times Show has been called.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// Ensure NullBackend implements Backend.
var _ Backend = (*NullBackend)(nil)
