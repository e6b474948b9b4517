// Package input defines the closed set of editor actions and the keymap
// that resolves terminal key events to them.
package input

// Kind identifies an editor action.
type Kind int

const (
	// None means the event produced no action this cycle.
	None Kind = iota

	// Exit asks the run loop to stop.
	Exit

	// Up, Down, Left and Right move the desired caret by one cell.
	Up
	Down
	Left
	Right

	// Place inserts text at the caret.
	Place

	// Remove deletes the character before the caret.
	Remove

	// Delete is forward-delete, currently a deliberate no-op.
	Delete
)

// String returns the action name as used in keymap scripts.
func (k Kind) String() string {
	switch k {
	case Exit:
		return "quit"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Place:
		return "place"
	case Remove:
		return "remove"
	case Delete:
		return "delete"
	default:
		return "none"
	}
}

// Action is one discrete user action. Text is set for Place only.
type Action struct {
	Kind Kind
	Text string
}
