package input

import "errors"

var (
	// ErrUnknownKey is returned when a keymap binding names a key chord
	// the editor does not know.
	ErrUnknownKey = errors.New("input: unknown key chord")

	// ErrUnknownAction is returned when a keymap binding names an action
	// outside the editor's action set.
	ErrUnknownAction = errors.New("input: unknown action")
)
