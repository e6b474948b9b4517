package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/quill-editor/quill/internal/renderer/backend"
)

// Keymap resolves special keys to action kinds. Printable runes always
// resolve to Place and cannot be rebound.
type Keymap struct {
	bindings map[backend.Key]Kind
}

// NewKeymap returns the default mapping: Escape exits, Backspace
// removes, Delete forward-deletes, arrow keys move the caret.
func NewKeymap() *Keymap {
	return &Keymap{bindings: map[backend.Key]Kind{
		backend.KeyEscape:    Exit,
		backend.KeyBackspace: Remove,
		backend.KeyDelete:    Delete,
		backend.KeyUp:        Up,
		backend.KeyDown:      Down,
		backend.KeyLeft:      Left,
		backend.KeyRight:     Right,
	}}
}

// keyNames maps keymap-script chord names to keys.
var keyNames = map[string]backend.Key{
	"escape":    backend.KeyEscape,
	"esc":       backend.KeyEscape,
	"enter":     backend.KeyEnter,
	"tab":       backend.KeyTab,
	"backspace": backend.KeyBackspace,
	"delete":    backend.KeyDelete,
	"home":      backend.KeyHome,
	"end":       backend.KeyEnd,
	"pageup":    backend.KeyPageUp,
	"pagedown":  backend.KeyPageDown,
	"up":        backend.KeyUp,
	"down":      backend.KeyDown,
	"left":      backend.KeyLeft,
	"right":     backend.KeyRight,
	"ctrl+c":    backend.KeyCtrlC,
	"ctrl+d":    backend.KeyCtrlD,
	"ctrl+q":    backend.KeyCtrlQ,
	"ctrl+s":    backend.KeyCtrlS,
	"ctrl+x":    backend.KeyCtrlX,
}

// actionNames maps keymap-script action names to kinds.
var actionNames = map[string]Kind{
	"quit":   Exit,
	"exit":   Exit,
	"up":     Up,
	"down":   Down,
	"left":   Left,
	"right":  Right,
	"remove": Remove,
	"delete": Delete,
	"none":   None,
}

// Bind rebinds a key chord by name ("escape", "ctrl+q") to an action
// name ("quit", "remove"). Binding to "none" removes the binding.
func (k *Keymap) Bind(chord, action string) error {
	key, ok := keyNames[strings.ToLower(strings.TrimSpace(chord))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, chord)
	}
	kind, ok := actionNames[strings.ToLower(strings.TrimSpace(action))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if kind == None {
		delete(k.bindings, key)
		return nil
	}
	k.bindings[key] = kind
	return nil
}

// Translate resolves a terminal event to an action. ok is false when the
// event produces no action this cycle.
func (k *Keymap) Translate(ev backend.Event) (Action, bool) {
	if ev.Type != backend.EventKey {
		return Action{}, false
	}
	if ev.Key == backend.KeyRune {
		if !unicode.IsPrint(ev.Rune) {
			return Action{}, false
		}
		return Action{Kind: Place, Text: string(ev.Rune)}, true
	}
	if kind, ok := k.bindings[ev.Key]; ok {
		return Action{Kind: kind}, true
	}
	return Action{}, false
}
