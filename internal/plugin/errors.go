package plugin

import "fmt"

// ScriptError reports a keymap script that failed to load or returned
// the wrong shape.
type ScriptError struct {
	Path string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("keymap script %s: %v", e.Path, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
