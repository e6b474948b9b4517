package editor

import "errors"

// ErrNoSuchDocument is returned when SetActive is given an index outside
// the open document range.
var ErrNoSuchDocument = errors.New("editor: no such document")
