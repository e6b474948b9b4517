// Package caret provides the two caret coordinate types and the movement
// arithmetic documents use to reposition the insertion point.
package caret

import "math"

// Logical is a buffer position in character units. Both components are
// signed so movement arithmetic may underflow transiently before
// clamping; a negative value is never semantically valid and callers
// must clamp before indexing.
type Logical struct {
	Col int64
	Row int64
}

// Graphical is a terminal cell position. It is a distinct type from
// Logical on purpose: once tab expansion or wide glyphs are handled the
// two coordinate spaces diverge, and the only way between them is an
// explicit conversion. Reserved; nothing maps through it yet.
type Graphical struct {
	Col uint16
	Row uint16
}

// Move is a directional delta applied to a caret position.
type Move struct {
	X int64
	Y int64
}

// Unit deltas in screen order: Up decreases the row, Down increases it.
var (
	Up    = Move{Y: -1}
	Down  = Move{Y: 1}
	Left  = Move{X: -1}
	Right = Move{X: 1}
)

// Add returns the position shifted by the delta, unclamped.
func (p Logical) Add(m Move) Logical {
	return Logical{Col: p.Col + m.X, Row: p.Row + m.Y}
}

// ClampRow clamps the row to [0, rowCount-1]. Movement never creates
// rows, so the upper bound is the last existing line.
func (p Logical) ClampRow(rowCount int) Logical {
	if p.Row < 0 {
		p.Row = 0
	}
	if last := int64(rowCount) - 1; p.Row > last {
		p.Row = last
	}
	return p
}

// ClampCol clamps the column to [0, lineLen]. The caret may rest
// one past the last character of a line, never beyond.
func (p Logical) ClampCol(lineLen int) Logical {
	if p.Col < 0 {
		p.Col = 0
	}
	if end := int64(lineLen); p.Col > end {
		p.Col = end
	}
	return p
}

// ToGraphical converts to terminal cell coordinates. It reports false
// when either component is negative or exceeds the uint16 range.
func (p Logical) ToGraphical() (Graphical, bool) {
	if p.Col < 0 || p.Row < 0 || p.Col > math.MaxUint16 || p.Row > math.MaxUint16 {
		return Graphical{}, false
	}
	return Graphical{Col: uint16(p.Col), Row: uint16(p.Row)}, true
}
