package notation

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/twisty"
)

// phrase is how a face turn is spoken: the clockwise and counter-clockwise
// words, and the half-turn form.
type phrase struct {
	name string
	cw   string
	ccw  string
	half string
}

// personal holds the spoken form of each face.
// Reference frame: White on top, Green in front, facing the cube.
//
//	R  -> "R up"            R' -> "R down"           R2 -> "R up x 2"
//	L  -> "L down"          L' -> "L up"             L2 -> "L down x 2"
//	U  -> "T rotate right"  U' -> "T rotate left"    U2 -> "T rotate right x 2"
//	D  -> "B rotate right"  D' -> "B rotate left"    D2 -> "B rotate right x 2"
//	F  -> "F rotate clockwise"     F' -> "F rotate anti-clockwise"     F2 -> "F rotate x 2"
//	B  -> "Back rotate clockwise"  B' -> "Back rotate anti-clockwise"  B2 -> "Back rotate x 2"
var personal = map[twisty.Face]phrase{
	twisty.R: {"R", "up", "down", "up x 2"},
	twisty.L: {"L", "down", "up", "down x 2"},
	twisty.U: {"T", "rotate right", "rotate left", "rotate right x 2"},
	twisty.D: {"B", "rotate right", "rotate left", "rotate right x 2"},
	twisty.F: {"F", "rotate clockwise", "rotate anti-clockwise", "rotate x 2"},
	twisty.B: {"Back", "rotate clockwise", "rotate anti-clockwise", "rotate x 2"},
}

// ToPersonalNotation converts a Move to spoken notation, e.g. "R up".
// Inner layers are prefixed with the layer number ("R layer 2 up") and
// slices are spoken as the face they follow ("M: L down").
func ToPersonalNotation(m twisty.Move) string {
	p, ok := personal[m.Face]
	if !ok {
		return m.Notation() // Fallback to standard notation
	}

	var words string
	switch m.Turn {
	case twisty.CW:
		words = p.cw
	case twisty.CCW:
		words = p.ccw
	case twisty.Half:
		words = p.half
	default:
		return m.Notation()
	}

	switch {
	case m.Slice != twisty.NoSlice:
		return fmt.Sprintf("%c: %s %s", m.Slice, p.name, words)
	case m.Layer > 0:
		return fmt.Sprintf("%s layer %d %s", p.name, m.Layer, words)
	default:
		return p.name + " " + words
	}
}

// ToPersonalSequence converts a slice of moves to personal notation strings.
func ToPersonalSequence(moves twisty.Sequence) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = ToPersonalNotation(m)
	}
	return result
}

// FormatPersonalSequence formats moves as a comma-separated personal notation string.
func FormatPersonalSequence(moves twisty.Sequence) string {
	return strings.Join(ToPersonalSequence(moves), ", ")
}
