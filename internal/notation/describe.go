package notation

import (
	"fmt"

	"github.com/SeamusWaldron/twisty"
)

// Description is a human-readable explanation of one move.
// It is presentation text only; the engine never reads it.
type Description struct {
	Move        string `json:"move"`
	Description string `json:"description"`
	Face        string `json:"face"`
	Direction   string `json:"direction"`
	Angle       string `json:"angle"`
	Tip         string `json:"tip,omitempty"`
}

// tips are beginner hints for the outer moves that usually need one.
var tips = map[string]string{
	"R": "Hold the cube with white on top, yellow on bottom",
	"U": "Looking down at the top face",
	"F": "The front face is the one facing you",
	"M": "M turns the same way as L",
	"E": "E turns the same way as D",
	"S": "S turns the same way as F",
}

// Describe explains a move in words, e.g. "Right face clockwise".
func Describe(m twisty.Move) Description {
	d := Description{
		Move:      m.Notation(),
		Face:      faceLabel(m),
		Direction: direction(m.Turn),
		Angle:     angle(m.Turn),
		Tip:       tips[m.Notation()],
	}

	subject := m.Face.Name() + " face"
	switch {
	case m.Slice != twisty.NoSlice:
		subject = fmt.Sprintf("Middle slice (%c)", m.Slice)
	case m.Layer > 0:
		subject = fmt.Sprintf("%s layer %d", m.Face.Name(), m.Layer)
	}

	switch m.Turn {
	case twisty.Half:
		d.Description = subject + " 180°"
	default:
		d.Description = subject + " " + lower(d.Direction)
	}
	return d
}

// DescribeSequence explains every move of a sequence.
func DescribeSequence(moves twisty.Sequence) []Description {
	out := make([]Description, len(moves))
	for i, m := range moves {
		out[i] = Describe(m)
	}
	return out
}

func faceLabel(m twisty.Move) string {
	switch m.Face {
	case twisty.U:
		return "Top"
	case twisty.D:
		return "Bottom"
	default:
		return m.Face.Name()
	}
}

func direction(t twisty.Turn) string {
	switch t {
	case twisty.CCW:
		return "Counterclockwise"
	case twisty.Half:
		return "Half turn"
	default:
		return "Clockwise"
	}
}

func angle(t twisty.Turn) string {
	if t == twisty.Half {
		return "180°"
	}
	return "90°"
}

func lower(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
