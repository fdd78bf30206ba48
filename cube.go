package twisty

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Face identifies one of the six cube faces.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// Faces lists every face in index order.
var Faces = [6]Face{U, D, F, B, R, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Name returns the long face name used in descriptions.
func (f Face) Name() string {
	switch f {
	case U:
		return "Up"
	case D:
		return "Down"
	case F:
		return "Front"
	case B:
		return "Back"
	case R:
		return "Right"
	case L:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case U:
		return D
	case D:
		return U
	case F:
		return B
	case B:
		return F
	case R:
		return L
	default:
		return R
	}
}

// SolvedColor returns the color a face carries on a solved cube.
func (f Face) SolvedColor() Color {
	return Color(f)
}

func (f Face) valid() bool {
	return f >= U && f <= L
}

// Facelet is one visible square of the cube.
type Facelet struct {
	Face  Face  `json:"face"`
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Color Color `json:"color"`
}

// Position addresses a facelet slot independent of its color.
type Position struct {
	Face Face `json:"face"`
	Row  int  `json:"row"`
	Col  int  `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("%s[%d,%d]", p.Face, p.Row, p.Col)
}

// Cube is the facelet state of an N×N×N puzzle.
//
// Each face is an N×N grid viewed from outside the cube. Grids are oriented
// the way the unfolded net in String lays them out: U and D are read with F
// toward the bottom and top edge respectively, and the four side faces are
// read with U along their top row.
type Cube struct {
	n        int
	facelets []Color // facelets[face*n*n + row*n + col]
}

// NewCube creates a solved cube of the given size.
// Standard orientation: White on top, Green in front.
func NewCube(size int) (*Cube, error) {
	if size < MinSize || size > MaxSize {
		return nil, &SizeError{Size: size, Min: MinSize, Max: MaxSize}
	}
	c := &Cube{n: size, facelets: make([]Color, 6*size*size)}
	area := size * size
	for _, face := range Faces {
		color := face.SolvedColor()
		for i := 0; i < area; i++ {
			c.facelets[int(face)*area+i] = color
		}
	}
	return c, nil
}

// Size returns N.
func (c *Cube) Size() int {
	return c.n
}

// At returns the color of one facelet.
func (c *Cube) At(face Face, row, col int) Color {
	return c.facelets[index(c.n, face, row, col)]
}

// Face returns a copy of one face as rows of colors.
func (c *Cube) Face(face Face) [][]Color {
	grid := make([][]Color, c.n)
	for r := 0; r < c.n; r++ {
		grid[r] = make([]Color, c.n)
		for col := 0; col < c.n; col++ {
			grid[r][col] = c.At(face, r, col)
		}
	}
	return grid
}

// Facelets returns every facelet in face, row, column order.
func (c *Cube) Facelets() []Facelet {
	out := make([]Facelet, 0, len(c.facelets))
	for _, face := range Faces {
		for r := 0; r < c.n; r++ {
			for col := 0; col < c.n; col++ {
				out = append(out, Facelet{Face: face, Row: r, Col: col, Color: c.At(face, r, col)})
			}
		}
	}
	return out
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{n: c.n, facelets: make([]Color, len(c.facelets))}
	copy(clone.facelets, c.facelets)
	return clone
}

// Equal reports whether two cubes have the same size and colors.
func (c *Cube) Equal(other *Cube) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.n != other.n {
		return false
	}
	for i := range c.facelets {
		if c.facelets[i] != other.facelets[i] {
			return false
		}
	}
	return true
}

// IsSolved returns true if every face is a single color.
// Faces are checked independently, so a whole-cube reorientation still
// counts as solved.
func (c *Cube) IsSolved() bool {
	area := c.n * c.n
	for _, face := range Faces {
		base := int(face) * area
		first := c.facelets[base]
		for i := 1; i < area; i++ {
			if c.facelets[base+i] != first {
				return false
			}
		}
	}
	return true
}

// ColorCounts returns how many facelets carry each color.
func (c *Cube) ColorCounts() [6]int {
	var counts [6]int
	for _, color := range c.facelets {
		counts[color]++
	}
	return counts
}

// Apply applies a move in place.
// The cube is unchanged when the move does not fit this size.
func (c *Cube) Apply(m Move) error {
	depth, err := m.depth(c.n)
	if err != nil {
		return err
	}
	turnLayer(c.facelets, c.n, m.turnFace(), depth, m.Turn.quarters())
	return nil
}

// ApplyMoves applies moves in order, stopping at the first move that does
// not fit this size. Moves before the failing one stay applied.
func (c *Cube) ApplyMoves(moves []Move) error {
	for i, m := range moves {
		if err := c.Apply(m); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	return nil
}

// String returns the unfolded net of the cube.
func (c *Cube) String() string {
	var b strings.Builder
	pad := strings.Repeat(" ", 2*c.n)

	writeRow := func(face Face, row int) {
		for col := 0; col < c.n; col++ {
			b.WriteString(c.At(face, row, col).String())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < c.n; row++ {
		b.WriteString(pad)
		writeRow(U, row)
		b.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < c.n; row++ {
		for _, face := range []Face{L, F, R, B} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}

	// D face (indented)
	for row := 0; row < c.n; row++ {
		b.WriteString(pad)
		writeRow(D, row)
		b.WriteByte('\n')
	}

	return b.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("%dx%d solved: %v", c.n, c.n, c.IsSolved())
}
