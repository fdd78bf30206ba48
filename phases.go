package twisty

// Phase detection for the layer-by-layer method on any size.
// Standard orientation: White on top (U), Green in front (F).

// sideFaces in the order they sit around U.
var sideFaces = [4]Face{F, R, B, L}

// reference returns the color a face should show. Odd cubes use the
// center facelet, which slice moves can carry away; even cubes have no
// center and use the solved color.
func (c *Cube) reference(face Face) Color {
	if c.n%2 == 1 {
		mid := c.n / 2
		return c.At(face, mid, mid)
	}
	return face.SolvedColor()
}

func (c *Cube) isCorner(row, col int) bool {
	return (row == 0 || row == c.n-1) && (col == 0 || col == c.n-1)
}

// faceMatches reports whether every facelet of face accepted by keep shows
// the face's reference color.
func (c *Cube) faceMatches(face Face, keep func(row, col int) bool) bool {
	ref := c.reference(face)
	for row := 0; row < c.n; row++ {
		for col := 0; col < c.n; col++ {
			if keep(row, col) && c.At(face, row, col) != ref {
				return false
			}
		}
	}
	return true
}

// IsWhiteCrossComplete checks the U edges and their side partners.
func (c *Cube) IsWhiteCrossComplete() bool {
	if c.n < 3 {
		return c.IsFirstLayerComplete()
	}
	edge := func(row, col int) bool { return !c.isCorner(row, col) }
	if !c.faceMatches(U, edge) {
		return false
	}
	for _, face := range sideFaces {
		if !c.faceMatches(face, func(row, col int) bool { return row == 0 && edge(row, col) }) {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks the whole U face and the top row of every
// side face.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.faceMatches(U, func(int, int) bool { return true }) {
		return false
	}
	for _, face := range sideFaces {
		if !c.faceMatches(face, func(row, _ int) bool { return row == 0 }) {
			return false
		}
	}
	return true
}

// IsSecondLayerComplete checks every side row above the bottom one.
func (c *Cube) IsSecondLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}
	for _, face := range sideFaces {
		if !c.faceMatches(face, func(row, _ int) bool { return row < c.n-1 }) {
			return false
		}
	}
	return true
}

// IsYellowCrossComplete checks that the D edges show yellow.
// It does not check that they are in their final positions.
func (c *Cube) IsYellowCrossComplete() bool {
	if !c.IsSecondLayerComplete() {
		return false
	}
	return c.faceMatches(D, func(row, col int) bool { return !c.isCorner(row, col) })
}

// bottomCorners lists the three facelets of each D corner.
func (c *Cube) bottomCorners() [4][3]Position {
	last := c.n - 1
	return [4][3]Position{
		{{F, last, last}, {R, last, 0}, {D, 0, last}},
		{{R, last, last}, {B, last, 0}, {D, last, last}},
		{{B, last, last}, {L, last, 0}, {D, last, 0}},
		{{L, last, last}, {F, last, 0}, {D, 0, 0}},
	}
}

// AreYellowCornersPositioned checks that each bottom corner holds the
// right colors, in any orientation.
func (c *Cube) AreYellowCornersPositioned() bool {
	if !c.IsYellowCrossComplete() {
		return false
	}

	for _, corner := range c.bottomCorners() {
		var actual, expected [3]Color
		for i, p := range corner {
			actual[i] = c.At(p.Face, p.Row, p.Col)
			expected[i] = c.reference(p.Face)
		}
		if !sameColors(actual[:], expected[:]) {
			return false
		}
	}
	return true
}

// AreYellowCornersOriented checks that D is yellow and the bottom
// corners of the side faces match.
func (c *Cube) AreYellowCornersOriented() bool {
	if !c.AreYellowCornersPositioned() {
		return false
	}
	if !c.faceMatches(D, func(int, int) bool { return true }) {
		return false
	}
	for _, face := range sideFaces {
		if !c.faceMatches(face, func(row, col int) bool { return row == c.n-1 && c.isCorner(row, col) }) {
			return false
		}
	}
	return true
}

// DetectPhase returns the furthest phase the cube has reached.
func (c *Cube) DetectPhase() Phase {
	switch {
	case c.IsSolved():
		return PhaseSolved
	case c.AreYellowCornersOriented():
		return PhaseYellowOriented
	case c.AreYellowCornersPositioned():
		return PhaseYellowCorners
	case c.IsYellowCrossComplete():
		return PhaseYellowCross
	case c.IsSecondLayerComplete():
		return PhaseSecondLayer
	case c.IsFirstLayerComplete():
		return PhaseFirstLayer
	case c.IsWhiteCrossComplete():
		return PhaseWhiteCross
	default:
		return PhaseScrambled
	}
}

// sameColors checks if two color slices contain the same colors (in any order).
func sameColors(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}

	var count [6]int
	for _, c := range a {
		count[c]++
	}
	for _, c := range b {
		count[c]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}
