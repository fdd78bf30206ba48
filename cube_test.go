package twisty

import (
	"testing"
)

var sizes = []int{2, 3, 4, 5}

func mustCube(t *testing.T, n int) *Cube {
	t.Helper()
	c, err := NewCube(n)
	if err != nil {
		t.Fatalf("NewCube(%d): %v", n, err)
	}
	return c
}

// allMoves lists every face, layer and turn valid on an N cube.
func allMoves(n int) []Move {
	var moves []Move
	for _, face := range Faces {
		for layer := 0; layer <= n-2; layer++ {
			if layer == 1 {
				continue
			}
			for _, turn := range []Turn{CW, CCW, Half} {
				moves = append(moves, Move{Face: face, Layer: layer, Turn: turn})
			}
		}
	}
	return moves
}

func TestNewCubeIsSolved(t *testing.T) {
	for _, n := range sizes {
		c := mustCube(t, n)
		if !c.IsSolved() {
			t.Errorf("new %dx%d cube should be solved", n, n)
		}

		seen := make(map[Color]bool)
		for _, face := range Faces {
			color := c.At(face, 0, 0)
			if seen[color] {
				t.Errorf("%dx%d: color %v used by more than one face", n, n, color)
			}
			seen[color] = true
		}
		if got := len(c.Facelets()); got != 6*n*n {
			t.Errorf("%dx%d: got %d facelets, want %d", n, n, got, 6*n*n)
		}
	}
}

func TestNewCubeRejectsSize(t *testing.T) {
	for _, n := range []int{-1, 0, 1, MaxSize + 1} {
		if _, err := NewCube(n); err == nil {
			t.Errorf("NewCube(%d) should fail", n)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.Apply(RMove); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestQuarterTurnFourTimesIsIdentity(t *testing.T) {
	for _, n := range sizes {
		for _, m := range allMoves(n) {
			if m.Turn != CW && m.Turn != CCW {
				continue
			}
			c := mustCube(t, n)
			// scramble first so the check is not against a solved cube
			if err := c.ApplyMoves(TPerm); err != nil {
				t.Fatal(err)
			}
			start := c.Clone()
			for i := 0; i < 4; i++ {
				if err := c.Apply(m); err != nil {
					t.Fatalf("%dx%d %v: %v", n, n, m, err)
				}
			}
			if !c.Equal(start) {
				t.Errorf("%dx%d: %v x 4 should be identity", n, n, m)
				t.Log(c.String())
			}
		}
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	for _, n := range sizes {
		for _, m := range allMoves(n) {
			if m.Turn != Half {
				continue
			}
			c := mustCube(t, n)
			_ = c.ApplyMoves(SexyMove)
			start := c.Clone()
			_ = c.Apply(m)
			_ = c.Apply(m)
			if !c.Equal(start) {
				t.Errorf("%dx%d: %v x 2 should be identity", n, n, m)
			}
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	for _, n := range sizes {
		for _, m := range allMoves(n) {
			c := mustCube(t, n)
			_ = c.ApplyMoves(Sune)
			start := c.Clone()
			_ = c.Apply(m)
			_ = c.Apply(m.Inverse())
			if !c.Equal(start) {
				t.Errorf("%dx%d: %v then %v should be identity", n, n, m, m.Inverse())
			}
		}
	}
}

func TestColorCountsInvariant(t *testing.T) {
	for _, n := range sizes {
		c := mustCube(t, n)
		for _, m := range allMoves(n) {
			_ = c.Apply(m)
			for color, count := range c.ColorCounts() {
				if count != n*n {
					t.Fatalf("%dx%d after %v: color %v has %d facelets, want %d", n, n, m, Color(color), count, n*n)
				}
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	for _, n := range []int{2, 3} {
		c := mustCube(t, n)
		for i := 0; i < 6; i++ {
			if err := c.ApplyMoves(SexyMove); err != nil {
				t.Fatal(err)
			}
			if i < 5 && c.IsSolved() {
				t.Errorf("%dx%d: sexy move x %d should not be solved", n, n, i+1)
			}
		}
		if !c.IsSolved() {
			t.Errorf("%dx%d: sexy move x 6 should return to solved", n, n)
			t.Log(c.String())
		}
	}
}

func TestKnownStickerPositions(t *testing.T) {
	tests := []struct {
		move  Move
		face  Face
		row   int
		col   int
		color Color
	}{
		// R lifts the front right column onto U
		{RMove, U, 0, 2, Green},
		{RMove, F, 1, 2, Yellow},
		{RMove, B, 2, 0, White},
		{RMove, D, 0, 2, Blue},
		// U drags the right top row onto F
		{UMove, F, 0, 1, Red},
		{UMove, L, 0, 0, Green},
		// F carries U's bottom row onto R's left column
		{FMove, R, 0, 0, White},
		{FMove, U, 2, 1, Orange},
		{FMove, D, 0, 0, Red},
		// L drops the front left column onto D
		{LMove, D, 1, 0, Green},
		{LMove, F, 0, 0, White},
		// D moves the front bottom row to R
		{DMove, R, 2, 1, Green},
		// B carries U's top row onto L
		{BMove, L, 1, 0, White},
		{BMove, U, 0, 0, Red},
	}

	for _, tt := range tests {
		c := mustCube(t, 3)
		_ = c.Apply(tt.move)
		if got := c.At(tt.face, tt.row, tt.col); got != tt.color {
			t.Errorf("after %v: %v[%d,%d] = %v, want %v", tt.move, tt.face, tt.row, tt.col, got, tt.color)
			t.Log(c.String())
		}
	}
}

func TestR2SwapsUAndDColumns(t *testing.T) {
	// R2 trades the right columns of U and D.
	c := mustCube(t, 3)
	_ = c.Apply(RMove)
	_ = c.Apply(RMove)
	if got := c.At(D, 0, 2); got != White {
		t.Errorf("after R2: D[0,2] = %v, want W", got)
	}
	if got := c.At(U, 2, 2); got != Yellow {
		t.Errorf("after R2: U[2,2] = %v, want Y", got)
	}
}

// Turning every layer of a face in the same direction rotates the whole
// cube: each face stays monochrome but colors move along the cycle.
func TestWholeCubeRotation(t *testing.T) {
	for _, n := range sizes {
		for _, face := range Faces {
			c := mustCube(t, n)
			// Every slice between the two outer faces, including those only
			// reachable from the opposite face.
			for depth := 0; depth <= n-2; depth++ {
				turnLayer(c.facelets, n, face, depth, 1)
			}
			_ = c.Apply(Move{Face: face.Opposite(), Turn: CCW})

			if !c.IsSolved() {
				t.Errorf("%dx%d: rotating about %v should keep faces monochrome", n, n, face)
				t.Log(c.String())
				continue
			}
			if got := c.At(face, 0, 0); got != face.SolvedColor() {
				t.Errorf("%dx%d: rotation about %v changed its own color to %v", n, n, face, got)
			}
			cycle := adjacency[face]
			for i := range cycle {
				from := cycle[i].face
				to := cycle[(i+1)%4].face
				if got := c.At(to, 0, 0); got != from.SolvedColor() {
					t.Errorf("%dx%d: rotation about %v: %v shows %v, want %v", n, n, face, to, got, from.SolvedColor())
				}
			}
		}
	}
}

func TestInnerLayerLeavesFacesAlone(t *testing.T) {
	c := mustCube(t, 4)
	if err := c.Apply(Move{Face: R, Layer: 2, Turn: CW}); err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if c.At(R, row, col) != Red || c.At(L, row, col) != Orange {
				t.Fatalf("inner R layer should not touch R or L faces\n%s", c.String())
			}
		}
	}
	for row := 0; row < 4; row++ {
		if got := c.At(U, row, 2); got != Green {
			t.Errorf("U[%d,2] = %v, want G", row, got)
		}
		if got := c.At(U, row, 3); got != White {
			t.Errorf("U[%d,3] = %v, want W", row, got)
		}
	}
}

func TestApplyRejectsMissingLayer(t *testing.T) {
	c := mustCube(t, 2)
	before := c.Clone()
	if err := c.Apply(Move{Face: R, Layer: 2, Turn: CW}); err == nil {
		t.Error("2x2 has no layer 2")
	}
	if !c.Equal(before) {
		t.Error("failed move should leave the cube unchanged")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := mustCube(t, 3)
	clone := c.Clone()
	_ = clone.Apply(RMove)
	if !c.IsSolved() {
		t.Error("changing a clone should not change the original")
	}
	if c.Equal(clone) {
		t.Error("clone should differ after a move")
	}
}

func TestEqualDifferentSizes(t *testing.T) {
	if mustCube(t, 2).Equal(mustCube(t, 3)) {
		t.Error("cubes of different sizes should not be equal")
	}
}

func TestStringShape(t *testing.T) {
	c := mustCube(t, 4)
	lines := 0
	for _, r := range c.String() {
		if r == '\n' {
			lines++
		}
	}
	if lines != 12 {
		t.Errorf("4x4 net should have 12 lines, got %d", lines)
	}
}
