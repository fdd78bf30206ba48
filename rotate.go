package twisty

// side names the edge of a face grid that borders a turning face.
type side int

const (
	top side = iota
	bottom
	left
	right
)

// strip is one neighbour's border strip in an adjacency cycle.
type strip struct {
	face     Face
	side     side
	reversed bool
}

// adjacency lists, for each face, the four neighbour strips it drags along
// when turned clockwise (looking at the face). Contents of strip i move to
// strip i+1. Strips are ordered so that position k of every strip lands on
// position k of the next one; reversed flips a strip's reading direction to
// keep that alignment.
//
// This table is the only place the cube's geometry lives. Half turns and
// counter-clockwise turns are repeated clockwise quarters over it.
var adjacency = [6][4]strip{
	U: {{F, top, false}, {L, top, false}, {B, top, false}, {R, top, false}},
	D: {{F, bottom, false}, {R, bottom, false}, {B, bottom, false}, {L, bottom, false}},
	F: {{U, bottom, false}, {R, left, false}, {D, top, true}, {L, right, true}},
	B: {{U, top, false}, {L, left, true}, {D, bottom, true}, {R, right, false}},
	R: {{F, right, false}, {U, right, false}, {B, left, true}, {D, right, false}},
	L: {{F, left, false}, {D, left, false}, {B, right, true}, {U, left, false}},
}

// index returns the flat offset of a facelet.
func index(n int, face Face, row, col int) int {
	return int(face)*n*n + row*n + col
}

// stripIndex returns the flat offset of the k-th facelet of a strip that
// sits depth rows or columns in from the bordering side.
func stripIndex(n int, s strip, depth, k int) int {
	if s.reversed {
		k = n - 1 - k
	}
	switch s.side {
	case top:
		return index(n, s.face, depth, k)
	case bottom:
		return index(n, s.face, n-1-depth, k)
	case left:
		return index(n, s.face, k, depth)
	default:
		return index(n, s.face, k, n-1-depth)
	}
}

// turnLayer rotates the layer at depth (0 = the face itself) quarters times
// clockwise. It works over any facelet-indexed buffer so the same code
// drives both cube colors and position tracking.
func turnLayer[T any](buf []T, n int, face Face, depth, quarters int) {
	for q := 0; q < quarters; q++ {
		if depth == 0 {
			rotateGridCW(buf, n, face)
		}
		cycleStrips(buf, n, face, depth)
	}
}

// rotateGridCW turns a face's own grid a quarter clockwise:
// grid[r][c] <- grid[n-1-c][r].
func rotateGridCW[T any](buf []T, n int, face Face) {
	base := int(face) * n * n
	old := make([]T, n*n)
	copy(old, buf[base:base+n*n])
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			buf[base+r*n+c] = old[(n-1-c)*n+r]
		}
	}
}

// cycleStrips moves each neighbour strip one step along the face's cycle.
func cycleStrips[T any](buf []T, n int, face Face, depth int) {
	cycle := adjacency[face]
	for k := 0; k < n; k++ {
		last := stripIndex(n, cycle[3], depth, k)
		saved := buf[last]
		for i := 3; i > 0; i-- {
			buf[stripIndex(n, cycle[i], depth, k)] = buf[stripIndex(n, cycle[i-1], depth, k)]
		}
		buf[stripIndex(n, cycle[0], depth, k)] = saved
	}
}

// affected returns the facelet positions a move permutes on an N cube.
// It replays the move over an identity labelling and keeps every slot whose
// label moved.
func affected(n int, m Move) ([]Position, error) {
	depth, err := m.depth(n)
	if err != nil {
		return nil, err
	}
	labels := make([]int, 6*n*n)
	for i := range labels {
		labels[i] = i
	}
	turnLayer(labels, n, m.turnFace(), depth, m.Turn.quarters())

	var out []Position
	area := n * n
	for i, label := range labels {
		if label != i {
			out = append(out, Position{Face: Face(i / area), Row: (i % area) / n, Col: i % n})
		}
	}
	return out, nil
}
