package twisty

// Phase represents progress through the layer-by-layer method, white on
// top and green in front. Phases progress from Scrambled to Solved,
// allowing comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no phase is complete.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the U edges are white and their side
	// colors match the adjacent faces. On a 2x2 there are no edges and
	// this phase coincides with PhaseFirstLayer.
	PhaseWhiteCross

	// PhaseFirstLayer indicates the whole U face and the top row of every
	// side face are correct.
	PhaseFirstLayer

	// PhaseSecondLayer indicates every side row except the bottom one is
	// correct.
	PhaseSecondLayer

	// PhaseYellowCross indicates the D edges show yellow.
	PhaseYellowCross

	// PhaseYellowCorners indicates the four bottom corners are in place,
	// possibly twisted.
	PhaseYellowCorners

	// PhaseYellowOriented indicates the bottom corners are also twisted
	// correctly; only bottom edges may remain.
	PhaseYellowOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCorners:
		return "yellow_corners"
	case PhaseYellowOriented:
		return "yellow_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCorners:
		return "Yellow Corners Positioned"
	case PhaseYellowOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Next returns the phase to work on after p.
func (p Phase) Next() Phase {
	if p >= PhaseSolved {
		return PhaseSolved
	}
	return p + 1
}
