package twisty

// Predefined outer-layer moves for convenience.
// Use these instead of constructing Move structs manually.
//
// twisty.R is the Face; the move is twisty.RMove.
//
// Example:
//
//	err := cube.Apply(twisty.RMove)
var (
	// Right face moves
	RMove  = Move{Face: R, Turn: CW}   // Right clockwise
	RPrime = Move{Face: R, Turn: CCW}  // Right counter-clockwise
	R2     = Move{Face: R, Turn: Half} // Right 180

	// Left face moves
	LMove  = Move{Face: L, Turn: CW}   // Left clockwise
	LPrime = Move{Face: L, Turn: CCW}  // Left counter-clockwise
	L2     = Move{Face: L, Turn: Half} // Left 180

	// Up face moves
	UMove  = Move{Face: U, Turn: CW}   // Up clockwise
	UPrime = Move{Face: U, Turn: CCW}  // Up counter-clockwise
	U2     = Move{Face: U, Turn: Half} // Up 180

	// Down face moves
	DMove  = Move{Face: D, Turn: CW}   // Down clockwise
	DPrime = Move{Face: D, Turn: CCW}  // Down counter-clockwise
	D2     = Move{Face: D, Turn: Half} // Down 180

	// Front face moves
	FMove  = Move{Face: F, Turn: CW}   // Front clockwise
	FPrime = Move{Face: F, Turn: CCW}  // Front counter-clockwise
	F2     = Move{Face: F, Turn: Half} // Front 180

	// Back face moves
	BMove  = Move{Face: B, Turn: CW}   // Back clockwise
	BPrime = Move{Face: B, Turn: CCW}  // Back counter-clockwise
	B2     = Move{Face: B, Turn: Half} // Back 180
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = Sequence{RMove, UMove, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = Sequence{UMove, RMove, UPrime, RPrime}

// Sune: R U R' U R U2 R'
var Sune = Sequence{RMove, UMove, RPrime, UMove, RMove, U2, RPrime}

// T-perm algorithm
var TPerm = Sequence{RMove, UMove, RPrime, UPrime, RPrime, FMove, R2, UPrime, RPrime, UPrime, RMove, UMove, RPrime, FPrime}
