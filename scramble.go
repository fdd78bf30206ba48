package twisty

import "math/rand/v2"

// Alphabet returns every move a scramble may draw for an N cube: each face,
// the outer layer and inner layers 2..N-2, in all three turn amounts.
// Every physical slice is addressed from one face only, and moves whose
// notation would read back differently are left out.
func Alphabet(n int) []Move {
	layers := []int{0}
	for l := 2; l <= n-2; l++ {
		layers = append(layers, l)
	}

	moves := make([]Move, 0, 6*len(layers)*3)
	for _, face := range []Face{R, L, U, D, F, B} {
		for _, layer := range layers {
			for _, turn := range []Turn{CW, CCW, Half} {
				m := Move{Face: face, Layer: layer, Turn: turn}
				if m.ambiguous() {
					continue
				}
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Scramble draws length moves uniformly from Alphabet(size). A candidate
// that turns the same face and layer as the move before it is redrawn, so
// no pair like R R' or R R2 appears back to back.
//
// The result depends only on size, length and the state of rng, so a
// seeded source reproduces the same scramble.
func Scramble(size, length int, rng *rand.Rand) (Sequence, error) {
	if size < MinSize || size > MaxSize {
		return nil, &SizeError{Size: size, Min: MinSize, Max: MaxSize}
	}
	if length < 1 {
		return nil, ErrInvalidLength
	}
	if rng == nil {
		return nil, ErrNoRandom
	}

	alphabet := Alphabet(size)
	seq := make(Sequence, 0, length)
	for len(seq) < length {
		candidate := alphabet[rng.IntN(len(alphabet))]
		if len(seq) > 0 && candidate.SameLayer(seq[len(seq)-1]) {
			continue
		}
		seq = append(seq, candidate)
	}
	return seq, nil
}

// NewSource returns a seeded random generator suitable for Scramble.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
