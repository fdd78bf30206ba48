// Package notation provides move notation conversion utilities for display
// layers: descriptions, lenient parsing and sequence simplification.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/twisty"
)

// ParseLenient parses a space-separated sequence the way a text box does:
// valid tokens are kept, anything else is returned in skipped.
// Engines should use twisty.ParseSequence, which refuses bad tokens.
func ParseLenient(s string) (moves twisty.Sequence, skipped []string) {
	parts := strings.Fields(s)
	moves = make(twisty.Sequence, 0, len(parts))

	for _, part := range parts {
		move, err := twisty.ParseMove(part)
		if err != nil {
			skipped = append(skipped, part)
			continue
		}
		moves = append(moves, move)
	}

	return moves, skipped
}

// Simplify merges adjacent moves on the same face and layer.
// R R becomes R2, R R' disappears, and merges cascade: R U U' R' is empty.
func Simplify(moves twisty.Sequence) twisty.Sequence {
	out := make(twisty.Sequence, 0, len(moves))
	for _, m := range moves {
		if len(out) > 0 && out[len(out)-1].SameLayer(m) {
			prev := out[len(out)-1]
			out = out[:len(out)-1]
			merged, ok := Merge(prev, m)
			switch {
			case !ok:
			case spellable(merged):
				out = append(out, merged)
			default:
				// R2 always reads as the outer half turn, so a clockwise
				// second layer is written as a half turn and a prime.
				half, prime := merged, merged
				half.Turn, prime.Turn = twisty.Half, twisty.CCW
				out = append(out, half, prime)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// Merge combines two moves on the same face and layer.
// ok is false when they cancel out.
func Merge(a, b twisty.Move) (merged twisty.Move, ok bool) {
	merged = a
	merged.Turn = NormalizeTurn(quarters(a.Turn) + quarters(b.Turn))
	return merged, merged.Turn != 0
}

// NormalizeTurn maps a count of clockwise quarter turns to a Turn.
// 0 and multiples of 4 return 0 (no turn).
func NormalizeTurn(q int) twisty.Turn {
	switch ((q % 4) + 4) % 4 {
	case 1:
		return twisty.CW
	case 2:
		return twisty.Half
	case 3:
		return twisty.CCW
	default:
		return 0
	}
}

func quarters(t twisty.Turn) int {
	switch t {
	case twisty.CW:
		return 1
	case twisty.Half:
		return 2
	case twisty.CCW:
		return 3
	default:
		return 0
	}
}

// spellable reports whether the move's notation parses back to itself.
func spellable(m twisty.Move) bool {
	return m.Slice != twisty.NoSlice || m.Turn != twisty.CW || m.Layer == 0 || m.Layer%10 != 2
}

// IsCancellation returns true if b undoes a.
func IsCancellation(a, b twisty.Move) bool {
	_, ok := Merge(a, b)
	return a.SameLayer(b) && !ok
}
