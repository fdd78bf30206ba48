package twisty

import (
	"strconv"
	"strings"
)

// Turn represents the direction and magnitude of a layer turn.
type Turn int

const (
	CW   Turn = 1  // Clockwise (90 degrees)
	CCW  Turn = -1 // Counter-clockwise (90 degrees)
	Half Turn = 2  // Half turn (180 degrees)
)

// quarters returns how many clockwise quarter turns make up t.
func (t Turn) quarters() int {
	switch t {
	case CW:
		return 1
	case Half:
		return 2
	case CCW:
		return 3
	default:
		return 0
	}
}

// Suffix returns the notation modifier for the turn.
func (t Turn) Suffix() string {
	switch t {
	case CCW:
		return "'"
	case Half:
		return "2"
	default:
		return ""
	}
}

// Slice names a middle-slice move letter.
type Slice byte

const (
	NoSlice Slice = 0
	SliceM  Slice = 'M' // between L and R, turns like L
	SliceE  Slice = 'E' // between U and D, turns like D
	SliceS  Slice = 'S' // between F and B, turns like F
)

// Move represents one notation token.
//
// Layer 0 is the outermost layer. Explicit layers are 1-based counted from
// Face, so layer 2 is the first inner slice. For slice moves Face holds the
// face the slice follows and Layer is resolved against the cube size.
type Move struct {
	Face  Face  `json:"face"`
	Layer int   `json:"layer,omitempty"`
	Turn  Turn  `json:"turn"`
	Slice Slice `json:"slice,omitempty"`
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, R3', M2
//
// A clockwise quarter of a layer whose number ends in 2 has no single-token
// spelling (R2 is always the outer half turn); FormatSequence and
// Sequence.Tokens write it as a half turn followed by a prime.
func (m Move) Notation() string {
	var b strings.Builder
	if m.Slice != NoSlice {
		b.WriteByte(byte(m.Slice))
	} else {
		b.WriteString(m.Face.String())
		if m.Layer > 0 {
			b.WriteString(strconv.Itoa(m.Layer))
		}
	}
	b.WriteString(m.Turn.Suffix())
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Half is its own inverse
	}
	return inv
}

// SameLayer reports whether two moves turn the same face and layer.
func (m Move) SameLayer(other Move) bool {
	return m.Face == other.Face && m.Layer == other.Layer && m.Slice == other.Slice
}

// ambiguous reports whether Notation would read back as a different move.
func (m Move) ambiguous() bool {
	return m.Slice == NoSlice && m.Turn == CW && m.Layer > 0 && m.Layer%10 == 2
}

// turnFace returns the face whose clockwise direction the move follows.
func (m Move) turnFace() Face {
	return m.Face
}

// depth resolves the move's layer to a 0-based depth for an N cube.
func (m Move) depth(n int) (int, error) {
	if !m.Face.valid() || m.Turn.quarters() == 0 {
		return 0, &NotationError{Token: m.Notation(), Index: -1, Size: n, Err: ErrInvalidNotation}
	}
	if m.Slice != NoSlice {
		if n%2 == 0 {
			return 0, &NotationError{Token: m.Notation(), Index: -1, Size: n, Err: ErrUnsupportedLayer}
		}
		return (n - 1) / 2, nil
	}
	if m.Layer == 0 {
		return 0, nil
	}
	if m.Layer < 2 || m.Layer > n-2 {
		return 0, &NotationError{Token: m.Notation(), Index: -1, Size: n, Err: ErrUnsupportedLayer}
	}
	return m.Layer - 1, nil
}

// Affected returns the facelet positions the move permutes on an N cube.
func (m Move) Affected(n int) ([]Position, error) {
	return affected(n, m)
}

// ParseMove parses a single notation token.
// Examples: R, R', R2, R3, R3', R32, M'
//
// A trailing 2 is always the half-turn modifier. Layer validity depends on
// the cube size, so ParseMove accepts any positive layer; Cube.Apply and
// ApplyMove reject layers outside 2..N-2. The token must not carry
// surrounding whitespace.
func ParseMove(s string) (Move, error) {
	token := s
	if len(s) == 0 {
		return Move{}, &NotationError{Token: token, Index: -1, Err: ErrInvalidNotation}
	}

	var m Move
	switch s[0] {
	case 'R':
		m.Face = R
	case 'L':
		m.Face = L
	case 'U':
		m.Face = U
	case 'D':
		m.Face = D
	case 'F':
		m.Face = F
	case 'B':
		m.Face = B
	case 'M':
		m.Face, m.Slice = L, SliceM
	case 'E':
		m.Face, m.Slice = D, SliceE
	case 'S':
		m.Face, m.Slice = F, SliceS
	default:
		return Move{}, &NotationError{Token: token, Index: -1, Err: ErrInvalidNotation}
	}

	// Extract turn
	rest := s[1:]
	m.Turn = CW
	switch {
	case strings.HasSuffix(rest, "'"):
		m.Turn = CCW
		rest = rest[:len(rest)-1]
	case strings.HasSuffix(rest, "2"):
		m.Turn = Half
		rest = rest[:len(rest)-1]
	}

	if rest == "" {
		return m, nil
	}
	if m.Slice != NoSlice || rest[0] == '0' {
		return Move{}, &NotationError{Token: token, Index: -1, Err: ErrInvalidNotation}
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return Move{}, &NotationError{Token: token, Index: -1, Err: ErrInvalidNotation}
		}
	}
	layer, err := strconv.Atoi(rest)
	if err != nil {
		return Move{}, &NotationError{Token: token, Index: -1, Err: ErrInvalidNotation}
	}
	m.Layer = layer
	return m, nil
}

// Sequence is an ordered list of moves.
type Sequence []Move

// String formats the sequence as space-separated notation.
func (s Sequence) String() string {
	return FormatSequence(s)
}

// Inverse returns the sequence that undoes s.
func (s Sequence) Inverse() Sequence {
	inv := make(Sequence, len(s))
	for i, m := range s {
		inv[len(s)-1-i] = m.Inverse()
	}
	return inv
}

// Tokens returns the notation of every move. A move without a single-token
// spelling is written as two tokens, so the result may be longer than s.
func (s Sequence) Tokens() []string {
	tokens := make([]string, 0, len(s))
	for _, m := range s {
		tokens = append(tokens, m.spell()...)
	}
	return tokens
}

// spell returns tokens that parse back to m's geometry. A clockwise layer
// turn such as layer 2 becomes its half turn then its prime.
func (m Move) spell() []string {
	if !m.ambiguous() {
		return []string{m.Notation()}
	}
	half, prime := m, m
	half.Turn, prime.Turn = Half, CCW
	return []string{half.Notation(), prime.Notation()}
}

// ParseSequence parses whitespace-separated tokens.
// Unlike a display layer it does not skip bad tokens: the first invalid
// token is returned as a *NotationError carrying its index.
func ParseSequence(s string) (Sequence, error) {
	parts := strings.Fields(s)
	moves := make(Sequence, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return moves, withIndex(err, i)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatSequence formats moves as a space-separated notation string.
func FormatSequence(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	return strings.Join(Sequence(moves).Tokens(), " ")
}
