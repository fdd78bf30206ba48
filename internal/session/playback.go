package session

import (
	"fmt"

	"github.com/SeamusWaldron/twisty"
)

// Playback steps through a loaded sequence on its own copy of a cube.
// Position 0 is the starting state and position Len() is the state after
// every move.
type Playback struct {
	start *twisty.Cube
	cube  *twisty.Cube
	moves twisty.Sequence
	pos   int
}

// NewPlayback loads moves for playback from start. Every move is checked
// against the cube size up front so stepping never fails halfway.
func NewPlayback(start *twisty.Cube, moves twisty.Sequence) (*Playback, error) {
	probe := start.Clone()
	for i, m := range moves {
		if err := probe.Apply(m); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return &Playback{
		start: start.Clone(),
		cube:  start.Clone(),
		moves: append(twisty.Sequence(nil), moves...),
	}, nil
}

// Len returns the number of moves loaded.
func (p *Playback) Len() int {
	return len(p.moves)
}

// Position returns the number of moves currently applied.
func (p *Playback) Position() int {
	return p.pos
}

// State returns a copy of the cube at the current position.
func (p *Playback) State() *twisty.Cube {
	return p.cube.Clone()
}

// Moves returns the loaded sequence.
func (p *Playback) Moves() twisty.Sequence {
	return append(twisty.Sequence(nil), p.moves...)
}

// Forward applies the next move. It returns false at the end.
func (p *Playback) Forward() (twisty.Move, bool) {
	if p.pos >= len(p.moves) {
		return twisty.Move{}, false
	}
	m := p.moves[p.pos]
	_ = p.cube.Apply(m) // checked in NewPlayback
	p.pos++
	return m, true
}

// Back undoes the previous move. It returns false at the start.
func (p *Playback) Back() (twisty.Move, bool) {
	if p.pos == 0 {
		return twisty.Move{}, false
	}
	p.pos--
	m := p.moves[p.pos]
	_ = p.cube.Apply(m.Inverse())
	return m, true
}

// Seek moves to position i, clamped to [0, Len()].
func (p *Playback) Seek(i int) {
	i = max(0, min(i, len(p.moves)))
	if i < p.pos-i {
		// closer to the start than to the current position
		p.cube = p.start.Clone()
		p.pos = 0
	}
	for p.pos < i {
		p.Forward()
	}
	for p.pos > i {
		p.Back()
	}
}
