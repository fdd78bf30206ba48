package twisty

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

const (
	// MinSize is the smallest cube the engine models.
	MinSize = 2
	// DefaultMaxSize is the largest size an Engine accepts unless
	// WithMaxSize says otherwise.
	DefaultMaxSize = 4
	// MaxSize is the largest cube NewCube builds.
	MaxSize = 16
)

// ApplyMove parses token and applies it to a copy of state.
// state itself is never modified; on error the returned cube is nil.
func ApplyMove(state *Cube, token string) (*Cube, error) {
	m, err := ParseMove(token)
	if err != nil {
		return nil, withToken(err, token, state.n)
	}
	next := state.Clone()
	if err := next.Apply(m); err != nil {
		return nil, withToken(err, token, state.n)
	}
	return next, nil
}

// ApplySequence applies tokens in order to a copy of state.
//
// Application is not atomic. When a token fails, the returned cube is the
// state after the last token that succeeded, and the error is a
// *NotationError whose Index names the failing token. Callers that want
// all-or-nothing behaviour should discard the cube when err != nil.
func ApplySequence(state *Cube, tokens []string) (*Cube, error) {
	next := state.Clone()
	for i, token := range tokens {
		m, err := ParseMove(token)
		if err == nil {
			err = next.Apply(m)
		}
		if err != nil {
			return next, withIndex(withToken(err, token, state.n), i)
		}
	}
	return next, nil
}

// IsSolved reports whether every face of state is monochrome.
func IsSolved(state *Cube) bool {
	return state.IsSolved()
}

// Step is the result of one engine move.
type Step struct {
	State   *Cube      // snapshot after the move; owned by the caller
	Move    Move       // the parsed move
	Changed []Position // facelet slots the move permuted
}

// Engine owns the cube state of a single session.
//
// An Engine is not safe for concurrent use; hosts that serve several
// sessions give each its own Engine.
type Engine struct {
	cfg   *config
	log   *zap.Logger
	state *Cube
}

// NewEngine creates an engine holding a solved cube of the given size.
func NewEngine(size int, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	log := cfg.logger
	if log == nil {
		log = Logger()
	}

	e := &Engine{cfg: cfg, log: log}
	if _, err := e.Initialize(size); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize replaces the current state with a solved cube of size.
// On error the previous state is kept.
func (e *Engine) Initialize(size int) (*Cube, error) {
	if size < e.cfg.minSize || size > e.cfg.maxSize {
		e.log.Debug("rejected cube size", zap.Int("size", size))
		return nil, &SizeError{Size: size, Min: e.cfg.minSize, Max: e.cfg.maxSize}
	}
	c, err := NewCube(size)
	if err != nil {
		return nil, err
	}
	e.state = c
	e.log.Debug("cube initialized", zap.Int("size", size))
	return c.Clone(), nil
}

// Size returns the current cube size.
func (e *Engine) Size() int {
	return e.state.n
}

// State returns a snapshot of the current cube.
func (e *Engine) State() *Cube {
	return e.state.Clone()
}

// IsSolved reports whether the current cube is solved.
func (e *Engine) IsSolved() bool {
	return e.state.IsSolved()
}

// ApplyMove applies one token to the current state.
// On error the state is unchanged.
func (e *Engine) ApplyMove(token string) (Step, error) {
	m, err := ParseMove(token)
	if err != nil {
		err = withToken(err, token, e.state.n)
		e.log.Debug("rejected move", zap.String("token", token), zap.Error(err))
		return Step{}, err
	}
	return e.Apply(m)
}

// Apply applies a parsed move to the current state.
func (e *Engine) Apply(m Move) (Step, error) {
	changed, err := affected(e.state.n, m)
	if err != nil {
		e.log.Debug("rejected move", zap.Stringer("move", m), zap.Error(err))
		return Step{}, err
	}
	if err := e.state.Apply(m); err != nil {
		return Step{}, err
	}
	return Step{State: e.state.Clone(), Move: m, Changed: changed}, nil
}

// ApplySequence applies tokens in order.
//
// The first failing token stops the sequence. Moves before it stay applied
// and are returned along with the error, mirroring how an interactive user
// enters moves one by one.
func (e *Engine) ApplySequence(tokens []string) ([]Step, error) {
	steps := make([]Step, 0, len(tokens))
	for i, token := range tokens {
		step, err := e.ApplyMove(token)
		if err != nil {
			return steps, withIndex(err, i)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Scramble generates a scramble for the current size without applying it.
func (e *Engine) Scramble(length int, rng *rand.Rand) (Sequence, error) {
	return Scramble(e.state.n, length, rng)
}
