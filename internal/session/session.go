// Package session tracks one user's interaction with a cube: the move
// count, the solve timer and undo history, and records finished solves.
package session

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

// ErrNothingToUndo is returned by Undo on an empty history.
var ErrNothingToUndo = errors.New("session: nothing to undo")

// TimerState represents the state of the solve timer.
type TimerState int

const (
	TimerIdle    TimerState = iota // reset or scrambled, waiting for a move
	TimerRunning                   // first move made, cube not yet solved
	TimerStopped                   // cube solved
)

// String returns the string representation of the timer state.
func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithStore records sessions and finished solves in db.
func WithStore(db *storage.DB) Option {
	return func(s *Session) {
		s.sessions = storage.NewSessionRepository(db)
		s.solves = storage.NewSolveRepository(db)
		s.phases = storage.NewPhaseRepository(db)
	}
}

// WithEngineOptions passes options through to the engine.
func WithEngineOptions(opts ...twisty.Option) Option {
	return func(s *Session) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// Split marks the move and time at which a timed solve first reached a
// phase.
type Split struct {
	Phase   twisty.Phase
	Move    int
	Elapsed time.Duration
}

// Session manages a cube, its solve timer and its move history.
// It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	engine     *twisty.Engine
	engineOpts []twisty.Option
	now        func() time.Time
	log        *zap.Logger

	id       string
	scramble twisty.Sequence
	history  twisty.Sequence
	moves    int

	tracker *twisty.Tracker
	splits  []Split

	timer     TimerState
	startedAt time.Time
	elapsed   time.Duration

	sessions *storage.SessionRepository
	solves   *storage.SolveRepository
	phases   *storage.PhaseRepository
}

// New creates a session holding a solved cube of the given size.
func New(size int, opts ...Option) (*Session, error) {
	s := &Session{
		now: time.Now,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	engine, err := twisty.NewEngine(size, append(s.engineOpts, twisty.WithLogger(s.log))...)
	if err != nil {
		return nil, err
	}
	s.engine = engine
	s.tracker = twisty.NewTracker()
	s.tracker.Reset(engine.State())

	if s.sessions != nil {
		id, err := s.sessions.Create(size)
		if err != nil {
			return nil, err
		}
		s.id = id
	}

	s.log.Debug("session created", zap.String("id", s.id), zap.Int("size", size))
	return s, nil
}

// ID returns the stored session ID, empty without a store.
func (s *Session) ID() string {
	return s.id
}

// Size returns the cube size.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Size()
}

// State returns a copy of the cube.
func (s *Session) State() *twisty.Cube {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.State()
}

// IsSolved reports whether the cube is solved.
func (s *Session) IsSolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.IsSolved()
}

// MoveCount returns the moves applied since the last reset or scramble.
// Undo counts as a move.
func (s *Session) MoveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves
}

// History returns the moves since the last reset or scramble, without
// moves that were undone.
func (s *Session) History() twisty.Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(twisty.Sequence(nil), s.history...)
}

// Splits returns the phases reached since the timer started, in order.
func (s *Session) Splits() []Split {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Split(nil), s.splits...)
}

// Scramble returns the last scramble, nil after a reset.
func (s *Session) Scramble() twisty.Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(twisty.Sequence(nil), s.scramble...)
}

// Timer returns the timer state.
func (s *Session) Timer() TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer
}

// Elapsed returns the solve time so far, or the final time once solved.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == TimerRunning {
		return s.now().Sub(s.startedAt)
	}
	return s.elapsed
}

// Phase returns the layer-by-layer phase the cube shows now and the
// highest phase reached since the last reset or scramble.
func (s *Session) Phase() (current, highest twisty.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.CurrentPhase(), s.tracker.HighestPhase()
}

// ApplyMove applies one token. An invalid token leaves everything,
// including the timer, untouched.
func (s *Session) ApplyMove(token string) (twisty.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step, err := s.engine.ApplyMove(token)
	if err != nil {
		return twisty.Step{}, err
	}
	s.afterMove(step.Move, true)
	return step, nil
}

// ApplySequence applies tokens in order, stopping at the first bad one.
// Moves before it stay applied.
func (s *Session) ApplySequence(tokens []string) ([]twisty.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	steps, err := s.engine.ApplySequence(tokens)
	for _, step := range steps {
		s.afterMove(step.Move, true)
	}
	return steps, err
}

// Undo reverses the most recent move.
func (s *Session) Undo() (twisty.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return twisty.Step{}, ErrNothingToUndo
	}
	last := s.history[len(s.history)-1]
	step, err := s.engine.Apply(last.Inverse())
	if err != nil {
		return twisty.Step{}, err
	}
	s.history = s.history[:len(s.history)-1]
	s.afterMove(step.Move, false)
	return step, nil
}

// Reset restores a solved cube. A size of 0 keeps the current size.
func (s *Session) Reset(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if size == 0 {
		size = s.engine.Size()
	}
	resized := size != s.engine.Size()
	if _, err := s.engine.Initialize(size); err != nil {
		return err
	}
	if resized && s.sessions != nil {
		if err := s.sessions.SetSize(s.id, size); err != nil {
			s.log.Warn("failed to record size change", zap.Error(err))
		}
	}

	s.scramble = nil
	s.clear()
	return nil
}

// ScrambleCube resets the cube, applies a random scramble of the given
// length and arms the timer for the next move.
func (s *Session) ScrambleCube(length int, rng *rand.Rand) (twisty.Sequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, err := s.engine.Scramble(length, rng)
	if err != nil {
		return nil, err
	}
	if _, err := s.engine.Initialize(s.engine.Size()); err != nil {
		return nil, err
	}
	for _, m := range seq {
		if _, err := s.engine.Apply(m); err != nil {
			return nil, err
		}
	}

	s.scramble = seq
	s.clear()
	s.log.Debug("scrambled", zap.String("scramble", seq.String()))
	return seq, nil
}

// Stats returns the recorded solves of this session.
// Without a store it returns zero Stats.
func (s *Session) Stats() (storage.Stats, error) {
	if s.solves == nil {
		return storage.Stats{}, nil
	}
	return s.solves.Stats(s.id)
}

func (s *Session) clear() {
	s.tracker.Reset(s.engine.State())
	s.history = nil
	s.splits = nil
	s.moves = 0
	s.timer = TimerIdle
	s.elapsed = 0
}

// afterMove updates counters and the timer after a move was applied.
// Must be called with s.mu held.
func (s *Session) afterMove(m twisty.Move, record bool) {
	if record {
		s.history = append(s.history, m)
	}
	s.moves++

	now := s.now()
	if s.timer == TimerIdle {
		s.timer = TimerRunning
		s.startedAt = now
	}

	if s.tracker.Observe(s.engine.State()) {
		phase := s.tracker.HighestPhase()
		s.log.Debug("phase reached", zap.Stringer("phase", phase), zap.Int("moves", s.moves))
		if s.timer == TimerRunning {
			s.splits = append(s.splits, Split{Phase: phase, Move: s.moves, Elapsed: now.Sub(s.startedAt)})
		}
	}

	if s.timer != TimerRunning || !s.engine.IsSolved() {
		return
	}

	s.timer = TimerStopped
	s.elapsed = now.Sub(s.startedAt)
	s.log.Info("solved",
		zap.Int("moves", s.moves),
		zap.Duration("time", s.elapsed),
	)
	s.recordSolve()
}

func (s *Session) recordSolve() {
	if s.solves == nil || len(s.scramble) == 0 {
		return
	}
	solveID, err := s.solves.Record(s.id, s.engine.Size(), s.scramble.String(), s.history, s.elapsed)
	if err != nil {
		s.log.Warn("failed to record solve", zap.Error(err))
		return
	}

	marks := make([]storage.PhaseMark, len(s.splits))
	for i, sp := range s.splits {
		marks[i] = storage.PhaseMark{PhaseKey: sp.Phase.String(), MoveIndex: sp.Move, Elapsed: sp.Elapsed}
	}
	if err := s.phases.CreatePhaseMarks(solveID, marks); err != nil {
		s.log.Warn("failed to record phase marks", zap.String("solve", solveID), zap.Error(err))
	}
}

// Rating grades a solve by move count.
func Rating(moves int) string {
	switch {
	case moves < 30:
		return "Excellent"
	case moves < 60:
		return "Good"
	default:
		return "Practice More"
	}
}
