package twisty

// Tracker follows the solving phase of a cube across moves.
//
// The current phase may go backwards while solving; the highest phase is
// monotonic until Reset.
type Tracker struct {
	current       Phase
	highest       Phase
	phaseCallback func(phase Phase)
}

// NewTracker creates a tracker for a scrambled cube.
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetPhaseCallback sets a callback that fires when a new highest phase
// is reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// Reset starts tracking again from state. The highest phase restarts at
// whatever state already shows, without firing the callback.
func (t *Tracker) Reset(state *Cube) {
	t.current = state.DetectPhase()
	t.highest = t.current
}

// Observe records the phase of state after a move and reports whether it
// is a new high.
func (t *Tracker) Observe(state *Cube) bool {
	t.current = state.DetectPhase()

	// Only trigger callback and update highest phase when reaching a NEW high
	if t.current <= t.highest {
		return false
	}
	t.highest = t.current
	if t.phaseCallback != nil {
		t.phaseCallback(t.current)
	}
	return true
}

// CurrentPhase returns the phase of the last observed state.
func (t *Tracker) CurrentPhase() Phase {
	return t.current
}

// HighestPhase returns the highest phase reached since Reset.
func (t *Tracker) HighestPhase() Phase {
	return t.highest
}

// WorkingOn returns the phase after the highest one reached.
func (t *Tracker) WorkingOn() Phase {
	return t.highest.Next()
}
