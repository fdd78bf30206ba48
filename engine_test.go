package twisty

import (
	"errors"
	"strings"
	"testing"
)

func TestEngineInitialize(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		e, err := NewEngine(n)
		if err != nil {
			t.Fatalf("NewEngine(%d): %v", n, err)
		}
		if e.Size() != n {
			t.Errorf("Size() = %d, want %d", e.Size(), n)
		}
		if !IsSolved(e.State()) {
			t.Errorf("%dx%d engine should start solved", n, n)
		}
	}
}

func TestEngineRejectsSize(t *testing.T) {
	e, err := NewEngine(3)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = e.ApplyMove("R")

	for _, n := range []int{1, 5} {
		_, err := e.Initialize(n)
		if !errors.Is(err, ErrUnsupportedSize) {
			t.Errorf("Initialize(%d) error = %v, want ErrUnsupportedSize", n, err)
		}
		var se *SizeError
		if !errors.As(err, &se) || se.Size != n {
			t.Errorf("Initialize(%d) should return *SizeError with the size", n)
		}
	}
	if e.Size() != 3 || e.IsSolved() {
		t.Error("failed Initialize should keep the previous state")
	}
}

func TestEngineWithMaxSize(t *testing.T) {
	e, err := NewEngine(7, WithMaxSize(7))
	if err != nil {
		t.Fatalf("NewEngine(7) with max 7: %v", err)
	}
	if _, err := e.ApplyMove("R4'"); err != nil {
		t.Errorf("7x7 should have layer 4: %v", err)
	}
	if _, err := e.ApplyMove("R6"); !errors.Is(err, ErrUnsupportedLayer) {
		t.Errorf("7x7 R6: error = %v, want ErrUnsupportedLayer", err)
	}
}

func TestEngineWithMaxSizeBelowMin(t *testing.T) {
	for _, limit := range []int{1, 0, -4} {
		e, err := NewEngine(MinSize, WithMaxSize(limit))
		if err != nil {
			t.Errorf("WithMaxSize(%d): NewEngine(%d): %v", limit, MinSize, err)
			continue
		}
		if _, err := e.Initialize(MinSize + 1); !errors.Is(err, ErrUnsupportedSize) {
			t.Errorf("WithMaxSize(%d): Initialize(%d) error = %v, want ErrUnsupportedSize", limit, MinSize+1, err)
		}
	}
}

func TestSetLoggerIgnoresNil(t *testing.T) {
	before := Logger()
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("SetLogger(nil) should keep the current logger")
	}
	if Logger() != before {
		t.Error("SetLogger(nil) should not replace the logger")
	}

	e, err := NewEngine(3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.ApplyMove("R"); err != nil {
		t.Errorf("engine after SetLogger(nil): %v", err)
	}
}

func TestLayerErrorIsNotationError(t *testing.T) {
	for _, tt := range []struct {
		n     int
		token string
	}{
		{2, "R1"},
		{2, "R22"},
		{3, "R2'"},
		{4, "M"},
	} {
		_, err := ApplyMove(mustCube(t, tt.n), tt.token)
		if !errors.Is(err, ErrUnsupportedLayer) {
			t.Errorf("%dx%d %s: error = %v, want ErrUnsupportedLayer", tt.n, tt.n, tt.token, err)
		}
		if !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("%dx%d %s: layer error should also match ErrInvalidNotation", tt.n, tt.n, tt.token)
		}
	}

	// Malformed tokens stay plain notation errors.
	_, err := ApplyMove(mustCube(t, 3), "Q")
	if errors.Is(err, ErrUnsupportedLayer) {
		t.Errorf("Q: error = %v should not match ErrUnsupportedLayer", err)
	}
}

func TestEngineSizeChangeResets(t *testing.T) {
	e, _ := NewEngine(3)
	_, _ = e.ApplySequence(strings.Fields("R U F"))
	if _, err := e.Initialize(2); err != nil {
		t.Fatal(err)
	}
	if e.Size() != 2 || !e.IsSolved() {
		t.Error("changing size should reset to a solved cube")
	}
}

func TestEngineApplyMoveStep(t *testing.T) {
	e, _ := NewEngine(3)
	step, err := e.ApplyMove("R")
	if err != nil {
		t.Fatal(err)
	}
	if step.Move != RMove {
		t.Errorf("step.Move = %v, want R", step.Move)
	}
	if len(step.Changed) != 20 {
		t.Errorf("R should permute 20 facelets, got %d", len(step.Changed))
	}
	if !step.State.Equal(e.State()) {
		t.Error("step snapshot should match engine state")
	}

	// the snapshot belongs to the caller
	_ = step.State.Apply(UMove)
	if step.State.Equal(e.State()) {
		t.Error("changing a snapshot should not change the engine")
	}
}

func TestEngineInvalidMoveKeepsState(t *testing.T) {
	e, _ := NewEngine(3)
	_, _ = e.ApplyMove("F")
	before := e.State()

	_, err := e.ApplyMove("X")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("error = %v, want ErrInvalidNotation", err)
	}
	if !e.State().Equal(before) {
		t.Error("invalid token should leave the state unchanged")
	}
}

func TestEngineSequencePartial(t *testing.T) {
	e, _ := NewEngine(3)
	steps, err := e.ApplySequence([]string{"R", "U", "Z", "F"})
	if err == nil {
		t.Fatal("expected error")
	}
	var ne *NotationError
	if !errors.As(err, &ne) || ne.Index != 2 {
		t.Fatalf("error = %v, want NotationError at index 2", err)
	}
	if len(steps) != 2 {
		t.Errorf("got %d steps, want 2", len(steps))
	}

	want, _ := ApplySequence(mustCube(t, 3), []string{"R", "U"})
	if !e.State().Equal(want) {
		t.Error("engine should hold the state after R U")
	}
}

func TestApplyMovePure(t *testing.T) {
	c := mustCube(t, 3)
	out, err := ApplyMove(c, "R")
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("ApplyMove should not modify its input")
	}
	if out.IsSolved() {
		t.Error("result should reflect the move")
	}
}

func TestApplyMoveInvalidFace(t *testing.T) {
	c := mustCube(t, 3)
	out, err := ApplyMove(c, "X")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("error = %v, want ErrInvalidNotation", err)
	}
	if out != nil {
		t.Error("failed ApplyMove should not return a cube")
	}
	if !c.IsSolved() {
		t.Error("state should be unchanged")
	}
}

func TestApplyMoveLayerOn2x2(t *testing.T) {
	c := mustCube(t, 2)
	_, err := ApplyMove(c, "R1")
	if !errors.Is(err, ErrUnsupportedLayer) {
		t.Errorf("R1 on 2x2: error = %v, want ErrUnsupportedLayer", err)
	}
	var ne *NotationError
	if !errors.As(err, &ne) || ne.Token != "R1" || ne.Size != 2 {
		t.Errorf("error details = %+v", ne)
	}
}

func TestApplyMoveLayerBounds(t *testing.T) {
	tests := []struct {
		n     int
		token string
		ok    bool
	}{
		{2, "R22", false},
		{3, "R2'", false},
		{3, "R22", false},
		{3, "R3", false},
		{4, "R2'", true},
		{4, "U22", true},
		{4, "R3", false},
		{4, "R4", false},
		{4, "R1", false},
		{5, "F3'", true},
		{5, "F4'", false},
		{6, "R4", true},
		{6, "L5", false},
	}
	for _, tt := range tests {
		c := mustCube(t, tt.n)
		_, err := ApplyMove(c, tt.token)
		if tt.ok && err != nil {
			t.Errorf("%dx%d %s: %v", tt.n, tt.n, tt.token, err)
		}
		if !tt.ok {
			if !errors.Is(err, ErrUnsupportedLayer) {
				t.Errorf("%dx%d %s: error = %v, want ErrUnsupportedLayer", tt.n, tt.n, tt.token, err)
			}
			if !c.IsSolved() {
				t.Errorf("%dx%d %s: rejected move should leave the input alone", tt.n, tt.n, tt.token)
			}
		}
	}
}

func TestApplySequenceEmpty(t *testing.T) {
	c := mustCube(t, 3)
	_ = c.Apply(FMove)
	out, err := ApplySequence(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(c) {
		t.Error("empty sequence should return an equal state")
	}
}

func TestApplySequenceStopsAtFirstError(t *testing.T) {
	c := mustCube(t, 3)
	out, err := ApplySequence(c, []string{"R", "U", "R9", "F"})
	if !errors.Is(err, ErrUnsupportedLayer) {
		t.Fatalf("error = %v, want ErrUnsupportedLayer", err)
	}
	var ne *NotationError
	if errors.As(err, &ne) && ne.Index != 2 {
		t.Errorf("Index = %d, want 2", ne.Index)
	}

	want, _ := ApplySequence(c, []string{"R", "U"})
	if !out.Equal(want) {
		t.Error("partial state should reflect R U only")
	}
	if !c.IsSolved() {
		t.Error("input should stay untouched")
	}
}

func TestSexySequenceSixTimes(t *testing.T) {
	c := mustCube(t, 3)
	tokens := strings.Fields("R U R' U'")
	for i := 0; i < 6; i++ {
		var err error
		c, err = ApplySequence(c, tokens)
		if err != nil {
			t.Fatal(err)
		}
	}
	if !IsSolved(c) {
		t.Errorf("(R U R' U') x 6 should be solved\n%s", c.String())
	}
}

func TestSequenceThenInverse(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		seq, err := Scramble(n, 30, NewSource(uint64(n)))
		if err != nil {
			t.Fatal(err)
		}
		c := mustCube(t, n)
		c, err = ApplySequence(c, seq.Tokens())
		if err != nil {
			t.Fatal(err)
		}
		c, err = ApplySequence(c, seq.Inverse().Tokens())
		if err != nil {
			t.Fatal(err)
		}
		if !c.IsSolved() {
			t.Errorf("%dx%d: scramble then inverse should be solved", n, n)
		}
	}
}
