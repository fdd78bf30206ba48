package notation

import (
	"testing"

	"github.com/SeamusWaldron/twisty"
)

func mustParse(t *testing.T, s string) twisty.Sequence {
	t.Helper()
	seq, err := twisty.ParseSequence(s)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", s, err)
	}
	return seq
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		token string
		text  string
		face  string
		dir   string
		angle string
	}{
		{"R", "Right face clockwise", "Right", "Clockwise", "90°"},
		{"U'", "Up face counterclockwise", "Top", "Counterclockwise", "90°"},
		{"F2", "Front face 180°", "Front", "Half turn", "180°"},
		{"D", "Down face clockwise", "Bottom", "Clockwise", "90°"},
		{"L3'", "Left layer 3 counterclockwise", "Left", "Counterclockwise", "90°"},
		{"M", "Middle slice (M) clockwise", "Left", "Clockwise", "90°"},
	}

	for _, tt := range tests {
		m, err := twisty.ParseMove(tt.token)
		if err != nil {
			t.Fatal(err)
		}
		d := Describe(m)
		if d.Move != tt.token {
			t.Errorf("%s: Move = %q", tt.token, d.Move)
		}
		if d.Description != tt.text {
			t.Errorf("%s: Description = %q, want %q", tt.token, d.Description, tt.text)
		}
		if d.Face != tt.face || d.Direction != tt.dir || d.Angle != tt.angle {
			t.Errorf("%s: got %+v", tt.token, d)
		}
	}
}

func TestDescribeTips(t *testing.T) {
	if tip := Describe(twisty.RMove).Tip; tip == "" {
		t.Error("R should carry a beginner tip")
	}
	if tip := Describe(twisty.UMove).Tip; tip != "Looking down at the top face" {
		t.Errorf("U tip = %q", tip)
	}
	if tip := Describe(twisty.RPrime).Tip; tip != "" {
		t.Errorf("R' should have no tip, got %q", tip)
	}
}

func TestDescribeSequence(t *testing.T) {
	got := DescribeSequence(mustParse(t, "R U R' U'"))
	if len(got) != 4 {
		t.Fatalf("got %d descriptions, want 4", len(got))
	}
	if got[2].Description != "Right face counterclockwise" {
		t.Errorf("third = %q", got[2].Description)
	}
}

func TestParseLenient(t *testing.T) {
	moves, skipped := ParseLenient("R  U X R'  hello U2")
	if moves.String() != "R U R' U2" {
		t.Errorf("moves = %q", moves.String())
	}
	if len(skipped) != 2 || skipped[0] != "X" || skipped[1] != "hello" {
		t.Errorf("skipped = %v", skipped)
	}

	moves, skipped = ParseLenient("")
	if len(moves) != 0 || len(skipped) != 0 {
		t.Error("empty input should give nothing")
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R R", "R2"},
		{"R R'", ""},
		{"R R R", "R'"},
		{"R2 R2", ""},
		{"R2 R", "R'"},
		{"R U U' R'", ""},
		{"R U R' U'", "R U R' U'"},
		{"R3 R3", "R32"},
		{"R R3", "R R3"},
		{"M M", "M2"},
		{"R2' R22", "R22 R2'"},
	}
	for _, tt := range tests {
		got := Simplify(mustParse(t, tt.in)).String()
		if got != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimplifyKeepsState(t *testing.T) {
	seq := mustParse(t, "R R U U U F' F' F' R2 R")
	a, _ := twisty.NewCube(4)
	b, _ := twisty.NewCube(4)
	_ = a.ApplyMoves(seq)
	_ = b.ApplyMoves(Simplify(seq))
	if !a.Equal(b) {
		t.Error("simplified sequence should reach the same state")
	}
}

func TestIsCancellation(t *testing.T) {
	if !IsCancellation(twisty.RMove, twisty.RPrime) {
		t.Error("R R' should cancel")
	}
	if !IsCancellation(twisty.R2, twisty.R2) {
		t.Error("R2 R2 should cancel")
	}
	if IsCancellation(twisty.RMove, twisty.RMove) {
		t.Error("R R should not cancel")
	}
	if IsCancellation(twisty.RMove, twisty.LPrime) {
		t.Error("R L' are different faces")
	}
}

func TestNormalizeTurn(t *testing.T) {
	tests := map[int]twisty.Turn{0: 0, 1: twisty.CW, 2: twisty.Half, 3: twisty.CCW, 4: 0, 5: twisty.CW, -1: twisty.CCW}
	for q, want := range tests {
		if got := NormalizeTurn(q); got != want {
			t.Errorf("NormalizeTurn(%d) = %v, want %v", q, got, want)
		}
	}
}

func TestToPersonalNotation(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"R", "R up"},
		{"R'", "R down"},
		{"R2", "R up x 2"},
		{"L", "L down"},
		{"U'", "T rotate left"},
		{"D", "B rotate right"},
		{"F'", "F rotate anti-clockwise"},
		{"B2", "Back rotate x 2"},
		{"R3'", "R layer 3 down"},
		{"M", "M: L down"},
	}
	for _, tt := range tests {
		m, err := twisty.ParseMove(tt.token)
		if err != nil {
			t.Fatal(err)
		}
		if got := ToPersonalNotation(m); got != tt.want {
			t.Errorf("ToPersonalNotation(%s) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestFormatPersonalSequence(t *testing.T) {
	got := FormatPersonalSequence(mustParse(t, "R U"))
	if got != "R up, T rotate right" {
		t.Errorf("got %q", got)
	}
	if FormatPersonalSequence(nil) != "" {
		t.Error("empty sequence should format as empty string")
	}
}
