package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/twisty/internal/config"
	"github.com/SeamusWaldron/twisty/internal/session"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvDefaultSize, "")
	configPath, verbose = "", false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScrambleCommandSeeded(t *testing.T) {
	a, err := runCmd(t, "scramble", "--seed", "7", "--length", "10")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := runCmd(t, "scramble", "--seed", "7", "--length", "10")
	if a != b {
		t.Errorf("seeded scrambles differ: %q vs %q", a, b)
	}
	if got := len(strings.Fields(a)); got != 10 {
		t.Errorf("got %d moves, want 10", got)
	}
}

func TestApplyCommand(t *testing.T) {
	out, err := runCmd(t, "apply", "--plain", "R", "U", "U'", "R'")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "4 moves, solved") {
		t.Errorf("output:\n%s", out)
	}

	out, err = runCmd(t, "apply", "--plain", "-n", "2", "R U R3")
	if err == nil {
		t.Fatal("R3 on a 2x2 should fail")
	}
	if !strings.Contains(out, "Applied 2 of 3 moves") {
		t.Errorf("output:\n%s", out)
	}
}

func TestExplainCommand(t *testing.T) {
	out, err := runCmd(t, "explain", "R R", "bogus")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Right face clockwise", "Simplified: R2", "Wasted:     1 (1 of 2 moves needed)", "Skipped:    bogus"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00.00"},
		{1500 * time.Millisecond, "0:01.50"},
		{61*time.Second + 230*time.Millisecond, "1:01.23"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestNextSize(t *testing.T) {
	if nextSize(2) != 3 || nextSize(4) != 2 || nextSize(7) != 2 {
		t.Error("tab should cycle 2 -> 3 -> 4 -> 2")
	}
}

func newTestModel(t *testing.T) *playModel {
	t.Helper()
	sess, err := session.New(3)
	if err != nil {
		t.Fatal(err)
	}
	return newPlayModel(sess, true, 10)
}

func typeAndEnter(m *playModel, text string) {
	m.input.SetValue(text)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestPlayModelApplyAndUndo(t *testing.T) {
	m := newTestModel(t)
	typeAndEnter(m, "R U")
	if m.sess.MoveCount() != 2 {
		t.Fatalf("MoveCount = %d, want 2", m.sess.MoveCount())
	}
	if m.input.Value() != "" {
		t.Error("input should clear after a good sequence")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.sess.History().String(); got != "R" {
		t.Errorf("History after undo = %q", got)
	}

	typeAndEnter(m, "F Q")
	if m.err == nil {
		t.Error("bad token should set an error")
	}
	if m.input.Value() != "F Q" {
		t.Error("input should be kept after an error")
	}
}

func TestPlayModelPlayback(t *testing.T) {
	m := newTestModel(t)
	typeAndEnter(m, "R U F")
	live := m.sess.State()

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.playback == nil || m.playback.Position() != 2 {
		t.Fatal("left should enter playback one move back")
	}
	if m.playback.State().Equal(live) {
		t.Error("playback should show an earlier position")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.playback != nil {
		t.Error("stepping to the end should leave playback")
	}
	if !m.sess.State().Equal(live) {
		t.Error("playback must not change the live cube")
	}
}

func TestPlayModelResetAndSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.sess.IsSolved() {
		t.Error("ctrl+s should scramble")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.sess.IsSolved() {
		t.Error("ctrl+r should reset")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.sess.Size() != 4 {
		t.Errorf("tab from 3 should give 4, got %d", m.sess.Size())
	}
	if !strings.Contains(m.View(), "twisty 4x4") {
		t.Error("view should show the new size")
	}
}

func TestConfigSetAndShow(t *testing.T) {
	home := t.TempDir()
	path := home + "/prefs.json"

	out, err := runCmd(t, "--config", path, "config", "set", "default_size", "4")
	if err != nil {
		t.Fatalf("config set: %v\n%s", err, out)
	}
	out, err = runCmd(t, "--config", path, "config")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"default_size": 4`) {
		t.Errorf("saved size not shown:\n%s", out)
	}

	if _, err := runCmd(t, "--config", path, "config", "set", "default_size", "1"); err == nil {
		t.Error("size 1 should be rejected")
	}
	if _, err := runCmd(t, "--config", path, "config", "set", "colour", "red"); err == nil {
		t.Error("unknown key should be rejected")
	}
}
