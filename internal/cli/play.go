package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/analysis"
	"github.com/SeamusWaldron/twisty/internal/notation"
	"github.com/SeamusWaldron/twisty/internal/render"
	"github.com/SeamusWaldron/twisty/internal/session"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

var playSize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI: type moves, watch the cube change and race
the timer.

Keyboard shortcuts:
  enter   - Apply the typed moves
  ctrl+s  - Scramble
  ctrl+r  - Reset to solved
  ctrl+z  - Undo the last move
  tab     - Cycle cube size (2, 3, 4)
  ←/→     - Step back and forward through the moves since the scramble
  esc     - Quit

The timer starts with the first move after a scramble and stops when the
cube is solved.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playSize, "size", "n", 0, "Cube size (default from config)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// sizes cycled by tab
var playSizes = []int{2, 3, 4}

// Messages
type tickMsg time.Time

// Model
type playModel struct {
	sess  *session.Session
	input textinput.Model

	// start is the cube right after the last reset or scramble; with the
	// session history it rebuilds any earlier position for playback.
	start    *twisty.Cube
	playback *session.Playback

	lastStep *twisty.Step
	message  string
	err      error
	beginner bool
	length   int
	quitting bool
}

func newPlayModel(sess *session.Session, beginner bool, length int) *playModel {
	ti := textinput.New()
	ti.Placeholder = "R U R' U'"
	ti.Prompt = "moves: "
	ti.Width = 40
	ti.Focus()

	return &playModel{
		sess:     sess,
		input:    ti,
		start:    sess.State(),
		beginner: beginner,
		length:   length,
	}
}

func (m *playModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.applyInput()
			return m, nil
		case "ctrl+s":
			m.scramble()
			return m, nil
		case "ctrl+r":
			m.reset(0)
			return m, nil
		case "ctrl+z":
			m.undo()
			return m, nil
		case "tab":
			m.reset(nextSize(m.sess.Size()))
			return m, nil
		case "left":
			m.stepBack()
			return m, nil
		case "right":
			m.stepForward()
			return m, nil
		}

	case tickMsg:
		return m, tickCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) applyInput() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	m.playback = nil

	steps, err := m.sess.ApplySequence(strings.Fields(text))
	if len(steps) > 0 {
		last := steps[len(steps)-1]
		m.lastStep = &last
		m.message = m.describe(last.Move)
	}
	m.err = err
	if err == nil {
		m.input.SetValue("")
	}
	if m.sess.Timer() == session.TimerStopped && m.sess.IsSolved() {
		m.message = fmt.Sprintf("Solved in %d moves (%s)", m.sess.MoveCount(), session.Rating(m.sess.MoveCount()))
		if wasted := analysis.AnalyzeRepetitions(m.sess.History()).TotalWastedMoves; wasted > 0 {
			m.message += fmt.Sprintf(", %d wasted", wasted)
		}
	}
}

func (m *playModel) scramble() {
	seq, err := m.sess.ScrambleCube(m.length, twisty.NewSource(rand.Uint64()))
	if err != nil {
		m.err = err
		return
	}
	m.afterReset()
	m.message = "Scramble: " + seq.String()
}

func (m *playModel) reset(size int) {
	if err := m.sess.Reset(size); err != nil {
		m.err = err
		return
	}
	m.afterReset()
	m.message = fmt.Sprintf("Reset to a solved %dx%d", m.sess.Size(), m.sess.Size())
}

func (m *playModel) afterReset() {
	m.start = m.sess.State()
	m.playback = nil
	m.lastStep = nil
	m.err = nil
}

func (m *playModel) undo() {
	m.playback = nil
	step, err := m.sess.Undo()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.lastStep = &step
	m.message = "Undo: " + step.Move.Notation()
}

// stepBack enters playback at the current position on first use.
func (m *playModel) stepBack() {
	if m.playback == nil {
		p, err := session.NewPlayback(m.start, m.sess.History())
		if err != nil {
			m.err = err
			return
		}
		p.Seek(p.Len())
		m.playback = p
	}
	if mv, ok := m.playback.Back(); ok {
		m.message = fmt.Sprintf("Step %d/%d: undid %s", m.playback.Position(), m.playback.Len(), mv)
	}
}

func (m *playModel) stepForward() {
	if m.playback == nil {
		return
	}
	if mv, ok := m.playback.Forward(); ok {
		m.message = fmt.Sprintf("Step %d/%d: %s", m.playback.Position(), m.playback.Len(), m.describe(mv))
	}
	if m.playback.Position() == m.playback.Len() {
		m.playback = nil
	}
}

func (m *playModel) describe(mv twisty.Move) string {
	d := notation.Describe(mv)
	if m.beginner && d.Tip != "" {
		return fmt.Sprintf("%s: %s (%s)", d.Move, d.Description, d.Tip)
	}
	return fmt.Sprintf("%s: %s", d.Move, d.Description)
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	// Title
	size := m.sess.Size()
	b.WriteString(titleStyle.Render(fmt.Sprintf("twisty %dx%d", size, size)))
	b.WriteString("\n\n")

	// Cube
	state := m.sess.State()
	var highlight []twisty.Position
	if m.playback != nil {
		state = m.playback.State()
	} else if m.lastStep != nil {
		highlight = m.lastStep.Changed
	}
	b.WriteString(render.Net(state, render.Options{Highlight: highlight}))
	b.WriteString("\n\n")

	// Timer and counter
	b.WriteString(timerStyle.Render(formatElapsed(m.sess.Elapsed())))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  moves: %d  timer: %s", m.sess.MoveCount(), m.sess.Timer())))
	if st, err := m.sess.Stats(); err == nil && st.Count > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  best: %s  avg: %s  solves: %d",
			formatElapsed(st.Best), formatElapsed(st.Average), st.Count)))
	}
	b.WriteString("\n")
	if _, highest := m.sess.Phase(); m.beginner && highest != twisty.PhaseSolved {
		b.WriteString(statusStyle.Render("Working on: "))
		b.WriteString(timerStyle.Render(highest.Next().DisplayName()))
		b.WriteString("\n")
	}
	if m.sess.Timer() == session.TimerStopped {
		for _, sp := range m.sess.Splits() {
			b.WriteString(statusStyle.Render(fmt.Sprintf("  %-26s move %3d  %s", sp.Phase.DisplayName(), sp.Move, formatElapsed(sp.Elapsed))))
			b.WriteString("\n")
		}
	}
	if m.playback != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("playback %d/%d", m.playback.Position(), m.playback.Len())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Input
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(moveStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter apply • ctrl+s scramble • ctrl+r reset • ctrl+z undo • tab size • ←/→ playback • esc quit"))
	b.WriteString("\n")
	return b.String()
}

// formatElapsed renders a duration as m:ss.cc.
func formatElapsed(d time.Duration) string {
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, (cs/100)%60, cs%100)
}

func nextSize(current int) int {
	for i, n := range playSizes {
		if n == current {
			return playSizes[(i+1)%len(playSizes)]
		}
	}
	return playSizes[0]
}

func runPlay(cmd *cobra.Command, args []string) error {
	size := orDefault(playSize, cfg.DefaultSize)

	db, err := storage.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	sess, err := session.New(size,
		session.WithStore(db),
		session.WithLogger(log),
		session.WithEngineOptions(engineOptions(size)...),
	)
	if err != nil {
		return err
	}
	log.Debug("play session", zap.String("id", sess.ID()), zap.Int("size", size))

	p := tea.NewProgram(newPlayModel(sess, cfg.BeginnerMode, cfg.ScrambleLength), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
