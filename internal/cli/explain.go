package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty/internal/analysis"
	"github.com/SeamusWaldron/twisty/internal/notation"
)

var (
	explainPersonal bool
	explainTips     bool
)

var explainCmd = &cobra.Command{
	Use:   "explain MOVES...",
	Short: "Describe a move sequence in words",
	Long: `Describe each move of a sequence in plain words, with beginner tips.

Unknown tokens are reported and skipped. The simplified form merges
adjacent turns of the same layer, and the inverse undoes the sequence.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().BoolVarP(&explainPersonal, "personal", "p", false, "Use spoken notation (R up, T rotate right)")
	explainCmd.Flags().BoolVar(&explainTips, "tips", false, "Show beginner tips (default from config)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	moves, skipped := notation.ParseLenient(strings.Join(args, " "))
	tips := cfg.BeginnerMode || explainTips
	w := cmd.OutOrStdout()

	for i, d := range notation.DescribeSequence(moves) {
		text := d.Description
		if explainPersonal {
			text = notation.ToPersonalNotation(moves[i])
		}
		fmt.Fprintf(w, "%3d. %-5s %s\n", i+1, d.Move, text)
		if tips && d.Tip != "" {
			fmt.Fprintf(w, "          tip: %s\n", d.Tip)
		}
	}

	if len(moves) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Simplified: %s\n", notation.Simplify(moves))
		fmt.Fprintf(w, "Inverse:    %s\n", moves.Inverse())

		report := analysis.Analyze(moves)
		if wasted := report.Repetitions.TotalWastedMoves; wasted > 0 {
			fmt.Fprintf(w, "Wasted:     %d (%d of %d moves needed)\n", wasted, report.Simplified, report.Moves)
		}
		if ng, ok := report.Longest(); ok {
			fmt.Fprintf(w, "Repeated:   %s (x%d)\n", strings.Join(ng.Sequence, " "), ng.Count)
		}
	}
	if len(skipped) > 0 {
		fmt.Fprintf(w, "Skipped:    %s\n", strings.Join(skipped, " "))
	}
	return nil
}
