package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/render"
)

var applySize int

var applyCmd = &cobra.Command{
	Use:   "apply MOVES...",
	Short: "Apply moves to a solved cube and print it",
	Long: `Apply a move sequence to a solved cube and print the result.

Moves use standard notation: R L U D F B, with ' for counter-clockwise
and 2 for a half turn. Inner layers 2 through N-2 take a number (R2',
L32) on cubes of size 4 and up. M E S turn the middle slice on odd cubes.

Moves may be given as separate arguments or as one quoted string. The
first bad move stops the sequence; the cube after the moves before it is
still printed.`,
	Example: `  twisty apply "R U R' U'"
  twisty apply -n 5 R3 U2 R3'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().IntVarP(&applySize, "size", "n", 0, "Cube size (default from config)")
	applyCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the cube without colors")
}

func runApply(cmd *cobra.Command, args []string) error {
	size := orDefault(applySize, cfg.DefaultSize)
	tokens := strings.Fields(strings.Join(args, " "))

	state, err := twisty.NewCube(size)
	if err != nil {
		return err
	}
	out, applyErr := twisty.ApplySequence(state, tokens)

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, render.Net(out, render.Options{Plain: plainOutput}))
	fmt.Fprintln(w)

	if applyErr != nil {
		var ne *twisty.NotationError
		if errors.As(applyErr, &ne) {
			fmt.Fprintf(w, "Applied %d of %d moves\n", ne.Index, len(tokens))
		}
		return applyErr
	}

	status := "not solved"
	if out.IsSolved() {
		status = "solved"
	}
	fmt.Fprintf(w, "%d moves, %s\n", len(tokens), status)
	return nil
}
