// Package twisty models N×N×N twisty puzzles (2×2, 3×3, 4×4 and larger).
//
// # Features
//
//   - Facelet model for any supported size
//   - Move notation parsing with inner layers and middle slices
//   - Pure move and sequence application
//   - Solved-state detection
//   - Reproducible scrambles from an injected random source
//
// # Quick Start
//
//	cube, err := twisty.NewCube(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cube, err = twisty.ApplySequence(cube, strings.Fields("R U R' U'"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Engine
//
// Engine keeps the state of one session and reports which facelets each
// move touched:
//
//	e, _ := twisty.NewEngine(4)
//	step, err := e.ApplyMove("R2'")
//	fmt.Println(len(step.Changed), "facelets moved")
//
// # Notation
//
// Tokens are a face letter (R L U D F B), an optional layer number counted
// from that face and an optional modifier: ' for counter-clockwise, 2 for
// a half turn. Layers run from 2 (the first inner layer) to N-2, so 2x2
// and 3x3 cubes take no layer numbers; deeper slices are named from the
// opposite face. A trailing 2 is always the modifier. M, E and S turn the
// middle slice of odd-sized cubes.
//
//	R      Right face clockwise
//	R'     Right face counter-clockwise
//	R2     Right face 180
//	R2'    second layer from the right, counter-clockwise
//	R22    second layer from the right, 180
//	M      middle slice, following L
//
// # Errors
//
// Bad tokens produce a *NotationError wrapping ErrInvalidNotation or
// ErrUnsupportedLayer. Layer errors match ErrInvalidNotation too, so callers
// that only care whether a token applies can check the one sentinel. Bad
// sizes produce a *SizeError matching ErrUnsupportedSize.
// A failing call never changes the state it was given.
package twisty
