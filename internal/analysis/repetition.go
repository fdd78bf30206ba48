// Package analysis finds wasted motion and repeated triggers in move
// sequences.
package analysis

import (
	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/notation"
)

// Cancellation represents an immediate move cancellation (e.g., R followed by R').
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
}

// MergeOpportunity represents adjacent same-layer moves that could be merged.
type MergeOpportunity struct {
	Index1     int    `json:"index1"`
	Index2     int    `json:"index2"`
	Move1      string `json:"move1"`
	Move2      string `json:"move2"`
	MergedMove string `json:"mergedMove"`
}

// BackAndForthPattern represents alternating moves (e.g., R U R U R U).
type BackAndForthPattern struct {
	StartIndex int      `json:"startIndex"`
	EndIndex   int      `json:"endIndex"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediateCancellations"`
	MergeOpportunities     []MergeOpportunity    `json:"mergeOpportunities"`
	BackAndForthPatterns   []BackAndForthPattern `json:"backAndForthPatterns"`
	TotalWastedMoves       int                   `json:"totalWastedMoves"`
	Efficiency             float64               `json:"efficiency"`
}

// minBackAndForth is the number of AB repetitions worth reporting.
const minBackAndForth = 3

// AnalyzeRepetitions analyzes a move sequence for repetitions and wasted motion.
func AnalyzeRepetitions(moves twisty.Sequence) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		MergeOpportunities:     []MergeOpportunity{},
		BackAndForthPatterns:   []BackAndForthPattern{},
		Efficiency:             CalculateEfficiency(moves, notation.Simplify(moves)),
	}

	for i := 0; i+1 < len(moves); i++ {
		m1, m2 := moves[i], moves[i+1]
		if !m1.SameLayer(m2) {
			continue
		}

		merged, ok := notation.Merge(m1, m2)
		if !ok {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
			})
			report.TotalWastedMoves += 2
			continue
		}

		report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
			Index1:     i,
			Index2:     i + 1,
			Move1:      m1.Notation(),
			Move2:      m2.Notation(),
			MergedMove: merged.Notation(),
		})
		report.TotalWastedMoves++
	}

	report.BackAndForthPatterns = findBackAndForth(moves)
	return report
}

// findBackAndForth finds alternating move patterns like R U R U R U.
func findBackAndForth(moves twisty.Sequence) []BackAndForthPattern {
	patterns := []BackAndForthPattern{}

	i := 0
	for i+3 < len(moves) {
		a, b := moves[i], moves[i+1]
		if a == b {
			i++
			continue
		}

		count := 1
		j := i + 2
		for j+1 < len(moves) && moves[j] == a && moves[j+1] == b {
			count++
			j += 2
		}

		if count >= minBackAndForth {
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.Notation(), b.Notation()},
				Count:      count,
			})
			i = j
		} else {
			i++
		}
	}

	return patterns
}

// CalculateEfficiency calculates the efficiency ratio (optimized/original).
func CalculateEfficiency(original, optimized twisty.Sequence) float64 {
	if len(original) == 0 {
		return 1.0
	}
	return float64(len(optimized)) / float64(len(original))
}
