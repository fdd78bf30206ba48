package analysis

import (
	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/notation"
)

// Trigger lengths mined by Analyze. Four covers R U R' U' and its kin.
const (
	TriggerMinN = 3
	TriggerMaxN = 8
	TriggerTopK = 3
)

// Report is the combined analysis of one sequence.
type Report struct {
	Moves       int               `json:"moves"`
	Simplified  int               `json:"simplified"`
	Repetitions *RepetitionReport `json:"repetitions"`
	Triggers    map[int][]NGram   `json:"triggers,omitempty"`
}

// Analyze runs repetition analysis and trigger mining over moves.
func Analyze(moves twisty.Sequence) *Report {
	return &Report{
		Moves:       len(moves),
		Simplified:  len(notation.Simplify(moves)),
		Repetitions: AnalyzeRepetitions(moves),
		Triggers:    MineNGrams(moves, TriggerMinN, TriggerMaxN, TriggerTopK),
	}
}

// Longest returns the most repeated trigger among the longest lengths
// found, or false when nothing repeats.
func (r *Report) Longest() (NGram, bool) {
	for n := TriggerMaxN; n >= TriggerMinN; n-- {
		if ngrams := r.Triggers[n]; len(ngrams) > 0 {
			return ngrams[0], true
		}
	}
	return NGram{}, false
}
