package analysis

import (
	"sort"

	"github.com/SeamusWaldron/twisty"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N        int      `json:"n"`
	Sequence []string `json:"sequence"`
	Count    int      `json:"count"`
	Starts   []int    `json:"starts"`
}

// maxOccurrences caps the start indexes kept per n-gram.
const maxOccurrences = 10

// RollingHash implements Rabin-Karp rolling hash over move tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint64
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1_000_003,
		n:      n,
		window: make([]uint64, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint64) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + token
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-old*rh.pow)*rh.base + token

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// token packs a move into a hashable integer. Layers stay below 2^16.
func token(m twisty.Move) uint64 {
	return uint64(m.Face)<<32 | uint64(m.Layer)<<16 | uint64(m.Slice)<<4 | uint64(m.Turn+1)
}

type ngramEntry struct {
	start  int
	count  int
	starts []int
}

// MineNGrams finds the top-K most frequent n-grams for each n in [minN, maxN].
// Only n-grams seen at least twice are reported; overlapping occurrences count.
func MineNGrams(moves twisty.Sequence, minN, maxN, topK int) map[int][]NGram {
	report := make(map[int][]NGram)
	if minN < 1 {
		minN = 1
	}

	for n := minN; n <= maxN && n <= len(moves); n++ {
		if ngrams := mineNGramsForN(moves, n, topK); len(ngrams) > 0 {
			report[n] = ngrams
		}
	}

	return report
}

func mineNGramsForN(moves twisty.Sequence, n, topK int) []NGram {
	buckets := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, m := range moves {
		rh.Roll(token(m))
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		var found *ngramEntry
		// Verify the window against each candidate to handle hash collisions.
		for _, entry := range buckets[rh.Hash()] {
			if equalRun(moves, entry.start, start, n) {
				found = entry
				break
			}
		}

		if found == nil {
			found = &ngramEntry{start: start}
			buckets[rh.Hash()] = append(buckets[rh.Hash()], found)
			order = append(order, found)
		}
		found.count++
		if len(found.starts) < maxOccurrences {
			found.starts = append(found.starts, start)
		}
	}

	entries := make([]*ngramEntry, 0, len(order))
	for _, entry := range order {
		if entry.count >= 2 {
			entries = append(entries, entry)
		}
	}

	// Stable on first appearance so ties read left to right.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if topK > 0 && len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		seq := moves[entry.start : entry.start+n]
		result[i] = NGram{
			N:        n,
			Sequence: seq.Tokens(),
			Count:    entry.count,
			Starts:   entry.starts,
		}
	}

	return result
}

func equalRun(moves twisty.Sequence, a, b, n int) bool {
	for k := 0; k < n; k++ {
		if moves[a+k] != moves[b+k] {
			return false
		}
	}
	return true
}
