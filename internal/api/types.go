package api

import (
	"time"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/analysis"
	"github.com/SeamusWaldron/twisty/internal/notation"
	"github.com/SeamusWaldron/twisty/internal/session"
)

// stateJSON is the cube as the browser renderer draws it: one grid of
// color names per face, rows top to bottom.
type stateJSON struct {
	Size   int                   `json:"size"`
	Faces  map[string][][]string `json:"faces"`
	Solved bool                  `json:"solved"`
}

func toState(c *twisty.Cube) stateJSON {
	faces := make(map[string][][]string, 6)
	for _, face := range twisty.Faces {
		grid := c.Face(face)
		rows := make([][]string, len(grid))
		for r, row := range grid {
			rows[r] = make([]string, len(row))
			for col, color := range row {
				rows[r][col] = color.Name()
			}
		}
		faces[face.String()] = rows
	}
	return stateJSON{Size: c.Size(), Faces: faces, Solved: c.IsSolved()}
}

type positionJSON struct {
	Face string `json:"face"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

type stepJSON struct {
	Move    string         `json:"move"`
	Changed []positionJSON `json:"changed"`
}

func toStep(s twisty.Step) stepJSON {
	changed := make([]positionJSON, len(s.Changed))
	for i, p := range s.Changed {
		changed[i] = positionJSON{Face: p.Face.String(), Row: p.Row, Col: p.Col}
	}
	return stepJSON{Move: s.Move.Notation(), Changed: changed}
}

type statsJSON struct {
	Count        int     `json:"count"`
	BestMs       int64   `json:"bestMs,omitempty"`
	AverageMs    int64   `json:"averageMs,omitempty"`
	AverageMoves float64 `json:"averageMoves,omitempty"`
}

// sessionRes is returned by every session endpoint.
type sessionRes struct {
	ID        string      `json:"id"`
	Size      int         `json:"size"`
	State     stateJSON   `json:"state"`
	Solved    bool        `json:"solved"`
	MoveCount int         `json:"moveCount"`
	Timer     string      `json:"timer"`
	ElapsedMs int64       `json:"elapsedMs"`
	Rating    string      `json:"rating"`
	Phase     string      `json:"phase"`
	WorkingOn string      `json:"workingOn"`
	Splits    []splitJSON `json:"splits,omitempty"`
}

type splitJSON struct {
	Phase     string `json:"phase"`
	Move      int    `json:"move"`
	ElapsedMs int64  `json:"elapsedMs"`
}

func toSession(id string, s *session.Session) sessionRes {
	state := toState(s.State())
	moves := s.MoveCount()
	current, highest := s.Phase()
	var splits []splitJSON
	for _, sp := range s.Splits() {
		splits = append(splits, splitJSON{Phase: sp.Phase.String(), Move: sp.Move, ElapsedMs: sp.Elapsed.Milliseconds()})
	}
	return sessionRes{
		ID:        id,
		Size:      state.Size,
		State:     state,
		Solved:    state.Solved,
		MoveCount: moves,
		Timer:     s.Timer().String(),
		ElapsedMs: s.Elapsed().Milliseconds(),
		Rating:    session.Rating(moves),
		Phase:     current.String(),
		WorkingOn: highest.Next().DisplayName(),
		Splits:    splits,
	}
}

type createReq struct {
	Size int `json:"size"`
}

type movesReq struct {
	Moves string `json:"moves"`
}

type movesRes struct {
	sessionRes
	Steps []stepJSON `json:"steps"`
}

// moveErrorRes reports the failing token and the state after the moves
// that did apply.
type moveErrorRes struct {
	Error   string     `json:"error"`
	Token   string     `json:"token"`
	Index   int        `json:"index"`
	Session sessionRes `json:"session"`
	Steps   []stepJSON `json:"steps"`
}

type scrambleReq struct {
	Length int     `json:"length"`
	Seed   *uint64 `json:"seed,omitempty"`
}

type scrambleRes struct {
	sessionRes
	Scramble string `json:"scramble"`
}

type resetReq struct {
	Size int `json:"size"`
}

type explainRes struct {
	Moves      []notation.Description `json:"moves"`
	Personal   []string               `json:"personal"`
	Simplified string                 `json:"simplified"`
	Inverse    string                 `json:"inverse"`
	Skipped    []string               `json:"skipped,omitempty"`
	Analysis   *analysis.Report       `json:"analysis"`
}

type errorRes struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func millis(d time.Duration) int64 {
	return d.Milliseconds()
}
