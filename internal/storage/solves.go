package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/twisty"
)

// Solve is a completed solve: the cube went from scrambled to solved.
type Solve struct {
	SolveID      string
	SessionID    string
	Size         int
	ScrambleText *string
	MoveCount    int
	Duration     time.Duration
	EndedAt      time.Time
}

// Stats summarises the solves of a session.
type Stats struct {
	Count        int
	Best         time.Duration
	Average      time.Duration
	AverageMoves float64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Record stores a completed solve and its moves in one transaction and
// returns the new solve ID.
func (r *SolveRepository) Record(sessionID string, size int, scramble string, moves twisty.Sequence, duration time.Duration) (string, error) {
	id := uuid.New().String()
	endedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solves (solve_id, session_id, size, scramble_text, move_count, duration_ms, ended_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, sessionID, size, scramblePtr, len(moves), duration.Milliseconds(), endedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}
		return insertMoves(tx, id, moves)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, session_id, size, scramble_text, move_count, duration_ms, ended_at
		FROM solves
		WHERE solve_id = ?
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	defer rows.Close()

	solves, err := scanSolves(rows)
	if err != nil {
		return nil, err
	}
	if len(solves) == 0 {
		return nil, ErrNotFound
	}
	return &solves[0], nil
}

// List retrieves the solves of a session, most recent first.
func (r *SolveRepository) List(sessionID string, limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, session_id, size, scramble_text, move_count, duration_ms, ended_at
		FROM solves
		WHERE session_id = ?
		ORDER BY ended_at DESC
		LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// Stats returns the count, best and average time and average move count
// of a session's solves. A session with no solves has zero Stats.
func (r *SolveRepository) Stats(sessionID string) (Stats, error) {
	var st Stats
	var best, avg sql.NullFloat64
	var avgMoves sql.NullFloat64

	err := r.db.QueryRow(`
		SELECT COUNT(*), MIN(duration_ms), AVG(duration_ms), AVG(move_count)
		FROM solves
		WHERE session_id = ?
	`, sessionID).Scan(&st.Count, &best, &avg, &avgMoves)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	if best.Valid {
		st.Best = time.Duration(best.Float64) * time.Millisecond
	}
	if avg.Valid {
		st.Average = time.Duration(avg.Float64 * float64(time.Millisecond))
	}
	if avgMoves.Valid {
		st.AverageMoves = avgMoves.Float64
	}
	return st, nil
}

// Moves returns the recorded moves of a solve in order.
func (r *SolveRepository) Moves(solveID string) (twisty.Sequence, error) {
	rows, err := r.db.Query(`
		SELECT notation FROM moves
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves twisty.Sequence
	for rows.Next() {
		var notation string
		if err := rows.Scan(&notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m, err := twisty.ParseMove(notation)
		if err != nil {
			return nil, fmt.Errorf("stored move %q: %w", notation, err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

func insertMoves(tx *sql.Tx, solveID string, moves twisty.Sequence) error {
	stmt, err := tx.Prepare(`
		INSERT INTO moves (solve_id, move_index, notation, face, layer, turn)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare move insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range moves {
		if _, err := stmt.Exec(solveID, i, m.Notation(), m.Face.String(), m.Layer, int(m.Turn)); err != nil {
			return fmt.Errorf("failed to insert move %d: %w", i, err)
		}
	}
	return nil
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	var solves []Solve
	for rows.Next() {
		var s Solve
		var durationMs int64
		var endedAtStr string

		err := rows.Scan(&s.SolveID, &s.SessionID, &s.Size, &s.ScrambleText, &s.MoveCount, &durationMs, &endedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.Duration = time.Duration(durationMs) * time.Millisecond
		s.EndedAt, _ = time.Parse(time.RFC3339Nano, endedAtStr)
		solves = append(solves, s)
	}
	return solves, rows.Err()
}
