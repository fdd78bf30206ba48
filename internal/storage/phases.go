package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// PhaseMark records when a solve first reached a phase.
type PhaseMark struct {
	PhaseMarkID int64
	SolveID     string
	PhaseKey    string
	MoveIndex   int // moves made when the phase was reached
	Elapsed     time.Duration
}

// PhaseSegment is the stretch of a solve spent working towards one phase.
type PhaseSegment struct {
	PhaseKey  string
	MoveCount int
	Duration  time.Duration
}

// PhaseRepository provides CRUD operations for phase marks.
type PhaseRepository struct {
	db *DB
}

// NewPhaseRepository creates a new phase repository.
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// CreatePhaseMarks stores the marks of one solve.
func (r *PhaseRepository) CreatePhaseMarks(solveID string, marks []PhaseMark) error {
	if len(marks) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO phase_marks (solve_id, phase_key, move_index, elapsed_ms)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare phase mark insert: %w", err)
		}
		defer stmt.Close()

		for _, m := range marks {
			if _, err := stmt.Exec(solveID, m.PhaseKey, m.MoveIndex, m.Elapsed.Milliseconds()); err != nil {
				return fmt.Errorf("failed to create phase mark %s: %w", m.PhaseKey, err)
			}
		}
		return nil
	})
}

// GetPhaseMarks retrieves all phase marks for a solve in the order reached.
func (r *PhaseRepository) GetPhaseMarks(solveID string) ([]PhaseMark, error) {
	rows, err := r.db.Query(`
		SELECT phase_mark_id, solve_id, phase_key, move_index, elapsed_ms
		FROM phase_marks
		WHERE solve_id = ?
		ORDER BY move_index, phase_mark_id
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase marks: %w", err)
	}
	defer rows.Close()

	var marks []PhaseMark
	for rows.Next() {
		var m PhaseMark
		var elapsedMs int64
		if err := rows.Scan(&m.PhaseMarkID, &m.SolveID, &m.PhaseKey, &m.MoveIndex, &elapsedMs); err != nil {
			return nil, fmt.Errorf("failed to scan phase mark: %w", err)
		}
		m.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		marks = append(marks, m)
	}

	return marks, rows.Err()
}

// GetPhaseSegments derives per-phase move counts and durations from the
// marks of a solve. Each segment ends at its phase's mark and starts at
// the previous one, or at the first move.
func (r *PhaseRepository) GetPhaseSegments(solveID string) ([]PhaseSegment, error) {
	marks, err := r.GetPhaseMarks(solveID)
	if err != nil {
		return nil, err
	}
	return Segments(marks), nil
}

// Segments converts ordered marks into segments.
func Segments(marks []PhaseMark) []PhaseSegment {
	segments := make([]PhaseSegment, 0, len(marks))
	var prevMove int
	var prevElapsed time.Duration
	for _, m := range marks {
		segments = append(segments, PhaseSegment{
			PhaseKey:  m.PhaseKey,
			MoveCount: m.MoveIndex - prevMove,
			Duration:  m.Elapsed - prevElapsed,
		})
		prevMove, prevElapsed = m.MoveIndex, m.Elapsed
	}
	return segments
}
