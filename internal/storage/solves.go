package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a recorded solve in the database.
type Solve struct {
	SolveID       string
	CreatedAt     time.Time
	Scramble      string
	Solution      string
	ScrambleMoves int
	SolutionMoves int
	DurationMs    int64
	UsedFallback  bool
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve and returns its ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	fallback := 0
	if s.UsedFallback {
		fallback = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution, scramble_moves, solution_moves, duration_ms, used_fallback)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), s.Scramble, s.Solution,
		s.ScrambleMoves, s.SolutionMoves, s.DurationMs, fallback)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, scramble_moves, solution_moves, duration_ms, used_fallback
		FROM solves WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("solve not found: %s", solveID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]*Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, scramble_moves, solution_moves, duration_ms, used_fallback
		FROM solves ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []*Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, s)
	}
	return solves, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (*Solve, error) {
	var s Solve
	var createdAtStr string
	var fallback int

	err := sc.Scan(&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution,
		&s.ScrambleMoves, &s.SolutionMoves, &s.DurationMs, &fallback)
	if err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	s.CreatedAt = createdAt
	s.UsedFallback = fallback != 0
	return &s, nil
}
