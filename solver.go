package gocube

import "strings"

// DefaultMaxDepth is the deepest bound iterative deepening will escalate to.
const DefaultMaxDepth = 20

// allMoves lists the 18 possible moves in the fixed order the search
// branches over: face order U, D, F, B, R, L; turn order CW, CCW, 180.
var allMoves = []Move{
	{FaceU, CW}, {FaceU, CCW}, {FaceU, Double},
	{FaceD, CW}, {FaceD, CCW}, {FaceD, Double},
	{FaceF, CW}, {FaceF, CCW}, {FaceF, Double},
	{FaceB, CW}, {FaceB, CCW}, {FaceB, Double},
	{FaceR, CW}, {FaceR, CCW}, {FaceR, Double},
	{FaceL, CW}, {FaceL, CCW}, {FaceL, Double},
}

// Solver finds move sequences that return a cube to a solved state using
// iterative deepening depth-first search. It never mutates the cube it is
// given; every branch of the search works on its own clone.
//
// The search is a best-effort bounded search, not an optimal solver: the
// first solution found at the shallowest depth wins, and deeply scrambled
// cubes can exceed the depth limit. When that happens Solve falls back to
// inverting the cube's recorded move history.
type Solver struct {
	maxDepth int
}

// NewSolver creates a solver with the given options.
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solution bundles a solve result with its step breakdown.
type Solution struct {
	Moves     string   // Space-separated notation, "" when nothing to do
	Steps     []string // Individual move tokens in order
	MoveCount int      // len(Steps)
}

// Solve returns a move sequence that solves the cube, as a space-separated
// notation string. An already-solved cube returns "" without searching.
//
// If no solution is found within the depth limit, the inverse of the cube's
// recorded history is returned instead; with no history either, Solve
// returns "". A missing solution is a value, never a panic or error.
func (s *Solver) Solve(c *Cube) string {
	if c.IsSolved() {
		return ""
	}

	for depth := 1; depth <= s.maxDepth; depth++ {
		if moves, ok := s.search(c.Clone(), depth, nil, Move{}); ok {
			return Optimize(FormatMoves(moves))
		}
	}

	// Fallback: history is append-only and move inversion is exact, so
	// undoing the recorded moves always restores the starting state.
	if len(c.History) > 0 {
		return FormatMoves(InverseMoves(c.History))
	}
	return ""
}

// SolveWithSteps solves the cube and returns the solution together with
// its individual steps and move count.
func (s *Solver) SolveWithSteps(c *Cube) Solution {
	moves := s.Solve(c)
	steps := strings.Fields(moves)
	return Solution{
		Moves:     moves,
		Steps:     steps,
		MoveCount: len(steps),
	}
}

// search runs a depth-limited depth-first search. acc carries the moves
// applied so far; last is the zero Move at the root, which matches no face.
func (s *Solver) search(c *Cube, depth int, acc []Move, last Move) ([]Move, bool) {
	if depth == 0 {
		if c.IsSolved() {
			return acc, true
		}
		return nil, false
	}

	// A single move repaints at most 12 facelets, so a state with more
	// than 12*depth facelets off their solved color cannot be finished
	// within the remaining budget.
	if wrongFacelets(c)/12 > depth {
		return nil, false
	}

	for _, m := range allMoves {
		if redundant(last, m) {
			continue
		}
		next := c.Clone()
		next.MoveFace(moveFaceToCubeFace(m.Face), int(m.Turn))
		// Full slice expression keeps siblings from sharing the
		// backing array when they extend acc.
		if moves, ok := s.search(next, depth-1, append(acc[:len(acc):len(acc)], m), m); ok {
			return moves, true
		}
	}
	return nil, false
}

// redundant reports whether m is pointless directly after last: a repeat of
// the same face should have been a single combined turn, and opposite-face
// turns commute, so only one ordering (lower face letter first) is explored.
func redundant(last, m Move) bool {
	if last.Face == "" {
		return false
	}
	if m.Face == last.Face {
		return true
	}
	if m.Face == last.Face.Opposite() && m.Face > last.Face {
		return true
	}
	return false
}

// wrongFacelets counts facelets that differ from their face's fixed solved
// color. This is an absolute comparison against the standard assignment,
// unlike IsSolved's per-face uniformity test. The asymmetry is deliberate:
// states with uniform but permuted faces are unreachable by legal moves, and
// unifying the two checks would change which branches the search prunes.
func wrongFacelets(c *Cube) int {
	wrong := 0
	for face := CubeFace(0); face < 6; face++ {
		want := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != want {
				wrong++
			}
		}
	}
	return wrong
}

// Solve is a convenience wrapper that solves the cube with a default solver.
func Solve(c *Cube) string {
	return NewSolver().Solve(c)
}
