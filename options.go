package gocube

// SolverOption configures Solver behavior.
type SolverOption func(*Solver)

// WithMaxDepth sets the deepest bound iterative deepening will try.
// Values below 1 are ignored. The default is DefaultMaxDepth (20);
// lowering it trades solvable scramble depth for a faster give-up,
// after which Solve falls back to inverting the recorded history.
func WithMaxDepth(depth int) SolverOption {
	return func(s *Solver) {
		if depth >= 1 {
			s.maxDepth = depth
		}
	}
}
