package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/constraint-framework/sable/pkg/csp"
)

// ErrIncomplete is returned when the context is cancelled before a solution
// could be found.
var ErrIncomplete = errors.New("cancelled before a solution could be found")

// ErrLoopDetected is returned in loop-detection mode when the search
// revisits an assignment it already attempted. It indicates an engine
// defect, not a property of the problem.
var ErrLoopDetected = errors.New("search revisited an already-attempted assignment")

// DegreeOrientation selects which neighbors count towards a variable's
// degree when breaking MRV ties.
type DegreeOrientation int

const (
	// CountAssigned scores a variable by how many of its constraint
	// neighbors already hold a value.
	CountAssigned DegreeOrientation = iota
	// CountUnassigned scores a variable by how many of its constraint
	// neighbors are still awaiting a value.
	CountUnassigned
)

// Solver runs a recursive backtracking search over a Problem. Its
// configuration is fixed at construction: one optional propagation strategy
// (forward checking or arc consistency, never both), optional
// variable-ordering heuristics, and optional debug collaborators.
type Solver[V comparable, D comparable] struct {
	problem     *csp.Problem[V, D]
	forward     bool
	ac3         bool
	mrv         bool
	degree      bool
	orientation DegreeOrientation
	tracer      Tracer[V, D]
	loop        *LoopDetector[V, D]
}

// Option configures a Solver.
type Option[V comparable, D comparable] func(s *Solver[V, D]) error

// WithForwardChecking prunes the domains of a variable's unassigned
// neighbors immediately after each assignment. Mutually exclusive with
// WithAC3.
func WithForwardChecking[V comparable, D comparable]() Option[V, D] {
	return func(s *Solver[V, D]) error {
		s.forward = true
		return nil
	}
}

// WithAC3 propagates pruning transitively via a work queue of directed
// variable pairs. Mutually exclusive with WithForwardChecking.
//
// A propagation wipeout abandons every remaining candidate value of the
// variable under trial, not just the current one, so a satisfiable problem
// may be reported not satisfiable in this mode.
func WithAC3[V comparable, D comparable]() Option[V, D] {
	return func(s *Solver[V, D]) error {
		s.ac3 = true
		return nil
	}
}

// WithMRV selects the unassigned variable with the fewest remaining
// candidate values instead of the first in declaration order.
func WithMRV[V comparable, D comparable]() Option[V, D] {
	return func(s *Solver[V, D]) error {
		s.mrv = true
		return nil
	}
}

// WithDegreeTieBreak resolves exact MRV ties in favor of the variable with
// the higher degree under the given orientation. Requires WithMRV.
func WithDegreeTieBreak[V comparable, D comparable](orientation DegreeOrientation) Option[V, D] {
	return func(s *Solver[V, D]) error {
		s.degree = true
		s.orientation = orientation
		return nil
	}
}

// WithTracer installs a tracer that observes every search frame.
func WithTracer[V comparable, D comparable](t Tracer[V, D]) Option[V, D] {
	return func(s *Solver[V, D]) error {
		s.tracer = t
		return nil
	}
}

// WithLoopDetection aborts the search with ErrLoopDetected if an identical
// assignment snapshot is ever attempted twice. The detector keeps its
// history across Solve calls, so a reused solver reports the second run's
// first trial as a repeat; give each Solve its own detector.
func WithLoopDetection[V comparable, D comparable](detector *LoopDetector[V, D]) Option[V, D] {
	return func(s *Solver[V, D]) error {
		s.loop = detector
		return nil
	}
}

// NewSolver builds a Solver for the given problem. Configuration conflicts
// are construction errors.
func NewSolver[V comparable, D comparable](problem *csp.Problem[V, D], options ...Option[V, D]) (*Solver[V, D], error) {
	if problem == nil {
		return nil, errors.New("problem must not be nil")
	}
	s := &Solver[V, D]{problem: problem}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.forward && s.ac3 {
		return nil, errors.New("forward checking and arc consistency are mutually exclusive")
	}
	if s.degree && !s.mrv {
		return nil, errors.New("the degree tie-break requires minimum-remaining-values")
	}
	if s.tracer == nil {
		s.tracer = DefaultTracer[V, D]{}
	}
	return s, nil
}

// Solve searches for a complete assignment satisfying every constraint of
// the problem. It returns csp.ErrNotSatisfiable when the search space is
// exhausted and ErrIncomplete when ctx is cancelled first. The problem is
// never mutated; repeated calls are independent.
func (s *Solver[V, D]) Solve(ctx context.Context) (csp.Assignment[V, D], error) {
	domains := s.problem.Domains()
	assignment := s.problem.InitialAssignment()
	if assignment == nil {
		assignment = csp.Assignment[V, D]{}
	}

	// Priming pass: propagate each pre-assigned variable once before the
	// search starts. Walks the declared variable order so runs are
	// reproducible.
	for _, v := range s.problem.Variables() {
		if _, ok := assignment[v]; !ok {
			continue
		}
		switch {
		case s.forward:
			s.forwardCheck(v, assignment, domains)
		case s.ac3:
			s.ac3Check(v, assignment, domains)
		}
	}

	result, err := s.search(ctx, domains, assignment)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, csp.ErrNotSatisfiable
	}

	// Re-validate the result against every variable's constraints before
	// handing it back.
	for _, v := range s.problem.Variables() {
		if !s.problem.Consistent(v, result) {
			return nil, fmt.Errorf("internal error: solution violates a constraint on %v", v)
		}
	}
	return result, nil
}
