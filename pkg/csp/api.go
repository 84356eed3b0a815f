package csp

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrNotSatisfiable is returned by a solver when the search space was
// exhausted without finding a complete assignment. It is a legitimate
// outcome, distinct from problem-construction errors.
var ErrNotSatisfiable = errors.New("constraints not satisfiable")

// Assignment is a partial mapping from variables to chosen values. Search
// never removes keys from an assignment; backtracking abandons a branch's
// clone instead.
type Assignment[V comparable, D comparable] map[V]D

// Clone returns an independent copy of the assignment.
func (a Assignment[V, D]) Clone() Assignment[V, D] {
	return maps.Clone(a)
}

// Domains maps every variable to its ordered sequence of candidate values.
// The order determines trial order during search and is preserved under
// pruning.
type Domains[V comparable, D comparable] map[V][]D

// Clone returns a deep copy of the domain map. The candidate slices are
// cloned as well so that pruning one copy never leaks into another.
func (d Domains[V, D]) Clone() Domains[V, D] {
	out := make(Domains[V, D], len(d))
	for v, candidates := range d {
		out[v] = slices.Clone(candidates)
	}
	return out
}

// Constraint implementations restrict the values a fixed set of variables
// may jointly take.
//
// Satisfied must be monotone over the engine's usage pattern: with
// unassigned participants treated as non-violating, adding assignments can
// only turn a satisfied constraint unsatisfied, never the reverse. Forward
// checking and arc consistency rely on this when testing hypothetical
// single-value assignments.
type Constraint[V comparable, D comparable] interface {
	// Variables returns the constraint's fixed participating variables.
	Variables() []V
	// Neighbors returns every participating variable other than v.
	Neighbors(v V) []V
	// Satisfied reports whether the currently-assigned subset of the
	// constraint's variables violates it.
	Satisfied(assignment Assignment[V, D]) bool
}

// Problem is an immutable description of a constraint-satisfaction problem:
// an ordered variable list, a total domain map, an optional initial
// assignment, and a per-variable constraint registry.
type Problem[V comparable, D comparable] struct {
	variables   []V
	domains     Domains[V, D]
	initial     Assignment[V, D]
	constraints map[V][]Constraint[V, D]
}

// ProblemOption configures a Problem during construction.
type ProblemOption[V comparable, D comparable] func(p *Problem[V, D]) error

// WithInitialAssignment fixes values for a subset of the problem's variables
// before search begins. Solvers run a priming propagation pass over these.
func WithInitialAssignment[V comparable, D comparable](assignment Assignment[V, D]) ProblemOption[V, D] {
	return func(p *Problem[V, D]) error {
		for v := range assignment {
			if _, ok := p.constraints[v]; !ok {
				return fmt.Errorf("initial assignment uses variable %v not declared in the problem", v)
			}
		}
		p.initial = assignment.Clone()
		return nil
	}
}

// NewProblem validates and builds a Problem. Every variable must appear
// exactly once and have a domain entry; violations are construction errors,
// reported before any search can run.
func NewProblem[V comparable, D comparable](variables []V, domains Domains[V, D], options ...ProblemOption[V, D]) (*Problem[V, D], error) {
	p := &Problem[V, D]{
		variables:   slices.Clone(variables),
		domains:     domains.Clone(),
		constraints: make(map[V][]Constraint[V, D], len(variables)),
	}
	for _, v := range variables {
		if _, ok := p.constraints[v]; ok {
			return nil, fmt.Errorf("variable %v declared more than once", v)
		}
		if _, ok := domains[v]; !ok {
			return nil, fmt.Errorf("missing domain for variable %v", v)
		}
		p.constraints[v] = nil
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddConstraint registers a constraint with each of its participating
// variables. Referencing a variable the problem does not declare is a
// construction error and leaves the registry untouched.
func (p *Problem[V, D]) AddConstraint(c Constraint[V, D]) error {
	for _, v := range c.Variables() {
		if _, ok := p.constraints[v]; !ok {
			return fmt.Errorf("constraint uses variable %v not declared in the problem", v)
		}
	}
	for _, v := range c.Variables() {
		p.constraints[v] = append(p.constraints[v], c)
	}
	return nil
}

// Variables returns the problem's variables in declaration order.
func (p *Problem[V, D]) Variables() []V {
	return p.variables
}

// Domains returns a deep copy of the problem's domain map, safe for a solver
// to prune.
func (p *Problem[V, D]) Domains() Domains[V, D] {
	return p.domains.Clone()
}

// InitialAssignment returns a copy of the problem's initial assignment, or
// nil if none was configured.
func (p *Problem[V, D]) InitialAssignment() Assignment[V, D] {
	return p.initial.Clone()
}

// Constraints returns the constraints registered against v, in registration
// order.
func (p *Problem[V, D]) Constraints(v V) []Constraint[V, D] {
	return p.constraints[v]
}

// Consistent reports whether every constraint touching v holds under the
// given assignment.
func (p *Problem[V, D]) Consistent(v V, assignment Assignment[V, D]) bool {
	for _, c := range p.constraints[v] {
		if !c.Satisfied(assignment) {
			return false
		}
	}
	return true
}

// UnassignedNeighbors returns every variable that shares a constraint with v
// and is not covered by the assignment, deduplicated, in constraint
// registration order.
func (p *Problem[V, D]) UnassignedNeighbors(assignment Assignment[V, D], v V) []V {
	var neighbors []V
	seen := make(map[V]struct{})
	for _, c := range p.constraints[v] {
		for _, n := range c.Neighbors(v) {
			if _, assigned := assignment[n]; assigned {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
