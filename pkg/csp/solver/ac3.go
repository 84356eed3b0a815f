package solver

import (
	"slices"

	"github.com/constraint-framework/sable/pkg/csp"
)

// arc directs a consistency check: every value in check's domain must have
// at least one supporting value left in against's domain.
type arc[V comparable] struct {
	check   V
	against V
}

// ac3Check enforces arc consistency outward from a newly assigned starting
// variable, mutating domains in place. It reports false as soon as
// propagation empties any domain, proving no solution extends this branch.
func (s *Solver[V, D]) ac3Check(start V, assignment csp.Assignment[V, D], domains csp.Domains[V, D]) bool {
	var queue []arc[V]
	for _, neighbor := range s.problem.UnassignedNeighbors(assignment, start) {
		queue = append(queue, arc[V]{check: neighbor, against: start})
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !s.removeInconsistent(assignment, domains, a.check, a.against) {
			continue
		}
		if len(domains[a.check]) == 0 {
			return false
		}
		// The change may invalidate values elsewhere: ripple arcs from
		// every unassigned neighbor of the pruned variable back to it,
		// except the neighbor that triggered this pass.
		for _, neighbor := range s.problem.UnassignedNeighbors(assignment, a.check) {
			if neighbor != a.against {
				queue = append(queue, arc[V]{check: neighbor, against: a.check})
			}
		}
	}
	return true
}

// removeInconsistent prunes from check's domain every value with no
// supporting value left in against's domain, and reports whether anything
// was removed.
func (s *Solver[V, D]) removeInconsistent(assignment csp.Assignment[V, D], domains csp.Domains[V, D], check, against V) bool {
	kept := make([]D, 0, len(domains[check]))
	for _, value := range domains[check] {
		hypothetical := assignment.Clone()
		hypothetical[check] = value
		if s.hasSupport(hypothetical, domains, check, against) {
			kept = append(kept, value)
		}
	}
	if len(kept) == len(domains[check]) {
		return false
	}
	domains[check] = kept
	return true
}

// hasSupport reports whether some value in against's domain keeps every
// constraint linking check and against satisfied, given a hypothetical
// assignment that already binds check.
func (s *Solver[V, D]) hasSupport(hypothetical csp.Assignment[V, D], domains csp.Domains[V, D], check, against V) bool {
	for _, value := range domains[against] {
		hypothetical[against] = value
		if s.sharedConstraintsHold(hypothetical, check, against) {
			return true
		}
	}
	return false
}

// sharedConstraintsHold checks only the constraints of check that also
// involve against.
func (s *Solver[V, D]) sharedConstraintsHold(assignment csp.Assignment[V, D], check, against V) bool {
	for _, c := range s.problem.Constraints(check) {
		if !slices.Contains(c.Neighbors(check), against) {
			continue
		}
		if !c.Satisfied(assignment) {
			return false
		}
	}
	return true
}
