package solver

import (
	"github.com/constraint-framework/sable/pkg/csp"
)

// forwardCheck removes, from the domain of every unassigned neighbor of v,
// each candidate value that would violate one of the neighbor's constraints
// under the given assignment. domains is mutated in place; the domains of v
// itself and of already-assigned variables are never touched.
func (s *Solver[V, D]) forwardCheck(v V, assignment csp.Assignment[V, D], domains csp.Domains[V, D]) {
	for _, neighbor := range s.problem.UnassignedNeighbors(assignment, v) {
		hypothetical := assignment.Clone()
		kept := make([]D, 0, len(domains[neighbor]))
		for _, value := range domains[neighbor] {
			hypothetical[neighbor] = value
			if s.problem.Consistent(neighbor, hypothetical) {
				kept = append(kept, value)
			}
		}
		domains[neighbor] = kept
	}
}
