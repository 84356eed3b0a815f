package solver

import (
	"context"
	"fmt"

	"github.com/constraint-framework/sable/pkg/csp"
)

// search is the recursive backtracking step. Each frame owns its own clones
// of the domain map and assignment; abandoning a frame leaves the parent's
// state untouched. A nil, nil return means the frame's subtree is exhausted.
func (s *Solver[V, D]) search(ctx context.Context, domains csp.Domains[V, D], assignment csp.Assignment[V, D]) (csp.Assignment[V, D], error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrIncomplete
	}
	if len(assignment) == len(s.problem.Variables()) {
		return assignment, nil
	}

	v := s.selectVariable(domains, assignment)
	s.tracer.Trace(searchPosition[V, D]{
		depth:      len(assignment),
		variable:   v,
		candidates: domains[v],
		assignment: assignment,
	})

	for _, value := range domains[v] {
		local := assignment.Clone()
		local[v] = value

		if s.loop != nil && s.loop.Seen(local) {
			return nil, fmt.Errorf("%w: %v", ErrLoopDetected, local)
		}
		if !s.problem.Consistent(v, local) {
			continue
		}

		localDomains := domains.Clone()
		if s.forward {
			s.forwardCheck(v, local, localDomains)
		}
		if s.ac3 && !s.ac3Check(v, local, localDomains) {
			// A wipeout abandons every remaining candidate for v,
			// not just the current one.
			return nil, nil
		}

		result, err := s.search(ctx, localDomains, local)
		if err != nil || result != nil {
			return result, err
		}
	}
	return nil, nil
}

// selectVariable picks the next variable to assign. Without MRV it is the
// first unassigned variable in declaration order. With MRV it is the
// unassigned variable with the fewest remaining candidates, ties resolved by
// the degree heuristic when enabled and otherwise by encounter order.
func (s *Solver[V, D]) selectVariable(domains csp.Domains[V, D], assignment csp.Assignment[V, D]) V {
	var selected V
	found := false
	for _, v := range s.problem.Variables() {
		if _, assigned := assignment[v]; assigned {
			continue
		}
		if !found {
			selected, found = v, true
			if !s.mrv {
				return selected
			}
			continue
		}
		switch {
		case len(domains[v]) < len(domains[selected]):
			selected = v
		case s.degree && len(domains[v]) == len(domains[selected]):
			if s.countDegree(assignment, v) > s.countDegree(assignment, selected) {
				selected = v
			}
		}
	}
	return selected
}

// countDegree sums, over all of v's constraints, the neighbors matching the
// configured orientation. Neighbors shared by several constraints count once
// per constraint.
func (s *Solver[V, D]) countDegree(assignment csp.Assignment[V, D], v V) int {
	degree := 0
	for _, c := range s.problem.Constraints(v) {
		for _, n := range c.Neighbors(v) {
			_, assigned := assignment[n]
			if s.orientation == CountUnassigned {
				if !assigned {
					degree++
				}
			} else if assigned {
				degree++
			}
		}
	}
	return degree
}
