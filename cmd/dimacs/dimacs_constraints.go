package dimacs

import (
	"slices"

	"github.com/constraint-framework/sable/pkg/csp"
	"github.com/constraint-framework/sable/pkg/csp/constraint"
)

// clauseConstraint is satisfied while at least one of its literals is true
// or still unassigned.
type clauseConstraint struct {
	constraint.Scope[int]
	literals []int
}

func (c *clauseConstraint) Satisfied(assignment csp.Assignment[int, bool]) bool {
	unassigned := false
	for _, lit := range c.literals {
		value, ok := assignment[abs(lit)]
		if !ok {
			unassigned = true
			continue
		}
		if value == (lit > 0) {
			return true
		}
	}
	return unassigned
}

func newClauseConstraint(literals []int) csp.Constraint[int, bool] {
	variables := make([]int, 0, len(literals))
	seen := make(map[int]struct{}, len(literals))
	for _, lit := range literals {
		v := abs(lit)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		variables = append(variables, v)
	}
	return &clauseConstraint{
		Scope:    constraint.NewScope(variables),
		literals: slices.Clone(literals),
	}
}

// GenerateProblem encodes a parsed CNF instance as a CSP: one boolean-domain
// variable per DIMACS variable and one clause constraint per clause.
func GenerateProblem(d *Dimacs) (*csp.Problem[int, bool], error) {
	variables := make([]int, d.NumVariables())
	domains := make(csp.Domains[int, bool], d.NumVariables())
	for i := range variables {
		variables[i] = i + 1
		domains[i+1] = []bool{true, false}
	}
	problem, err := csp.NewProblem(variables, domains)
	if err != nil {
		return nil, err
	}
	for _, clause := range d.Clauses() {
		if err := problem.AddConstraint(newClauseConstraint(clause)); err != nil {
			return nil, err
		}
	}
	return problem, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
