package constraint

import (
	"slices"

	"github.com/constraint-framework/sable/pkg/csp"
)

// Scope is the fixed, ordered variable set a constraint ranges over.
// Embedding it provides the Variables and Neighbors half of the
// csp.Constraint contract.
type Scope[V comparable] struct {
	variables []V
}

// NewScope copies the given variables into a Scope.
func NewScope[V comparable](variables []V) Scope[V] {
	return Scope[V]{variables: slices.Clone(variables)}
}

// Variables returns the scope's variables in declaration order.
func (s Scope[V]) Variables() []V {
	return s.variables
}

// Neighbors returns every variable in the scope other than v.
func (s Scope[V]) Neighbors(v V) []V {
	neighbors := make([]V, 0, len(s.variables))
	for _, candidate := range s.variables {
		if candidate != v {
			neighbors = append(neighbors, candidate)
		}
	}
	return neighbors
}

// NotEqualConstraint forbids two variables from taking the same value.
type NotEqualConstraint[V comparable, D comparable] struct {
	Scope[V]
	a, b V
}

// Satisfied reports true while either variable is unassigned.
func (c *NotEqualConstraint[V, D]) Satisfied(assignment csp.Assignment[V, D]) bool {
	left, ok := assignment[c.a]
	if !ok {
		return true
	}
	right, ok := assignment[c.b]
	if !ok {
		return true
	}
	return left != right
}

// NotEqual returns a binary Constraint forbidding a and b from being
// assigned the same value.
func NotEqual[V comparable, D comparable](a, b V) csp.Constraint[V, D] {
	return &NotEqualConstraint[V, D]{
		Scope: NewScope([]V{a, b}),
		a:     a,
		b:     b,
	}
}

// AllDifferentConstraint requires pairwise-distinct values across a fixed
// group of variables.
type AllDifferentConstraint[V comparable, D comparable] struct {
	Scope[V]
}

// Satisfied checks only the assigned members of the group; unassigned
// members do not violate the constraint.
func (c *AllDifferentConstraint[V, D]) Satisfied(assignment csp.Assignment[V, D]) bool {
	seen := make(map[D]struct{}, len(c.Variables()))
	for _, v := range c.Variables() {
		value, ok := assignment[v]
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			return false
		}
		seen[value] = struct{}{}
	}
	return true
}

// AllDifferent returns an n-ary Constraint requiring every assigned variable
// in the group to hold a distinct value.
func AllDifferent[V comparable, D comparable](variables ...V) csp.Constraint[V, D] {
	return &AllDifferentConstraint[V, D]{Scope: NewScope(variables)}
}
