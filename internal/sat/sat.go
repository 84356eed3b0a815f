package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const satisfiable = 1

// Satisfiable reports whether a CNF formula, given as clauses of
// DIMACS-style non-zero 1-based literals, has a model. It is used as an
// independent oracle to cross-check the engine's sat/unsat verdicts.
func Satisfiable(clauses [][]int) (bool, error) {
	g := gini.New()
	for _, clause := range clauses {
		for _, lit := range clause {
			if lit == 0 {
				return false, fmt.Errorf("0 is not a valid literal")
			}
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == satisfiable, nil
}
