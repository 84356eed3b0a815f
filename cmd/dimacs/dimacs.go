package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dimacs holds the variable count and clauses of a CNF problem described in
// DIMACS format.
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
type Dimacs struct {
	numVariables int
	clauses      [][]int
}

func (d *Dimacs) NumVariables() int {
	return d.numVariables
}

func (d *Dimacs) Clauses() [][]int {
	return d.clauses
}

// NewDimacs parses a DIMACS formatted stream into typed clauses of non-zero
// 1-based literals, negative meaning 'not'.
func NewDimacs(r io.Reader) (*Dimacs, error) {
	scanner := bufio.NewScanner(r)
	d := &Dimacs{}
	declaredClauses := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "c"):
			// comment
		case strings.HasPrefix(line, "p"):
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("invalid statement (%s): valid format is p cnf <variables> <clauses>", line)
			}
			var err error
			if d.numVariables, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", fields[2], line)
			}
			if declaredClauses, err = strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", fields[3], line)
			}
		default:
			if declaredClauses < 0 {
				return nil, fmt.Errorf("invalid dimacs format: missing header 'p cnf <variables> <clauses>'")
			}
			clause, err := parseClause(line, d.numVariables)
			if err != nil {
				return nil, err
			}
			d.clauses = append(d.clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dimacs data: %w", err)
	}

	if declaredClauses <= 0 || d.numVariables == 0 || len(d.clauses) == 0 {
		return nil, fmt.Errorf("invalid format: no variables or clauses found")
	}
	if len(d.clauses) != declaredClauses {
		return nil, fmt.Errorf("invalid format: header declares %d clauses, found %d", declaredClauses, len(d.clauses))
	}
	return d, nil
}

func parseClause(line string, numVariables int) ([]int, error) {
	fields := strings.Fields(line)
	if fields[len(fields)-1] != "0" {
		return nil, fmt.Errorf("invalid clause (%s): does not end with 0", line)
	}
	clause := make([]int, 0, len(fields)-1)
	for _, field := range fields[:len(fields)-1] {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid clause (%s): %s is not a number", line, field)
		}
		if lit == 0 {
			return nil, fmt.Errorf("invalid clause (%s): 0 is not a valid literal", line)
		}
		if lit > numVariables || lit < -numVariables {
			return nil, fmt.Errorf("invalid clause (%s): %d is not a valid literal", line, lit)
		}
		clause = append(clause, lit)
	}
	if len(clause) == 0 {
		return nil, fmt.Errorf("invalid clause (%s): empty", line)
	}
	return clause, nil
}
