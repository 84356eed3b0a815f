package sudoku

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/constraint-framework/sable/pkg/csp"
	"github.com/constraint-framework/sable/pkg/csp/constraint"
)

// Cell addresses one position on the board, 1-based.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("r%dc%d", c.Row, c.Col)
}

// Board is a 9x9 grid of values 0-9, 0 marking a blank cell.
type Board [9][9]int

// LoadBoard reads a board from a YAML (or JSON) file containing nine rows of
// nine values.
func LoadBoard(path string) (Board, error) {
	var board Board
	data, err := os.ReadFile(path)
	if err != nil {
		return board, fmt.Errorf("error opening board file (%s): %w", path, err)
	}
	var rows [][]int
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return board, fmt.Errorf("error parsing board file (%s): %w", path, err)
	}
	if len(rows) != 9 {
		return board, fmt.Errorf("board must have 9 rows, found %d", len(rows))
	}
	for r, row := range rows {
		if len(row) != 9 {
			return board, fmt.Errorf("row %d must have 9 values, found %d", r+1, len(row))
		}
		for c, value := range row {
			if value < 0 || value > 9 {
				return board, fmt.Errorf("row %d col %d: value %d out of range", r+1, c+1, value)
			}
			board[r][c] = value
		}
	}
	return board, nil
}

// NewProblem builds the CSP for a board: one variable per cell with domain
// 1-9 (givens get a singleton domain and an initial assignment), and one
// all-different constraint per row, column and box.
func NewProblem(board Board) (*csp.Problem[Cell, int], error) {
	variables := make([]Cell, 0, 81)
	domains := make(csp.Domains[Cell, int], 81)
	initial := csp.Assignment[Cell, int]{}
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			cell := Cell{Row: row, Col: col}
			variables = append(variables, cell)
			if given := board[row-1][col-1]; given != 0 {
				domains[cell] = []int{given}
				initial[cell] = given
			} else {
				domains[cell] = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
			}
		}
	}

	problem, err := csp.NewProblem(variables, domains, csp.WithInitialAssignment(initial))
	if err != nil {
		return nil, err
	}

	for row := 1; row <= 9; row++ {
		group := make([]Cell, 0, 9)
		for col := 1; col <= 9; col++ {
			group = append(group, Cell{Row: row, Col: col})
		}
		if err := problem.AddConstraint(constraint.AllDifferent[Cell, int](group...)); err != nil {
			return nil, err
		}
	}
	for col := 1; col <= 9; col++ {
		group := make([]Cell, 0, 9)
		for row := 1; row <= 9; row++ {
			group = append(group, Cell{Row: row, Col: col})
		}
		if err := problem.AddConstraint(constraint.AllDifferent[Cell, int](group...)); err != nil {
			return nil, err
		}
	}
	for boxRow := 0; boxRow < 3; boxRow++ {
		for boxCol := 0; boxCol < 3; boxCol++ {
			group := make([]Cell, 0, 9)
			for row := 1; row <= 3; row++ {
				for col := 1; col <= 3; col++ {
					group = append(group, Cell{Row: 3*boxRow + row, Col: 3*boxCol + col})
				}
			}
			if err := problem.AddConstraint(constraint.AllDifferent[Cell, int](group...)); err != nil {
				return nil, err
			}
		}
	}
	return problem, nil
}

// RenderBoard writes an assignment in the familiar 3x3-sectioned layout,
// with given cells colorized and blanks for unassigned cells.
func RenderBoard(w io.Writer, assignment csp.Assignment[Cell, int], board Board) {
	given := color.New(color.FgCyan, color.Bold).SprintFunc()
	for row := 1; row <= 9; row++ {
		if row != 1 && (row-1)%3 == 0 {
			fmt.Fprintln(w, "---------------------")
		}
		parts := make([]string, 0, 11)
		for col := 1; col <= 9; col++ {
			if col != 1 && (col-1)%3 == 0 {
				parts = append(parts, "|")
			}
			value, ok := assignment[Cell{Row: row, Col: col}]
			switch {
			case !ok:
				parts = append(parts, " ")
			case board[row-1][col-1] != 0:
				parts = append(parts, given(strconv.Itoa(value)))
			default:
				parts = append(parts, strconv.Itoa(value))
			}
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
}
