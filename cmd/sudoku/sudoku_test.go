package sudoku

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constraint-framework/sable/internal/cli"
	"github.com/constraint-framework/sable/pkg/csp"
	"github.com/constraint-framework/sable/pkg/csp/solver"
)

var solvedBoard = Board{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func defaultSolver(t *testing.T, board Board) *solver.Solver[Cell, int] {
	t.Helper()
	problem, err := NewProblem(board)
	require.NoError(t, err)
	s, err := solver.NewSolver(problem, cli.SolverOptions[Cell, int](&cli.Flags{MRV: true, Degree: true})...)
	require.NoError(t, err)
	return s
}

func TestSolveCompleteBoard(t *testing.T) {
	s := defaultSolver(t, solvedBoard)

	solution, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, solution, 81)
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			assert.Equal(t, solvedBoard[row-1][col-1], solution[Cell{Row: row, Col: col}])
		}
	}
}

func TestSolveSingleBlank(t *testing.T) {
	board := solvedBoard
	board[4][4] = 0
	s := defaultSolver(t, board)

	solution, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, solvedBoard[4][4], solution[Cell{Row: 5, Col: 5}])
}

func TestSolveConflictingGivens(t *testing.T) {
	var board Board
	board[0][0] = 5
	board[0][5] = 5
	s := defaultSolver(t, board)

	solution, err := s.Solve(context.Background())
	assert.ErrorIs(t, err, csp.ErrNotSatisfiable)
	assert.Nil(t, solution)
}

func TestNewProblemRegistersGivens(t *testing.T) {
	var board Board
	board[2][3] = 7
	problem, err := NewProblem(board)
	require.NoError(t, err)

	initial := problem.InitialAssignment()
	require.Len(t, initial, 1)
	assert.Equal(t, 7, initial[Cell{Row: 3, Col: 4}])
	// givens carry a singleton domain, blanks the full 1-9 range
	assert.Equal(t, []int{7}, problem.Domains()[Cell{Row: 3, Col: 4}])
	assert.Len(t, problem.Domains()[Cell{Row: 1, Col: 1}], 9)
	// every cell participates in a row, a column and a box constraint
	assert.Len(t, problem.Constraints(Cell{Row: 1, Col: 1}), 3)
}

func TestLoadBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	content := `
- [5, 3, 0, 0, 7, 0, 0, 0, 0]
- [6, 0, 0, 1, 9, 5, 0, 0, 0]
- [0, 9, 8, 0, 0, 0, 0, 6, 0]
- [8, 0, 0, 0, 6, 0, 0, 0, 3]
- [4, 0, 0, 8, 0, 3, 0, 0, 1]
- [7, 0, 0, 0, 2, 0, 0, 0, 6]
- [0, 6, 0, 0, 0, 0, 2, 8, 0]
- [0, 0, 0, 4, 1, 9, 0, 0, 5]
- [0, 0, 0, 0, 8, 0, 0, 7, 9]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	board, err := LoadBoard(path)
	require.NoError(t, err)
	assert.Equal(t, 5, board[0][0])
	assert.Equal(t, 9, board[8][8])
	assert.Equal(t, 0, board[0][2])
}

func TestLoadBoardErrors(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.yaml")
	require.NoError(t, os.WriteFile(short, []byte("- [1, 2, 3]\n"), 0600))
	_, err := LoadBoard(short)
	assert.ErrorContains(t, err, "must have 9 rows")

	invalid := filepath.Join(dir, "invalid.yaml")
	rows := make([]string, 9)
	for i := range rows {
		rows[i] = "- [1, 2, 3, 4, 5, 6, 7, 8, 99]"
	}
	require.NoError(t, os.WriteFile(invalid, []byte(strings.Join(rows, "\n")), 0600))
	_, err = LoadBoard(invalid)
	assert.ErrorContains(t, err, "out of range")
}

func TestRenderBoard(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	problem, err := NewProblem(solvedBoard)
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderBoard(&buf, problem.InitialAssignment(), solvedBoard)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "5 3 4 | 6 7 8 | 9 1 2", lines[0])
	assert.Equal(t, "---------------------", lines[3])
}
