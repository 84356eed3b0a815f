package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatisfiable(t *testing.T) {
	ok, err := Satisfiable([][]int{{1, 2}, {-1, -2}})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnsatisfiable(t *testing.T) {
	ok, err := Satisfiable([][]int{{1}, {-1}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRejectsZeroLiteral(t *testing.T) {
	_, err := Satisfiable([][]int{{1, 0}})
	assert.EqualError(t, err, "0 is not a valid literal")
}
