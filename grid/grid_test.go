package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcannon67/robotics-d-star-lite/grid"
)

func TestNew_InvalidDimensions(t *testing.T) {
	_, err := grid.New(0, 5, 1)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.New(5, -1, 1)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestNew_CoordinatesAndDefaultCost(t *testing.T) {
	m, err := grid.New(3, 2, 1.5)
	require.NoError(t, err)
	require.Equal(t, 3, m.Width())
	require.Equal(t, 2, m.Height())

	c, err := m.Cell(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, c.X())
	assert.Equal(t, 1, c.Y())
	assert.Equal(t, 1.5, c.Cost())
}

func TestCell_OutOfBounds(t *testing.T) {
	m, err := grid.New(2, 2, 1)
	require.NoError(t, err)

	_, err = m.Cell(5, 5)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestNeighbors_InteriorCellHasEight(t *testing.T) {
	m, err := grid.New(3, 3, 1)
	require.NoError(t, err)

	center, err := m.Cell(1, 1)
	require.NoError(t, err)

	nbrs := center.Neighbors()
	count := 0
	for _, n := range nbrs {
		if n != nil {
			count++
		}
	}
	assert.Equal(t, 8, count)
}

func TestNeighbors_CornerCellIsNullPadded(t *testing.T) {
	m, err := grid.New(3, 3, 1)
	require.NoError(t, err)

	corner, err := m.Cell(0, 0)
	require.NoError(t, err)

	nbrs := corner.Neighbors()
	count := 0
	for _, n := range nbrs {
		if n != nil {
			count++
		}
	}
	// (0,0) on a 3x3 grid has exactly three king-move neighbors: E, S, SE.
	assert.Equal(t, 3, count)
}

func TestSetCost_Unwalkable(t *testing.T) {
	m, err := grid.New(2, 2, 1)
	require.NoError(t, err)

	require.NoError(t, m.SetCost(1, 1, grid.UNWALKABLE))

	c, err := m.Cell(1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(c.Cost(), 1))
}

func TestSetCost_OutOfBounds(t *testing.T) {
	m, err := grid.New(2, 2, 1)
	require.NoError(t, err)

	err = m.SetCost(9, 9, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestCell_String(t *testing.T) {
	m, err := grid.New(2, 2, 1)
	require.NoError(t, err)
	c, err := m.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "1,0", c.String())
}
