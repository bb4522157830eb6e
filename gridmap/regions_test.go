package gridmap_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegions verifies component discovery and cell ordering.
//
//	. # .
//	. # .
//	# # .
func TestRegions(t *testing.T) {
	g, err := gridmap.New([][]int{
		{0, -1, 1},
		{2, -1, 0},
		{-1, -1, 3},
	}, gridmap.Cell{})
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, []gridmap.Cell{{0, 0}, {0, 1}}, regions[0])
	assert.Equal(t, []gridmap.Cell{{2, 0}, {2, 1}, {2, 2}}, regions[1])
}

func TestRegions_AllBlocked(t *testing.T) {
	g, err := gridmap.New([][]int{{-1, -1}, {-1, -1}}, gridmap.Cell{})
	require.NoError(t, err)
	assert.Empty(t, g.Regions())
}

func TestConnected(t *testing.T) {
	g, err := gridmap.New([][]int{
		{0, -1, 0},
		{0, -1, 0},
		{0, 0, 0},
	}, gridmap.Cell{})
	require.NoError(t, err)

	assert.True(t, g.Connected(gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 2, Y: 0}), "around the wall")
	assert.True(t, g.Connected(gridmap.Cell{X: 1, Y: 2}, gridmap.Cell{X: 1, Y: 2}))
	assert.False(t, g.Connected(gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 1, Y: 0}), "target is a wall")
	assert.False(t, g.Connected(gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 9, Y: 0}), "target out of bounds")

	walled, err := gridmap.New([][]int{
		{0, -1, 0},
		{-1, -1, 0},
	}, gridmap.Cell{})
	require.NoError(t, err)
	assert.False(t, walled.Connected(gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 2, Y: 1}))
}
