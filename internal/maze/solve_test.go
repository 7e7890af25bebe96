package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/maze-wizard/internal/geometry"
)

// ring returns four corridors around a 5x5 square inserted top, left, right,
// bottom. Top and bottom are only connected through the sides.
func ring() (*corridorSet, []geometry.Box) {
	boxes := []geometry.Box{
		geometry.NewBox(0, 4, 0, 0), // top
		geometry.NewBox(0, 0, 0, 4), // left
		geometry.NewBox(4, 4, 0, 4), // right
		geometry.NewBox(0, 4, 4, 4), // bottom
	}
	s := newCorridorSet()
	for _, b := range boxes {
		s.add(b)
	}
	return s, boxes
}

func TestFindPath_FollowsInsertionOrder(t *testing.T) {
	s, boxes := ring()

	chain, err := s.findPath(boxes[0], boxes[3])
	require.NoError(t, err)
	assert.Equal(t, []geometry.Box{boxes[0], boxes[1], boxes[3]}, chain)
}

func TestFindPath_SameCorridor(t *testing.T) {
	s, boxes := ring()

	chain, err := s.findPath(boxes[2], boxes[2])
	require.NoError(t, err)
	assert.Equal(t, []geometry.Box{boxes[2]}, chain)
}

func TestFindPath_Backtracks(t *testing.T) {
	s := newCorridorSet()
	a := geometry.NewBox(0, 6, 0, 0)
	deadEnd := geometry.NewBox(0, 0, 0, 3)
	branch := geometry.NewBox(6, 6, 0, 6)
	goal := geometry.NewBox(2, 6, 6, 6)
	for _, b := range []geometry.Box{a, deadEnd, branch, goal} {
		s.add(b)
	}

	chain, err := s.findPath(a, goal)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Box{a, branch, goal}, chain)
}

func TestFindPath_Errors(t *testing.T) {
	s, boxes := ring()
	island := geometry.NewBox(2, 2, 2, 2)
	s.add(island)

	_, err := s.findPath(geometry.NewBox(9, 9, 9, 9), boxes[0])
	assert.ErrorIs(t, err, errNoEndpointCorridor)

	_, err = s.findPath(boxes[0], geometry.NewBox(9, 9, 9, 9))
	assert.ErrorIs(t, err, errNoEndpointCorridor)

	_, err = s.findPath(boxes[0], island)
	assert.ErrorIs(t, err, errSearchExhausted)
}

func TestFindPath_LongChain(t *testing.T) {
	// A staircase of 2x2 corridors, each overlapping only the next.
	const steps = 2000
	s := newCorridorSet()
	var want []geometry.Box
	for i := 0; i < steps; i++ {
		b := geometry.NewBox(i, i+1, i, i+1)
		s.add(b)
		want = append(want, b)
	}

	chain, err := s.findPath(want[0], want[steps-1])
	require.NoError(t, err)
	assert.Len(t, chain, steps)
	assert.Equal(t, want[steps-1], chain[steps-1])
}
