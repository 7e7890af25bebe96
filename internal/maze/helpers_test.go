package maze

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/maze-wizard/internal/geometry"
)

// gridFromRows builds a grid from a text picture: '#' is wall, 'E' entrance,
// 'X' exit and anything else path.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()

	require.NotEmpty(t, rows)
	g, err := NewGrid(len(rows[0]), len(rows))
	require.NoError(t, err)

	for y, row := range rows {
		require.Len(t, row, g.Width(), "row %d", y)
		for x, r := range row {
			switch r {
			case '#':
				g.Set(x, y, Wall)
			case 'E':
				g.Set(x, y, Entrance)
			case 'X':
				g.Set(x, y, Exit)
			}
		}
	}
	return g
}

// onePixelMaze has single-pixel ports in opposite top corners joined by a
// corridor that runs down, across and back up. The middle is a sealed room.
var onePixelMaze = []string{
	"##########",
	"#E#....#X#",
	"#.#....#.#",
	"#.#....#.#",
	"#.#....#.#",
	"#.#....#.#",
	"#.#....#.#",
	"#.######.#",
	"#........#",
	"##########",
}

// unsolvableMaze has 2x2 ports side by side along the top, separated by a
// wall column that runs the full height of the maze.
var unsolvableMaze = []string{
	"##########",
	"#EE#XX...#",
	"#EE#XX...#",
	"#..#.....#",
	"#..#.....#",
	"#..#.....#",
	"#..#.....#",
	"#..#.....#",
	"#..#.....#",
	"##########",
}

// hookMaze runs along the top and down the right side. Both ports lie on the
// vertical leg, so the horizontal leg is discovered first but must not be the
// starting corridor.
var hookMaze = []string{
	"#######",
	"#....E#",
	"#####.#",
	"#####.#",
	"#####.#",
	"#####X#",
	"#######",
}

// openRoomMaze is a single open room with ports halfway down each side.
var openRoomMaze = []string{
	"#######",
	"#.....#",
	"#.....#",
	"#E...X#",
	"#.....#",
	"#.....#",
	"#######",
}

// assertSolution checks that solution walks from the entrance to the exit:
// every box is open path, consecutive boxes share a pixel, the ends share an
// edge with the regions and no box covers a region pixel.
func assertSolution(t *testing.T, m *Maze, solution []geometry.Box) {
	t.Helper()

	require.NotEmpty(t, solution)
	entrance, _ := m.Entrance()
	exit, _ := m.Exit()

	for i, b := range solution {
		assert.False(t, m.RangeHasFeature(b, Wall), "box %d %v covers a wall", i, b)
		assert.False(t, b.Intersects(entrance), "box %d %v covers the entrance", i, b)
		assert.False(t, b.Intersects(exit), "box %d %v covers the exit", i, b)
		if i > 0 {
			assert.True(t, solution[i-1].Intersects(b), "boxes %d and %d are not linked", i-1, i)
		}
	}
	assert.True(t, entrance.Adjacent(solution[0]), "first box %v is not beside the entrance", solution[0])
	assert.True(t, exit.Adjacent(solution[len(solution)-1]), "last box %v is not beside the exit", solution[len(solution)-1])
}

// braidedMaze draws a cols x rows cell maze whose passages are corridor
// pixels wide and whose walls are wall pixels thick. Passages are carved by a
// seeded depth-first walk, then about one in five remaining inner walls is
// knocked out so the maze has loops. The entrance fills the top-left cell and
// the exit the bottom-right one.
func braidedMaze(t *testing.T, seed int64, cols, rows, corridor, wall int) *Grid {
	t.Helper()

	pitch := corridor + wall
	g, err := NewGrid(cols*pitch+wall, rows*pitch+wall)
	require.NoError(t, err)

	fill := func(x0, y0, w, h int, f Feature) {
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				g.Set(x, y, f)
			}
		}
	}
	origin := func(c image.Point) (int, int) {
		return wall + c.X*pitch, wall + c.Y*pitch
	}
	// join opens the wall between cell c and its right or lower neighbour.
	join := func(c image.Point, horizontal bool) {
		x, y := origin(c)
		if horizontal {
			fill(x+corridor, y, wall, corridor, Path)
		} else {
			fill(x, y+corridor, corridor, wall, Path)
		}
	}

	fill(0, 0, g.Width(), g.Height(), Wall)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x, y := origin(image.Pt(cx, cy))
			fill(x, y, corridor, corridor, Path)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	visited := make([]bool, cols*rows)
	visited[0] = true
	stack := []image.Point{{}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		var next []image.Point
		for _, d := range []image.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			n := c.Add(d)
			if n.X >= 0 && n.X < cols && n.Y >= 0 && n.Y < rows && !visited[n.Y*cols+n.X] {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.Intn(len(next))]
		visited[n.Y*cols+n.X] = true
		lo := c
		if n.X < c.X || n.Y < c.Y {
			lo = n
		}
		join(lo, n.Y == c.Y)
		stack = append(stack, n)
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			if cx+1 < cols && rng.Intn(5) == 0 {
				join(image.Pt(cx, cy), true)
			}
			if cy+1 < rows && rng.Intn(5) == 0 {
				join(image.Pt(cx, cy), false)
			}
		}
	}

	x, y := origin(image.Pt(0, 0))
	fill(x, y, corridor, corridor, Entrance)
	x, y = origin(image.Pt(cols-1, rows-1))
	fill(x, y, corridor, corridor, Exit)
	return g
}
