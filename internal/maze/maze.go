package maze

import (
	"fmt"
	"sync"

	"github.com/ironsheep/maze-wizard/internal/geometry"
)

// Maze is the analysed form of a maze grid: its entrance and exit regions,
// its validation state, its corridors and, once requested, its solution.
type Maze struct {
	grid *Grid

	entrance region
	exit     region
	errs     []error

	corridors        *corridorSet
	entranceCorridor region
	exitCorridor     region

	solveOnce sync.Once
	solution  []geometry.Box
	solveErr  error
}

// New analyses g and returns the resulting Maze. g is copied, so later
// changes to g do not affect the Maze.
//
// New locates the entrance and exit, validates the maze and, if it is valid,
// builds its corridors. It never fails: problems are reported by IsValid and
// ValidationErrors. The solution is not computed until Solve is called.
func New(g *Grid) *Maze {
	m := &Maze{
		grid:      g.clone(),
		corridors: newCorridorSet(),
	}

	m.entrance, m.exit = locateRegions(m.grid)
	m.validate()
	if !m.IsValid() {
		return m
	}

	m.corridors, m.entranceCorridor, m.exitCorridor = buildSegments(m.grid, m.entrance, m.exit)
	return m
}

func (m *Maze) validate() {
	if !m.entrance.found {
		m.errs = append(m.errs, ErrEntranceNotFound)
	}
	if !m.exit.found {
		m.errs = append(m.errs, ErrExitNotFound)
	}
	if !m.perimeterIsWall() {
		m.errs = append(m.errs, ErrInvalidPerimeter)
	}
}

func (m *Maze) perimeterIsWall() bool {
	w, h := m.grid.Width(), m.grid.Height()
	for x := 0; x < w; x++ {
		if m.grid.At(x, 0) != Wall || m.grid.At(x, h-1) != Wall {
			return false
		}
	}
	for y := 0; y < h; y++ {
		if m.grid.At(0, y) != Wall || m.grid.At(w-1, y) != Wall {
			return false
		}
	}
	return true
}

// Width returns the maze width in pixels.
func (m *Maze) Width() int { return m.grid.Width() }

// Height returns the maze height in pixels.
func (m *Maze) Height() int { return m.grid.Height() }

// Feature returns the feature at (x, y). Coordinates outside the maze read as Wall.
func (m *Maze) Feature(x, y int) Feature { return m.grid.At(x, y) }

// IsValid reports whether the maze has an entrance, an exit and an all-wall
// perimeter. It says nothing about whether the maze can be solved.
func (m *Maze) IsValid() bool { return len(m.errs) == 0 }

// ValidationErrors returns every validation failure in detection order:
// missing entrance, missing exit, invalid perimeter.
func (m *Maze) ValidationErrors() []error {
	out := make([]error, len(m.errs))
	copy(out, m.errs)
	return out
}

// Err returns nil for a valid maze and a *ValidationError otherwise.
func (m *Maze) Err() error {
	if m.IsValid() {
		return nil
	}
	return &ValidationError{Errs: m.ValidationErrors()}
}

// Entrance returns the entrance region, if one was found.
func (m *Maze) Entrance() (geometry.Box, bool) { return m.entrance.get() }

// Exit returns the exit region, if one was found.
func (m *Maze) Exit() (geometry.Box, bool) { return m.exit.get() }

// EntranceCorridor returns the corridor the search starts from: the last
// corridor discovered that overlaps the entrance.
func (m *Maze) EntranceCorridor() (geometry.Box, bool) { return m.entranceCorridor.get() }

// ExitCorridor returns the corridor the search ends at: the last corridor
// discovered that overlaps the exit.
func (m *Maze) ExitCorridor() (geometry.Box, bool) { return m.exitCorridor.get() }

// Corridors returns every distinct corridor in discovery order. It is empty
// for an invalid maze.
func (m *Maze) Corridors() []geometry.Box {
	out := make([]geometry.Box, len(m.corridors.boxes))
	copy(out, m.corridors.boxes)
	return out
}

// RangeHasFeature reports whether any pixel of r has feature f.
func (m *Maze) RangeHasFeature(r geometry.Box, f Feature) bool {
	for x := r.MinX; x <= r.MaxX; x++ {
		for y := r.MinY; y <= r.MaxY; y++ {
			if m.grid.At(x, y) == f {
				return true
			}
		}
	}
	return false
}

// Solve returns the solution: an ordered chain of boxes from the entrance to
// the exit, each sharing a pixel with the next, that together cover the path
// without covering the entrance or exit regions.
//
// The solution is computed on the first call and reused afterwards; every
// call returns an equal, independently owned slice. Solve is safe for
// concurrent use.
//
// The error is a *ValidationError, matching ErrInvalidMaze, if the maze
// failed validation, and wraps ErrNoSolution if no path exists.
func (m *Maze) Solve() ([]geometry.Box, error) {
	m.solveOnce.Do(m.solve)

	out := make([]geometry.Box, len(m.solution))
	copy(out, m.solution)
	return out, m.solveErr
}

// Solution is Solve without the error. It is empty when there is no solution.
func (m *Maze) Solution() []geometry.Box {
	s, _ := m.Solve()
	return s
}

func (m *Maze) solve() {
	if !m.IsValid() {
		m.solveErr = m.Err()
		return
	}

	from, okFrom := m.entranceCorridor.get()
	to, okTo := m.exitCorridor.get()
	if !okFrom || !okTo {
		m.solveErr = fmt.Errorf("%w: %w", ErrNoSolution, errNoEndpointCorridor)
		return
	}

	chain, err := m.corridors.findPath(from, to)
	if err != nil {
		m.solveErr = fmt.Errorf("%w: %w", ErrNoSolution, err)
		return
	}

	solution, err := trim(chain, m.entrance.box, m.exit.box)
	if err != nil {
		m.solveErr = fmt.Errorf("%w: %w", ErrNoSolution, err)
		return
	}
	m.solution = solution
}
