package imaging

import (
	"image"
	"image/color"

	"github.com/ironsheep/maze-wizard/internal/geometry"
	"github.com/ironsheep/maze-wizard/internal/maze"
)

// SolveOptions configures SolveFile.
type SolveOptions struct {
	// Palette classifies source pixels. The zero value matches nothing, so
	// callers normally start from maze.DefaultPalette.
	Palette maze.Palette

	// Highlight is the colour the solution is painted in. Nil means DefaultHighlight.
	Highlight color.Color
}

// SolveResult describes a solved maze image.
type SolveResult struct {
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Entrance  geometry.Box   `json:"entrance"`
	Exit      geometry.Box   `json:"exit"`
	Corridors int            `json:"corridors"`
	Solution  []geometry.Box `json:"solution"`
	Output    string         `json:"output"`
}

// SolveFile reads the maze image at src, solves it and writes the image with
// the solution painted on it to dst. The output format follows the extension
// of dst.
//
// Errors from the maze package are returned unwrapped, so callers can test
// them with errors.Is and errors.As (maze.ErrNoSolution, *maze.ValidationError).
func SolveFile(src, dst string, opts SolveOptions) (*SolveResult, error) {
	cache := NewMazeCache(NewImageCache(), opts.Palette)
	m, img, err := cache.Load(src)
	if err != nil {
		return nil, err
	}
	return WriteSolution(m, img, dst, opts.Highlight)
}

// WriteSolution solves m, paints the solution over img in highlight and
// saves the result to dst.
func WriteSolution(m *maze.Maze, img image.Image, dst string, highlight color.Color) (*SolveResult, error) {
	solution, err := m.Solve()
	if err != nil {
		return nil, err
	}

	if highlight == nil {
		highlight = DefaultHighlight
	}
	if err := Save(PaintSolution(img, solution, highlight), dst); err != nil {
		return nil, err
	}

	entrance, _ := m.Entrance()
	exit, _ := m.Exit()
	return &SolveResult{
		Width:     m.Width(),
		Height:    m.Height(),
		Entrance:  entrance,
		Exit:      exit,
		Corridors: len(m.Corridors()),
		Solution:  solution,
		Output:    dst,
	}, nil
}
