package maze

// Grid is a width x height array of features, one per pixel, stored row-major.
//
// A Grid is filled once by its producer (usually by classifying an image)
// and then handed to New, which takes a private copy.
type Grid struct {
	width, height int
	cells         []Feature
}

// NewGrid returns a grid of the given size with every cell set to Path.
// It returns ErrEmptyGrid if either dimension is not positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Feature, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the feature at (x, y). Coordinates outside the grid read as Wall.
func (g *Grid) At(x, y int) Feature {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[g.index(x, y)]
}

// Set stores f at (x, y). Out-of-range coordinates are ignored.
//
// Distinct cells may be set from different goroutines; the same cell must not.
func (g *Grid) Set(x, y int, f Feature) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = f
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) clone() *Grid {
	cells := make([]Feature, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}
