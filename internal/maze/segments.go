package maze

import (
	"github.com/ironsheep/maze-wizard/internal/geometry"
)

// cornerType identifies which quadrant around a pixel is walled off.
type cornerType uint8

const (
	bottomLeft cornerType = iota
	bottomRight
	topRight
	topLeft
)

// cornerTemplates lists, in evaluation order, the three neighbour offsets
// (vertical, horizontal, diagonal) that must all be Wall for a pixel to be
// that kind of corner.
var cornerTemplates = [...]struct {
	kind    cornerType
	offsets [3][2]int
}{
	{bottomLeft, [3][2]int{{0, +1}, {-1, 0}, {-1, +1}}},
	{bottomRight, [3][2]int{{0, +1}, {+1, 0}, {+1, +1}}},
	{topRight, [3][2]int{{0, -1}, {+1, 0}, {+1, -1}}},
	{topLeft, [3][2]int{{0, -1}, {-1, 0}, {-1, -1}}},
}

// direction returns the unit steps that lead from the corner into open space.
func (c cornerType) direction() (dx, dy int) {
	dx, dy = 1, 1
	if c == bottomRight || c == topRight {
		dx = -1
	}
	if c == bottomLeft || c == bottomRight {
		dy = -1
	}
	return dx, dy
}

// corridorSet is an insertion-ordered set of corridors. boxes is the arena;
// index maps a corridor's bounds to its position so duplicates collapse.
type corridorSet struct {
	boxes []geometry.Box
	index map[geometry.Box]int

	// adjacency is filled lazily by neighbors.
	adjacency [][]int
	resolved  []bool
}

func newCorridorSet() *corridorSet {
	return &corridorSet{index: make(map[geometry.Box]int)}
}

// add inserts b unless an identical corridor is already present and returns
// its position.
func (s *corridorSet) add(b geometry.Box) int {
	if i, ok := s.index[b]; ok {
		return i
	}
	s.boxes = append(s.boxes, b)
	s.index[b] = len(s.boxes) - 1
	return len(s.boxes) - 1
}

func (s *corridorSet) len() int { return len(s.boxes) }

// neighbors returns the positions of every other corridor that shares a pixel
// with corridor i, in insertion order.
func (s *corridorSet) neighbors(i int) []int {
	if s.resolved == nil {
		s.adjacency = make([][]int, len(s.boxes))
		s.resolved = make([]bool, len(s.boxes))
	}
	if s.resolved[i] {
		return s.adjacency[i]
	}

	var nbs []int
	for j, b := range s.boxes {
		if j != i && s.boxes[i].Intersects(b) {
			nbs = append(nbs, j)
		}
	}
	s.adjacency[i] = nbs
	s.resolved[i] = true
	return nbs
}

// segmentBuilder derives corridors from the wall geometry of a grid.
type segmentBuilder struct {
	grid     *Grid
	entrance region
	exit     region

	corridors        *corridorSet
	entranceCorridor region
	exitCorridor     region
}

// buildSegments scans every interior pixel for open corners and collects the
// two corridors each corner produces. When several corridors overlap the
// entrance (or exit) the last one discovered is kept.
func buildSegments(g *Grid, entrance, exit region) (*corridorSet, region, region) {
	b := &segmentBuilder{
		grid:      g,
		entrance:  entrance,
		exit:      exit,
		corridors: newCorridorSet(),
	}

	for x := 1; x < g.Width()-1; x++ {
		for y := 1; y < g.Height()-1; y++ {
			kind, ok := b.corner(x, y)
			if !ok {
				continue
			}
			b.record(b.widthFirst(x, y, kind))
			b.record(b.heightFirst(x, y, kind))
		}
	}

	return b.corridors, b.entranceCorridor, b.exitCorridor
}

func (b *segmentBuilder) record(c geometry.Box) {
	if b.entrance.found && c.Intersects(b.entrance.box) {
		b.entranceCorridor = region{box: c, found: true}
	}
	if b.exit.found && c.Intersects(b.exit.box) {
		b.exitCorridor = region{box: c, found: true}
	}
	b.corridors.add(c)
}

// corner reports the first corner template that (x, y) matches.
func (b *segmentBuilder) corner(x, y int) (cornerType, bool) {
	if b.grid.At(x, y) == Wall {
		return 0, false
	}

	for _, tmpl := range cornerTemplates {
		matched := true
		for _, off := range tmpl.offsets {
			if b.grid.At(x+off[0], y+off[1]) != Wall {
				matched = false
				break
			}
		}
		if matched {
			return tmpl.kind, true
		}
	}
	return 0, false
}

// widthFirst runs along the corner's row to the last open pixel, then grows
// the span row by row until some pixel in the span is a wall.
func (b *segmentBuilder) widthFirst(x0, y0 int, kind cornerType) geometry.Box {
	dx, dy := kind.direction()

	x := x0
	for b.grid.At(x+dx, y0) != Wall {
		x += dx
	}

	y := y0
	for b.rowOpen(x0, x, y+dy) {
		y += dy
	}

	return spanBox(x0, y0, x, y)
}

// heightFirst is widthFirst with the axes swapped.
func (b *segmentBuilder) heightFirst(x0, y0 int, kind cornerType) geometry.Box {
	dx, dy := kind.direction()

	y := y0
	for b.grid.At(x0, y+dy) != Wall {
		y += dy
	}

	x := x0
	for b.columnOpen(x+dx, y0, y) {
		x += dx
	}

	return spanBox(x0, y0, x, y)
}

// rowOpen reports whether row y has no wall between columns x1 and x2 inclusive.
func (b *segmentBuilder) rowOpen(x1, x2, y int) bool {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if b.grid.At(x, y) == Wall {
			return false
		}
	}
	return true
}

// columnOpen reports whether column x has no wall between rows y1 and y2 inclusive.
func (b *segmentBuilder) columnOpen(x, y1, y2 int) bool {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if b.grid.At(x, y) == Wall {
			return false
		}
	}
	return true
}

// spanBox returns the box with the corner pixel and the scan endpoint at
// opposite corners.
func spanBox(x0, y0, x1, y1 int) geometry.Box {
	return geometry.NewBox(min(x0, x1), max(x0, x1), min(y0, y1), max(y0, y1))
}
