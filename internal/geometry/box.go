// Package geometry provides the integer rectangle primitive used to describe
// maze regions, corridors and solution segments.
//
// # Coordinate System
//
// Coordinates follow the image convention: (0,0) is the top-left pixel,
// X increases rightward and Y increases downward. Unlike image.Rectangle,
// a Box is inclusive on all four bounds, so Box{MinX: 2, MaxX: 2, MinY: 5, MaxY: 5}
// covers exactly one pixel.
package geometry

import (
	"fmt"
	"image"
)

// Box is an axis-aligned rectangle of pixels with inclusive bounds.
//
// A Box is a value type: every transformation returns a new Box and the
// receiver is never modified. Two boxes are equal when all four bounds match,
// so Box can be compared with == and used as a map key.
//
// Boxes must satisfy 0 <= MinX <= MaxX and 0 <= MinY <= MaxY. NewBox enforces
// this; constructing a literal that violates it is a programming error.
type Box struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// NewBox returns the box spanning [minX, maxX] x [minY, maxY].
//
// NewBox panics if a minimum is negative or exceeds its maximum. Callers
// compute bounds from grid scans, so an invalid box means the scan is broken,
// not that the input image is bad.
func NewBox(minX, maxX, minY, maxY int) Box {
	if minX < 0 || minY < 0 {
		panic(fmt.Sprintf("geometry: negative box bounds x=%d y=%d", minX, minY))
	}
	if minX > maxX || minY > maxY {
		panic(fmt.Sprintf("geometry: inverted box bounds [%d..%d]x[%d..%d]", minX, maxX, minY, maxY))
	}
	return Box{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// Width returns the number of pixel columns covered by b.
func (b Box) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of pixel rows covered by b.
func (b Box) Height() int { return b.MaxY - b.MinY + 1 }

// Area returns the number of pixels covered by b.
func (b Box) Area() int { return b.Width() * b.Height() }

// Shift returns b translated by dx and dy.
func (b Box) Shift(dx, dy int) Box {
	return NewBox(b.MinX+dx, b.MaxX+dx, b.MinY+dy, b.MaxY+dy)
}

// Intersect returns the overlap of b and other.
//
// Bounds are closed, so boxes sharing a single row or column still
// intersect. The second result is false when the boxes are disjoint.
func (b Box) Intersect(other Box) (Box, bool) {
	minX := max(b.MinX, other.MinX)
	maxX := min(b.MaxX, other.MaxX)
	minY := max(b.MinY, other.MinY)
	maxY := min(b.MaxY, other.MaxY)

	if minX > maxX || minY > maxY {
		return Box{}, false
	}
	return Box{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}, true
}

// Intersects reports whether b and other share at least one pixel.
func (b Box) Intersects(other Box) bool {
	return !(other.MinX > b.MaxX ||
		other.MaxX < b.MinX ||
		other.MinY > b.MaxY ||
		other.MaxY < b.MinY)
}

// Touches reports whether b and other share a pixel or lie next to each other,
// including diagonally.
func (b Box) Touches(other Box) bool {
	return !(other.MinX > b.MaxX+1 ||
		other.MaxX+1 < b.MinX ||
		other.MinY > b.MaxY+1 ||
		other.MaxY+1 < b.MinY)
}

// Adjacent reports whether b and other share a pixel or an edge. Boxes that
// meet only at a corner are not adjacent.
func (b Box) Adjacent(other Box) bool {
	overlapX := other.MinX <= b.MaxX && other.MaxX >= b.MinX
	overlapY := other.MinY <= b.MaxY && other.MaxY >= b.MinY
	nearX := other.MinX <= b.MaxX+1 && other.MaxX+1 >= b.MinX
	nearY := other.MinY <= b.MaxY+1 && other.MaxY+1 >= b.MinY
	return (overlapX && nearY) || (overlapY && nearX)
}

// Contains reports whether the pixel (x, y) lies inside b.
func (b Box) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Union returns the smallest box covering both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		MinX: min(b.MinX, other.MinX),
		MaxX: max(b.MaxX, other.MaxX),
		MinY: min(b.MinY, other.MinY),
		MaxY: max(b.MaxY, other.MaxY),
	}
}

// SpansX reports whether other covers exactly the column range of b.
func (b Box) SpansX(other Box) bool {
	return other.MinX == b.MinX && other.MaxX == b.MaxX
}

// SpansY reports whether other covers exactly the row range of b.
func (b Box) SpansY(other Box) bool {
	return other.MinY == b.MinY && other.MaxY == b.MaxY
}

// Split removes delimiter from b and returns what is left.
//
// The delimiter must be a full-width slice (same MinX and MaxX as b) or a
// full-height slice (same MinY and MaxY). The remainder is returned as zero,
// one or two boxes: the piece after the delimiter first, then the piece before
// it. When the delimiter matches both ranges the full-width case applies.
//
// Split panics if the delimiter matches neither range.
func (b Box) Split(delimiter Box) []Box {
	pieces := make([]Box, 0, 2)

	switch {
	case b.SpansX(delimiter):
		if b.MaxY > delimiter.MaxY {
			pieces = append(pieces, NewBox(b.MinX, b.MaxX, delimiter.MaxY+1, b.MaxY))
		}
		if b.MinY < delimiter.MinY {
			pieces = append(pieces, NewBox(b.MinX, b.MaxX, b.MinY, delimiter.MinY-1))
		}
		return pieces
	case b.SpansY(delimiter):
		if b.MaxX > delimiter.MaxX {
			pieces = append(pieces, NewBox(delimiter.MaxX+1, b.MaxX, b.MinY, b.MaxY))
		}
		if b.MinX < delimiter.MinX {
			pieces = append(pieces, NewBox(b.MinX, delimiter.MinX-1, b.MinY, b.MaxY))
		}
		return pieces
	}

	panic(fmt.Sprintf("geometry: cannot split %v by %v: delimiter must share the x or y bounds", b, delimiter))
}

// Slab widens cut into a full slice of b that Split accepts.
//
// If cut already spans b's columns or rows it is returned unchanged.
// Otherwise the cut is stretched across b's short axis: a wide box gets a
// full-height slab, a tall box a full-width one. cut is expected to lie
// within b.
func (b Box) Slab(cut Box) Box {
	if b.SpansX(cut) || b.SpansY(cut) {
		return cut
	}
	if b.Width() >= b.Height() {
		return Box{MinX: cut.MinX, MaxX: cut.MaxX, MinY: b.MinY, MaxY: b.MaxY}
	}
	return Box{MinX: b.MinX, MaxX: b.MaxX, MinY: cut.MinY, MaxY: cut.MaxY}
}

// Points returns every pixel coordinate covered by b, column by column.
func (b Box) Points() []image.Point {
	points := make([]image.Point, 0, b.Area())
	for x := b.MinX; x <= b.MaxX; x++ {
		for y := b.MinY; y <= b.MaxY; y++ {
			points = append(points, image.Point{X: x, Y: y})
		}
	}
	return points
}

// Rectangle converts b to the half-open image.Rectangle covering the same pixels.
func (b Box) Rectangle() image.Rectangle {
	return image.Rect(b.MinX, b.MinY, b.MaxX+1, b.MaxY+1)
}

// String formats b as "[minX..maxX]x[minY..maxY]".
func (b Box) String() string {
	return fmt.Sprintf("[%d..%d]x[%d..%d]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}
