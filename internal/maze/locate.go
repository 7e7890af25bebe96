package maze

import (
	"github.com/ironsheep/maze-wizard/internal/geometry"
)

// perimeterStrideRatio is the fraction of a dimension skipped between samples
// when sampling the inner ring. Entrances and exits are assumed to be wider
// than one pixel, so sparse sampling finds them quickly on large images.
const perimeterStrideRatio = 0.05

// region is an optional rectangle.
type region struct {
	box   geometry.Box
	found bool
}

func (r region) get() (geometry.Box, bool) { return r.box, r.found }

// regionLocator finds the entrance and exit rectangles of a grid.
type regionLocator struct {
	grid     *Grid
	entrance region
	exit     region
}

// locateRegions returns the entrance and exit regions of g. A region that is
// never found is returned with found == false.
func locateRegions(g *Grid) (entrance, exit region) {
	l := &regionLocator{grid: g}

	// Most mazes put their ports on the border: sample the inner ring first.
	l.scanInnerRing()
	if !l.done() {
		l.scanInterior()
	}
	return l.entrance, l.exit
}

func (l *regionLocator) done() bool {
	return l.entrance.found && l.exit.found
}

// scanInnerRing samples the ring one pixel inside the perimeter with a stride
// of 5% of each dimension, shifting the starting offset by one pixel per pass
// until every offset within the stride has been tried.
func (l *regionLocator) scanInnerRing() {
	w, h := l.grid.Width(), l.grid.Height()
	xStride := max(1, int(float64(w)*perimeterStrideRatio))
	yStride := max(1, int(float64(h)*perimeterStrideRatio))

	for xStart, yStart := 1, 1; (xStart <= xStride || yStart <= yStride) && !l.done(); xStart, yStart = xStart+1, yStart+1 {
		if xStart <= xStride {
			for x := xStart; x < w && !l.done(); x += xStride {
				l.claim(x, 1)
				l.claim(x, h-2)
			}
		}
		if l.done() {
			return
		}

		if yStart <= yStride {
			for y := yStart; y < h && !l.done(); y += yStride {
				l.claim(1, y)
				l.claim(w-2, y)
			}
		}
	}
}

// scanInterior visits every interior pixel in row-major order.
func (l *regionLocator) scanInterior() {
	for y := 1; y < l.grid.Height()-1; y++ {
		for x := 1; x < l.grid.Width()-1; x++ {
			l.claim(x, y)
			if l.done() {
				return
			}
		}
	}
}

// claim takes the region under (x, y) if it is an entrance or exit pixel
// whose region has not been found yet.
func (l *regionLocator) claim(x, y int) {
	switch f := l.grid.At(x, y); {
	case f == Entrance && !l.entrance.found:
		l.entrance = region{box: l.survey(x, y, f), found: true}
	case f == Exit && !l.exit.found:
		l.exit = region{box: l.survey(x, y, f), found: true}
	}
}

// survey measures the rectangle of feature f containing (x, y) by walking
// left, then up, then right, then down while the feature persists. The
// result is only correct for solid axis-aligned rectangles.
func (l *regionLocator) survey(x, y int, f Feature) geometry.Box {
	g := l.grid

	for g.At(x-1, y) == f {
		x--
	}
	minX := x

	for g.At(x, y-1) == f {
		y--
	}
	minY := y

	for g.At(x+1, y) == f {
		x++
	}
	maxX := x

	for g.At(x, y+1) == f {
		y++
	}
	maxY := y

	return geometry.NewBox(minX, maxX, minY, maxY)
}
