package maze

import (
	"fmt"
	"image"

	"github.com/ironsheep/maze-wizard/internal/geometry"
)

// trim turns the raw corridor chain into the solution. The narrowed chain is
// preferred, then the raw chain with the regions carved out, then a pixel
// route through the chain's corridors. The first candidate that walks from
// the entrance to the exit without covering either region is returned.
func trim(chain []geometry.Box, entrance, exit geometry.Box) ([]geometry.Box, error) {
	candidates := []func() []geometry.Box{
		func() []geometry.Box { return clearRegions(narrow(chain, entrance, exit), entrance, exit) },
		func() []geometry.Box { return clearRegions(chain, entrance, exit) },
		func() []geometry.Box { return route(chain, entrance, exit) },
	}
	for _, candidate := range candidates {
		if s := candidate(); walks(s, entrance, exit) {
			return s, nil
		}
	}
	return nil, errUntraceable
}

// walks reports whether chain is a usable solution: it is non-empty, its
// first box shares an edge with the entrance and its last with the exit,
// consecutive boxes share a pixel and no box covers a region pixel.
func walks(chain []geometry.Box, entrance, exit geometry.Box) bool {
	if len(chain) == 0 {
		return false
	}
	if !entrance.Adjacent(chain[0]) || !exit.Adjacent(chain[len(chain)-1]) {
		return false
	}
	for i, b := range chain {
		if b.Intersects(entrance) || b.Intersects(exit) {
			return false
		}
		if i > 0 && !chain[i-1].Intersects(b) {
			return false
		}
	}
	return true
}

// narrow reduces a chain of full-length corridors to the parts actually
// travelled.
//
// Each step takes the front pair (a, b) of the remaining chain and their
// overlap. a keeps only its piece on the side of the previously emitted box
// (or the entrance), extended over the overlap, and is emitted. b keeps only
// its piece on the side of the next corridor (or the exit), extended over the
// overlap, and goes back on the front of the chain. A box with no such piece
// is kept whole, so every emitted box shares the overlap with its successor.
func narrow(chain []geometry.Box, entrance, exit geometry.Box) []geometry.Box {
	// rest is a stack: the front of the chain is the last element.
	rest := make([]geometry.Box, len(chain))
	for i, b := range chain {
		rest[len(chain)-1-i] = b
	}
	pop := func() geometry.Box {
		b := rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		return b
	}

	out := make([]geometry.Box, 0, len(chain))
	for len(rest) > 0 {
		if len(rest) == 1 {
			out = append(out, pop())
			break
		}

		before := entrance
		if len(out) > 0 {
			before = out[len(out)-1]
		}
		a, b := pop(), pop()
		after := exit
		if len(rest) > 0 {
			after = rest[len(rest)-1]
		}

		overlap, ok := a.Intersect(b)
		if !ok {
			panic(fmt.Sprintf("maze: consecutive corridors %v and %v do not intersect", a, b))
		}

		if piece, ok := reduce(a, overlap, before); ok {
			a = piece
		}
		out = append(out, a)
		if piece, ok := reduce(b, overlap, after); ok {
			b = piece
		}
		rest = append(rest, b)
	}

	return out
}

// reduce cuts box at overlap and returns the remaining piece that meets
// neighbor, grown back over the cut. When neighbor meets only the cut, the
// cut itself is returned.
func reduce(box, overlap, neighbor geometry.Box) (geometry.Box, bool) {
	cut := box.Slab(overlap)
	for _, piece := range box.Split(cut) {
		if piece.Intersects(neighbor) {
			return piece.Union(cut), true
		}
	}
	if cut.Intersects(neighbor) {
		return cut, true
	}
	return geometry.Box{}, false
}

// clearRegions removes the entrance and exit regions from a chain so that
// painting the solution leaves them visible.
//
// The chain is first cut down to the stretch between the last box that
// reaches the entrance and the first box after it that reaches the exit;
// only its end boxes can then overlap a region. The regions are carved out
// of those, and end boxes that lie wholly inside a region are dropped.
func clearRegions(chain []geometry.Box, entrance, exit geometry.Box) []geometry.Box {
	start := 0
	for i, b := range chain {
		if b.Intersects(entrance) {
			start = i
		}
	}
	out := make([]geometry.Box, len(chain)-start)
	copy(out, chain[start:])
	for i, b := range out {
		if b.Intersects(exit) {
			out = out[:i+1]
			break
		}
	}

	for len(out) > 0 {
		last := len(out) - 1
		anchor := entrance
		if last > 0 {
			anchor = out[last-1]
		}
		if tail, ok := carve(out[last], exit, anchor); ok {
			out[last] = tail
			break
		}
		out = out[:last]
	}

	for len(out) > 0 {
		anchor := exit
		if len(out) > 1 {
			anchor = out[1]
		}
		if head, ok := carve(out[0], entrance, anchor); ok {
			out[0] = head
			break
		}
		out = out[1:]
	}

	return out
}

// carve removes a full slab of box covering region and returns the piece
// that best connects to anchor: one overlapping it, else one sharing an edge
// with it, else one touching it at a corner. When region spans neither of
// box's axes both slab orientations are tried. carve returns false when
// nothing of box survives.
func carve(box, region, anchor geometry.Box) (geometry.Box, bool) {
	overlap, ok := box.Intersect(region)
	if !ok {
		return box, true
	}

	cuts := []geometry.Box{box.Slab(overlap)}
	if !box.SpansX(overlap) && !box.SpansY(overlap) {
		column := geometry.Box{MinX: overlap.MinX, MaxX: overlap.MaxX, MinY: box.MinY, MaxY: box.MaxY}
		row := geometry.Box{MinX: box.MinX, MaxX: box.MaxX, MinY: overlap.MinY, MaxY: overlap.MaxY}
		if cuts[0] == column {
			cuts = append(cuts, row)
		} else {
			cuts = append(cuts, column)
		}
	}

	var pieces []geometry.Box
	for _, cut := range cuts {
		pieces = append(pieces, box.Split(cut)...)
	}
	if len(pieces) == 0 {
		return geometry.Box{}, false
	}

	for _, connects := range []func(geometry.Box) bool{anchor.Intersects, anchor.Adjacent, anchor.Touches} {
		for _, p := range pieces {
			if connects(p) {
				return p, true
			}
		}
	}
	return pieces[0], true
}

// steps are the four orthogonal moves in the order route tries them.
var steps = [...]image.Point{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

// route searches breadth-first for the shortest pixel path that starts
// beside the entrance, ends beside the exit and stays inside the corridors
// of chain without entering either region. The path is returned as straight
// runs; consecutive runs share their corner pixel. route returns nil when no
// such path exists.
func route(chain []geometry.Box, entrance, exit geometry.Box) []geometry.Box {
	open := func(p image.Point) bool {
		if entrance.Contains(p.X, p.Y) || exit.Contains(p.X, p.Y) {
			return false
		}
		for _, b := range chain {
			if b.Contains(p.X, p.Y) {
				return true
			}
		}
		return false
	}
	besideExit := func(p image.Point) bool {
		return exit.Adjacent(geometry.NewBox(p.X, p.X, p.Y, p.Y))
	}

	parent := make(map[image.Point]image.Point)
	var queue []image.Point
	for _, p := range border(entrance) {
		if _, seen := parent[p]; !seen && open(p) {
			parent[p] = p
			queue = append(queue, p)
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if besideExit(p) {
			return runs(pathTo(parent, p))
		}
		for _, s := range steps {
			q := p.Add(s)
			if _, seen := parent[q]; seen || !open(q) {
				continue
			}
			parent[q] = p
			queue = append(queue, q)
		}
	}
	return nil
}

// border lists the pixels orthogonally beside b: the row above, the column
// to the left, the column to the right, then the row below.
func border(b geometry.Box) []image.Point {
	var out []image.Point
	for x := b.MinX; x <= b.MaxX; x++ {
		out = append(out, image.Pt(x, b.MinY-1))
	}
	for y := b.MinY; y <= b.MaxY; y++ {
		out = append(out, image.Pt(b.MinX-1, y))
	}
	for y := b.MinY; y <= b.MaxY; y++ {
		out = append(out, image.Pt(b.MaxX+1, y))
	}
	for x := b.MinX; x <= b.MaxX; x++ {
		out = append(out, image.Pt(x, b.MaxY+1))
	}
	return out
}

// pathTo follows parent links from p back to a start pixel, which is its own
// parent, and returns the path in walking order.
func pathTo(parent map[image.Point]image.Point, p image.Point) []image.Point {
	path := []image.Point{p}
	for parent[p] != p {
		p = parent[p]
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// runs splits a 4-connected pixel path into its straight stretches.
func runs(path []image.Point) []geometry.Box {
	if len(path) == 1 {
		return []geometry.Box{spanBox(path[0].X, path[0].Y, path[0].X, path[0].Y)}
	}

	var out []geometry.Box
	start := 0
	for i := 1; i < len(path); i++ {
		if i+1 < len(path) && path[i+1].Sub(path[i]) == path[i].Sub(path[i-1]) {
			continue
		}
		out = append(out, spanBox(path[start].X, path[start].Y, path[i].X, path[i].Y))
		start = i
	}
	return out
}
