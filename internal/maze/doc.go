// Package maze turns a classified pixel grid into a structural model of a maze
// and solves it.
//
// A maze image uses three reserved colours: entrance, exit and wall. Every
// other colour is open path. Palette.Classify maps a colour to a Feature and a
// Grid holds one Feature per pixel.
//
// # Pipeline
//
// New builds a Maze from a Grid in four eager steps:
//
//  1. Region location: the entrance and exit rectangles are found by sampling
//     the ring just inside the perimeter, then by a full interior scan if needed.
//  2. Validation: a missing entrance, a missing exit and a perimeter that is not
//     entirely wall are each reported. All problems are collected, not just the first.
//  3. Corridor building: every interior "open corner" (a non-wall pixel whose
//     three neighbours in one quadrant are walls) yields two corridor rectangles,
//     one grown width-first and one height-first. Identical corridors are stored once.
//  4. Endpoint corridors: the last corridor found that overlaps the entrance
//     (or exit) becomes the search start (or goal).
//
// The solution is computed lazily by Maze.Solve: a depth-first search over the
// corridors, where two corridors are adjacent when their rectangles share a
// pixel, followed by a trim that narrows each corridor to the part actually
// travelled and cuts the entrance and exit regions out of the ends.
//
// # Limitations
//
// Entrance and exit regions must be solid axis-aligned rectangles. The region
// locator grows a hit pixel left, up, right and down; an L-shaped region is
// measured incorrectly. Movement is orthogonal only and a single solution is
// produced.
//
// # Thread Safety
//
// A Maze is immutable after New returns, apart from the memoized solution,
// which is computed at most once under a sync.Once. A Maze may be shared by
// concurrent readers and solvers.
package maze
