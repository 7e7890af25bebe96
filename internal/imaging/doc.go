// Package imaging connects maze images on disk to the maze package.
//
// It loads images (BMP, PNG, JPEG, GIF) through a thread-safe cache,
// classifies their pixels into a maze.Grid, paints solutions back onto a copy
// of the source and writes the result in the format named by the output
// file's extension. It also renders debugging overlays of the corridors a
// maze was decomposed into and samples individual pixels.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the
// top-left pixel of the image, whatever its bounds:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Boxes from the geometry package are inclusive on all sides.
//
// # Thread Safety
//
// ImageCache and MazeCache are safe for concurrent use. The remaining
// functions are stateless and never modify the images they are given.
package imaging
