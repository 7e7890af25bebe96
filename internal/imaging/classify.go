package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/maze-wizard/internal/maze"
)

// ClassifyImage converts every pixel of img into a maze feature using palette.
//
// Rows are classified in parallel. Grid coordinates are relative to the image
// bounds, so (0,0) is always the top-left pixel even for sub-images.
func ClassifyImage(img image.Image, palette maze.Palette) (*maze.Grid, error) {
	bounds := img.Bounds()
	grid, err := maze.NewGrid(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("failed to classify image: %w", err)
	}

	parallel.Line(bounds.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < bounds.Dx(); x++ {
				grid.Set(x, y, palette.Classify(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
			}
		}
	})

	return grid, nil
}

// AnalyzeImage classifies img and builds the maze it depicts. The maze may be
// invalid; check IsValid before relying on its regions.
func AnalyzeImage(img image.Image, palette maze.Palette) (*maze.Maze, error) {
	grid, err := ClassifyImage(img, palette)
	if err != nil {
		return nil, err
	}
	return maze.New(grid), nil
}
