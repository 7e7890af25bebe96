package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/maze-wizard/internal/geometry"
	"github.com/ironsheep/maze-wizard/internal/maze"
)

// Overlay colours.
var (
	corridorOutline = color.NRGBA{R: 255, G: 136, B: 0, A: 255}
	portOutline     = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
)

// CorridorOverlayResult contains an image with the corridors of a maze drawn on it.
type CorridorOverlayResult struct {
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	ImageBase64 string         `json:"image_base64"`
	MimeType    string         `json:"mime_type"`
	Corridors   []geometry.Box `json:"corridors"`
}

// RenderCorridors draws the outline of every corridor of m over img, then
// the outlines of the entrance and exit, and returns the result as a
// base64-encoded PNG. When solution is non-empty it is filled in with
// highlight first so the outlines stay visible on top of it.
func RenderCorridors(img image.Image, m *maze.Maze, solution []geometry.Box, highlight color.Color) (*CorridorOverlayResult, error) {
	canvas := PaintSolution(img, solution, highlight)

	corridors := m.Corridors()
	for _, c := range corridors {
		drawOutline(canvas, c, corridorOutline)
	}
	if b, ok := m.Entrance(); ok {
		drawOutline(canvas, b, portOutline)
	}
	if b, ok := m.Exit(); ok {
		drawOutline(canvas, b, portOutline)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := canvas.Bounds()
	return &CorridorOverlayResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Corridors:   corridors,
	}, nil
}

// drawOutline sets the border pixels of b that fall inside img.
func drawOutline(img *image.NRGBA, b geometry.Box, c color.Color) {
	bounds := img.Bounds()
	set := func(x, y int) {
		if (image.Point{X: x, Y: y}).In(bounds) {
			img.Set(x, y, c)
		}
	}

	for x := b.MinX; x <= b.MaxX; x++ {
		set(x, b.MinY)
		set(x, b.MaxY)
	}
	for y := b.MinY; y <= b.MaxY; y++ {
		set(b.MinX, y)
		set(b.MaxX, y)
	}
}
