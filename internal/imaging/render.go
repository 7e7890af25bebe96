package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/maze-wizard/internal/geometry"
)

// DefaultHighlight is the colour solutions are painted in.
var DefaultHighlight = color.NRGBA{R: 0, G: 255, B: 0, A: 255}

// PaintSolution returns a copy of img with every pixel covered by the
// solution boxes set to c. Overlapping boxes are fine. Box coordinates are
// relative to the top-left corner of img. img itself is not modified.
func PaintSolution(img image.Image, solution []geometry.Box, c color.Color) *image.NRGBA {
	canvas := imaging.Clone(img)
	bounds := canvas.Bounds()

	for _, b := range solution {
		for _, p := range b.Points() {
			if p.In(bounds) {
				canvas.Set(p.X, p.Y, c)
			}
		}
	}
	return canvas
}

// Save writes img to path, choosing the encoder from the file extension
// (bmp, png, jpg/jpeg, gif, tif/tiff).
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// ParseHexColor parses an opaque colour written as "#RRGGBB", "RRGGBB" or
// the short forms "#RGB" and "RGB".
func ParseHexColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
