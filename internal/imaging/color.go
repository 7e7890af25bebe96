package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/maze-wizard/internal/maze"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PixelSample describes one pixel of a maze image: its colour and the
// feature that colour classifies as.
type PixelSample struct {
	X       int       `json:"x"`
	Y       int       `json:"y"`
	Hex     string    `json:"hex"` // "#RRGGBB", alpha excluded
	RGBA    RGBAColor `json:"rgba"`
	HSL     HSLColor  `json:"hsl"`
	Feature string    `json:"feature"`
}

// SamplePixel reads the pixel at (x, y) and classifies it with palette.
//
// Coordinates are relative to the top-left corner of img. An error is
// returned if they fall outside the image.
//
// Colour values are reduced to 8 bits per channel and are not premultiplied,
// so a half-transparent red pixel reports R=255, A=128.
func SamplePixel(img image.Image, x, y int, palette maze.Palette) (*PixelSample, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	h, s, l := cf.Hsl()

	return &PixelSample{
		X:    x,
		Y:    y,
		Hex:  fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B),
		RGBA: RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
		Feature: palette.Classify(c).String(),
	}, nil
}
