package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

// onePixelMaze has single-pixel ports in opposite top corners joined by a
// corridor that runs down, across and back up.
var onePixelMaze = []string{
	"##########",
	"#E#....#X#",
	"#.#....#.#",
	"#.#....#.#",
	"#.#....#.#",
	"#.#....#.#",
	"#.#....#.#",
	"#.######.#",
	"#........#",
	"##########",
}

// createMazeImage paints a text picture ('#' wall, 'E' entrance, 'X' exit,
// anything else path) using the default palette colours.
func createMazeImage(rows ...string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, r := range row {
			c := white
			switch r {
			case '#':
				c = black
			case 'E':
				c = red
			case 'X':
				c = blue
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createMazeFile writes a maze image as PNG into a fresh temp dir and returns its path.
func createMazeFile(t *testing.T, name string, rows ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createMazeImage(rows...)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
