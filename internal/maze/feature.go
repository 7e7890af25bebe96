package maze

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Feature is the role a pixel plays in the maze.
type Feature uint8

const (
	// Path is open space. It is the zero value: any colour that is not
	// reserved, including transparent pixels, is path.
	Path Feature = iota
	// Wall blocks movement.
	Wall
	// Entrance marks the start region.
	Entrance
	// Exit marks the goal region.
	Exit
)

func (f Feature) String() string {
	switch f {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case Entrance:
		return "entrance"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// Default reserved colours.
var (
	EntranceColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	ExitColor     = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	WallColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// Palette holds the reserved colours that classify pixels.
//
// With a zero Tolerance a colour must match a reserved colour exactly
// (8-bit RGBA). A positive Tolerance also accepts colours whose CIE Lab
// distance to the reserved colour is at most Tolerance, which helps with
// lossy formats such as JPEG. Alpha must always match exactly.
type Palette struct {
	Entrance  color.Color
	Exit      color.Color
	Wall      color.Color
	Tolerance float64
}

// DefaultPalette returns the red entrance, blue exit, black wall palette
// with exact matching.
func DefaultPalette() Palette {
	return Palette{
		Entrance: EntranceColor,
		Exit:     ExitColor,
		Wall:     WallColor,
	}
}

// Classify maps a colour sample to its Feature. Reserved colours are tested
// in the order entrance, exit, wall; anything else is Path.
func (p Palette) Classify(c color.Color) Feature {
	sample := color.NRGBAModel.Convert(c).(color.NRGBA)

	switch {
	case p.matches(sample, p.Entrance):
		return Entrance
	case p.matches(sample, p.Exit):
		return Exit
	case p.matches(sample, p.Wall):
		return Wall
	}
	return Path
}

func (p Palette) matches(sample color.NRGBA, reserved color.Color) bool {
	if reserved == nil {
		return false
	}
	want := color.NRGBAModel.Convert(reserved).(color.NRGBA)
	if sample == want {
		return true
	}
	if p.Tolerance <= 0 || sample.A != want.A {
		return false
	}

	got, ok := colorful.MakeColor(sample)
	if !ok {
		return false
	}
	ref, ok := colorful.MakeColor(want)
	if !ok {
		return false
	}
	return got.DistanceLab(ref) <= p.Tolerance
}
