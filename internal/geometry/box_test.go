package geometry

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallBoxes enumerates every box inside a 4x4 area.
func smallBoxes() []Box {
	var boxes []Box
	for minX := 0; minX < 4; minX++ {
		for maxX := minX; maxX < 4; maxX++ {
			for minY := 0; minY < 4; minY++ {
				for maxY := minY; maxY < 4; maxY++ {
					boxes = append(boxes, NewBox(minX, maxX, minY, maxY))
				}
			}
		}
	}
	return boxes
}

func TestNewBox_Panics(t *testing.T) {
	tests := []struct {
		name                   string
		minX, maxX, minY, maxY int
	}{
		{"negative x", -1, 2, 0, 2},
		{"negative y", 0, 2, -1, 2},
		{"inverted x", 3, 2, 0, 2},
		{"inverted y", 0, 2, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { NewBox(tt.minX, tt.maxX, tt.minY, tt.maxY) })
		})
	}
}

func TestBox_Equality(t *testing.T) {
	assert.Equal(t, NewBox(1, 10, 1, 10), NewBox(1, 10, 1, 10))
	assert.True(t, NewBox(1, 10, 1, 10) == NewBox(1, 10, 1, 10))
	assert.False(t, NewBox(1, 10, 1, 10) == NewBox(1, 10, 1, 9))
}

func TestBox_Dimensions(t *testing.T) {
	b := NewBox(2, 4, 3, 3)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 1, b.Height())
	assert.Equal(t, 3, b.Area())
}

func TestBox_Shift(t *testing.T) {
	b := NewBox(1, 2, 1, 2)

	assert.Equal(t, NewBox(4, 5, 0, 1), b.Shift(3, -1))
	assert.Equal(t, NewBox(1, 2, 1, 2), b, "Shift must not modify the receiver")
	assert.Panics(t, func() { b.Shift(-2, 0) })
}

func TestBox_Intersect(t *testing.T) {
	a := NewBox(1, 2, 1, 2)
	b := NewBox(2, 3, 2, 3)

	got, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, NewBox(2, 2, 2, 2), got)
	assert.True(t, a.Intersects(b))

	_, ok = a.Intersect(NewBox(3, 4, 1, 2))
	assert.False(t, ok)
	assert.False(t, a.Intersects(NewBox(3, 4, 1, 2)))
}

func TestBox_IntersectSymmetry(t *testing.T) {
	boxes := smallBoxes()
	for _, a := range boxes {
		for _, b := range boxes {
			ab, okAB := a.Intersect(b)
			ba, okBA := b.Intersect(a)

			if okAB != okBA || (okAB && ab != ba) {
				t.Fatalf("Intersect not symmetric for %v and %v", a, b)
			}
			if a.Intersects(b) != b.Intersects(a) {
				t.Fatalf("Intersects not symmetric for %v and %v", a, b)
			}
			if a.Intersects(b) != okAB {
				t.Fatalf("Intersects(%v, %v) = %v, Intersect ok = %v", a, b, a.Intersects(b), okAB)
			}
		}
	}
}

func TestBox_Touches(t *testing.T) {
	a := NewBox(1, 1, 1, 1)

	assert.True(t, a.Touches(NewBox(1, 1, 1, 1)))
	assert.True(t, a.Touches(NewBox(2, 5, 1, 1)))
	assert.True(t, a.Touches(NewBox(2, 2, 2, 2)))
	assert.True(t, a.Touches(NewBox(0, 0, 0, 0)))
	assert.False(t, a.Touches(NewBox(3, 3, 1, 1)))
	assert.False(t, a.Touches(NewBox(1, 1, 3, 4)))
}

func TestBox_Adjacent(t *testing.T) {
	b := NewBox(2, 4, 2, 4)

	assert.True(t, b.Adjacent(NewBox(3, 3, 3, 3)), "inside")
	assert.True(t, b.Adjacent(NewBox(5, 6, 3, 3)), "right edge")
	assert.True(t, b.Adjacent(NewBox(2, 2, 0, 1)), "top edge")
	assert.False(t, b.Adjacent(NewBox(5, 5, 5, 5)), "corner only")
	assert.True(t, b.Touches(NewBox(5, 5, 5, 5)), "corner still touches")
	assert.False(t, b.Adjacent(NewBox(6, 6, 3, 3)), "gap")

	for _, a := range smallBoxes() {
		for _, c := range smallBoxes() {
			if a.Adjacent(c) != c.Adjacent(a) {
				t.Fatalf("Adjacent not symmetric for %v and %v", a, c)
			}
			if a.Intersects(c) && !a.Adjacent(c) {
				t.Fatalf("%v intersects %v but is not adjacent", a, c)
			}
			if a.Adjacent(c) && !a.Touches(c) {
				t.Fatalf("%v is adjacent to %v but does not touch", a, c)
			}
		}
	}
}

func TestBox_Union(t *testing.T) {
	got := NewBox(1, 1, 1, 7).Union(NewBox(1, 8, 8, 8))
	assert.Equal(t, NewBox(1, 8, 1, 8), got)
}

func TestBox_Split(t *testing.T) {
	box := NewBox(0, 9, 0, 4)

	tests := []struct {
		name      string
		delimiter Box
		want      []Box
	}{
		{"full height middle", NewBox(3, 5, 0, 4), []Box{NewBox(6, 9, 0, 4), NewBox(0, 2, 0, 4)}},
		{"full height left edge", NewBox(0, 2, 0, 4), []Box{NewBox(3, 9, 0, 4)}},
		{"full height right edge", NewBox(7, 9, 0, 4), []Box{NewBox(0, 6, 0, 4)}},
		{"full width middle", NewBox(0, 9, 2, 2), []Box{NewBox(0, 9, 3, 4), NewBox(0, 9, 0, 1)}},
		{"full width top", NewBox(0, 9, 0, 0), []Box{NewBox(0, 9, 1, 4)}},
		{"whole box", box, []Box{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, box.Split(tt.delimiter)); diff != "" {
				t.Errorf("Split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBox_SplitRejectsPartialDelimiter(t *testing.T) {
	box := NewBox(0, 9, 0, 4)
	assert.Panics(t, func() { box.Split(NewBox(2, 3, 1, 2)) })
}

func TestBox_SplitReconstructs(t *testing.T) {
	for _, a := range smallBoxes() {
		for _, d := range smallBoxes() {
			if !a.SpansX(d) && !a.SpansY(d) {
				continue
			}
			if _, ok := a.Intersect(d); !ok || d.Union(a) != a {
				continue // delimiter must lie inside a
			}

			pieces := a.Split(d)
			covered := d.Area()
			for i, p := range pieces {
				require.False(t, p.Intersects(d), "piece %v overlaps delimiter %v", p, d)
				require.Equal(t, a, a.Union(p), "piece %v escapes %v", p, a)
				for _, q := range pieces[i+1:] {
					require.False(t, p.Intersects(q), "pieces %v and %v overlap", p, q)
				}
				covered += p.Area()
			}
			require.Equal(t, a.Area(), covered, "split of %v by %v loses pixels", a, d)
		}
	}
}

func TestBox_Slab(t *testing.T) {
	wide := NewBox(0, 9, 0, 2)
	tall := NewBox(0, 2, 0, 9)

	assert.Equal(t, NewBox(4, 5, 0, 2), wide.Slab(NewBox(4, 5, 1, 1)))
	assert.Equal(t, NewBox(0, 2, 4, 5), tall.Slab(NewBox(1, 1, 4, 5)))
	assert.Equal(t, NewBox(0, 9, 1, 1), wide.Slab(NewBox(0, 9, 1, 1)))
}

func TestBox_Points(t *testing.T) {
	want := []image.Point{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	if diff := cmp.Diff(want, NewBox(1, 2, 2, 3).Points()); diff != "" {
		t.Errorf("Points mismatch (-want +got):\n%s", diff)
	}
}

func TestBox_Rectangle(t *testing.T) {
	assert.Equal(t, image.Rect(1, 2, 4, 3), NewBox(1, 3, 2, 2).Rectangle())
	assert.Equal(t, "[1..3]x[2..2]", NewBox(1, 3, 2, 2).String())
}
