package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var square = Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

// uShape is concave: a notch from y=40 down to y=100 between x=40 and x=60.
var uShape = Polygon{
	{0, 0}, {100, 0}, {100, 100}, {60, 100},
	{60, 40}, {40, 40}, {40, 100}, {0, 100},
}

func TestIsPointInPolygon(t *testing.T) {
	tests := []struct {
		name    string
		point   Point
		polygon Polygon
		want    bool
	}{
		{"center of square", Point{5, 5}, square, true},
		{"outside square", Point{15, 15}, square, false},
		{"left of square", Point{-1, 5}, square, false},
		{"left arm of U", Point{10, 50}, uShape, true},
		{"inside notch of U", Point{50, 80}, uShape, false},
		{"empty polygon", Point{0, 0}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPointInPolygon(tt.point, tt.polygon))
		})
	}
}

func TestIsRectInsidePolygon(t *testing.T) {
	big := Polygon{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	size := Size{Width: 20, Height: 20}

	assert.True(t, IsRectInsidePolygon(Point{10, 10}, size, big))
	// One corner crosses x=100.
	assert.False(t, IsRectInsidePolygon(Point{90, 10}, size, big))

	t.Run("corner sampling misses concave notch", func(t *testing.T) {
		// Every corner sits in an arm of the U while the rect spans the notch.
		assert.True(t, IsRectInsidePolygon(Point{10, 50}, Size{Width: 80, Height: 40}, uShape))
	})
}

func TestAreRectsIntersecting(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"touching edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"overlapping", Rect{X: 5, Y: 0, Width: 10, Height: 10}, true},
		{"touching below", Rect{X: 0, Y: 10, Width: 10, Height: 10}, false},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"far away", Rect{X: 50, Y: 50, Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreRectsIntersecting(base, tt.other))
			assert.Equal(t, tt.want, AreRectsIntersecting(tt.other, base))
		})
	}
}

func TestDoesRectIntersectPolygon(t *testing.T) {
	triangle := Polygon{{0, 0}, {100, 0}, {50, 100}}
	box := Polygon{{0, 0}, {100, 0}, {100, 100}, {0, 100}}

	tests := []struct {
		name    string
		rect    Rect
		polygon Polygon
		want    bool
	}{
		{"rect corner inside", Rect{X: 40, Y: 10, Width: 5, Height: 5}, triangle, true},
		{"polygon vertex inside rect", Rect{X: -10, Y: -10, Width: 20, Height: 20}, triangle, true},
		{"edges cross only", Rect{X: -10, Y: 40, Width: 120, Height: 20}, box, true},
		{"disjoint", Rect{X: 200, Y: 200, Width: 10, Height: 10}, box, false},
		{"polygon inside rect", Rect{X: -50, Y: -50, Width: 300, Height: 300}, triangle, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DoesRectIntersectPolygon(tt.rect, tt.polygon))
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, SegmentsIntersect(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0}))
	assert.False(t, SegmentsIntersect(Point{0, 0}, Point{10, 0}, Point{0, 5}, Point{10, 5}))
	assert.False(t, SegmentsIntersect(Point{0, 0}, Point{1, 1}, Point{5, 0}, Point{6, -1}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(40, 60))
	assert.False(t, r.Contains(41, 60))
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 40, Height: 60}, r.Union(Rect{X: 0, Y: 0, Width: 5, Height: 5}))
	assert.Equal(t, r, r.Union(Rect{}))
	assert.Equal(t, Rect{X: 5, Y: 5, Width: 10, Height: 10}, Rect{X: 15, Y: 15, Width: -10, Height: -10}.Normalize())
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 10, Height: 10}, square.Bounds())
}

func TestMatrix2D(t *testing.T) {
	m := Translate(100, 50).Multiply(Scale(2, 2))

	p := m.Apply(Point{10, 10})
	assert.Equal(t, Point{120, 70}, p)

	back := m.Invert().Apply(p)
	assert.InDelta(t, 10, back.X, 1e-9)
	assert.InDelta(t, 10, back.Y, 1e-9)

	assert.InDeltaSlice(t, Identity().ToSlice(), m.Multiply(m.Invert()).ToSlice(), 1e-10)
	assert.Equal(t, Identity(), Matrix2D{}.Invert())

	rotated := RotateDegrees(90).Apply(Point{1, 0})
	assert.InDelta(t, 0, rotated.X, 1e-9)
	assert.InDelta(t, 1, rotated.Y, 1e-9)

	bounds := Scale(2, 3).TransformRect(Rect{X: 1, Y: 1, Width: 1, Height: 1})
	assert.Equal(t, Rect{X: 2, Y: 3, Width: 2, Height: 3}, bounds)
}
