package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/sceneedit/internal/geometry"
)

var (
	areaRect = geometry.Rect{X: 100, Y: 100, Width: 400, Height: 400}

	allowedPentagon = geometry.Polygon{
		{X: 760, Y: 130}, {X: 1040, Y: 100}, {X: 1180, Y: 320}, {X: 980, Y: 520}, {X: 700, Y: 430},
	}
	forbiddenPentagon = geometry.Polygon{
		{X: 760, Y: 140}, {X: 1020, Y: 120}, {X: 1160, Y: 330}, {X: 980, Y: 500}, {X: 730, Y: 430},
	}

	rectSize = geometry.Size{Width: 90, Height: 70}
	polySize = geometry.Size{Width: 80, Height: 60}
)

func TestAllowedRectClampsEachAxis(t *testing.T) {
	drag := NewDrag(geometry.Point{X: 130, Y: 130}, rectSize, AllowedRect{Area: areaRect})

	pos, outcome := drag.Propose(geometry.Point{X: 200, Y: 150})
	assert.Equal(t, Accepted, outcome)
	assert.Equal(t, geometry.Point{X: 200, Y: 150}, pos)

	pos, outcome = drag.Propose(geometry.Point{X: 50, Y: 600})
	assert.Equal(t, Clamped, outcome)
	assert.Equal(t, geometry.Point{X: 100, Y: 430}, pos)
	assert.Equal(t, pos, drag.Position())
}

func TestAllowedPolygonRejectsToLastPosition(t *testing.T) {
	drag := NewDrag(geometry.Point{X: 860, Y: 220}, polySize, AllowedPolygon{Area: allowedPentagon})

	pos, outcome := drag.Propose(geometry.Point{X: 870, Y: 230})
	require.Equal(t, Accepted, outcome)
	assert.Equal(t, geometry.Point{X: 870, Y: 230}, pos)

	// Two corners fall outside the right edge.
	pos, outcome = drag.Propose(geometry.Point{X: 1100, Y: 300})
	assert.Equal(t, Rejected, outcome)
	assert.Equal(t, geometry.Point{X: 870, Y: 230}, pos)
	assert.True(t, drag.Moved())
}

func TestForbiddenRect(t *testing.T) {
	drag := NewDrag(geometry.Point{X: 540, Y: 200}, rectSize, ForbiddenRect{Area: areaRect})

	// Touching the zone edge is not an overlap.
	pos, outcome := drag.Propose(geometry.Point{X: 500, Y: 200})
	assert.Equal(t, Accepted, outcome)
	assert.Equal(t, geometry.Point{X: 500, Y: 200}, pos)

	pos, outcome = drag.Propose(geometry.Point{X: 495, Y: 200})
	assert.Equal(t, Rejected, outcome)
	assert.Equal(t, geometry.Point{X: 500, Y: 200}, pos)
}

func TestForbiddenPolygon(t *testing.T) {
	drag := NewDrag(geometry.Point{X: 620, Y: 560}, polySize, ForbiddenPolygon{Area: forbiddenPentagon})

	_, outcome := drag.Propose(geometry.Point{X: 640, Y: 560})
	assert.Equal(t, Accepted, outcome)

	pos, outcome := drag.Propose(geometry.Point{X: 850, Y: 250})
	assert.Equal(t, Rejected, outcome)
	assert.Equal(t, geometry.Point{X: 640, Y: 560}, pos)
}

func TestBoundChainsZones(t *testing.T) {
	zones := []Zone{
		AllowedRect{Area: geometry.Rect{X: 0, Y: 0, Width: 1000, Height: 1000}},
		ForbiddenRect{Area: geometry.Rect{X: 400, Y: 400, Width: 100, Height: 100}},
	}
	last := geometry.Point{X: 10, Y: 10}

	pos, outcome := Bound(geometry.Point{X: 2000, Y: 10}, last, rectSize, zones...)
	assert.Equal(t, Clamped, outcome)
	assert.Equal(t, geometry.Point{X: 910, Y: 10}, pos)

	pos, outcome = Bound(geometry.Point{X: 420, Y: 420}, last, rectSize, zones...)
	assert.Equal(t, Rejected, outcome)
	assert.Equal(t, last, pos)

	pos, outcome = Bound(geometry.Point{X: 1, Y: 1}, last, rectSize)
	assert.Equal(t, Accepted, outcome)
	assert.Equal(t, geometry.Point{X: 1, Y: 1}, pos)
}

func TestInteractive(t *testing.T) {
	zone := AllowedPolygon{Area: allowedPentagon}

	assert.True(t, Interactive(geometry.Point{X: 860, Y: 220}, polySize, zone))
	assert.False(t, Interactive(geometry.Point{X: 120, Y: 640}, geometry.Size{Width: 140, Height: 90}, zone))
	assert.True(t, zone.AllowsPoint(geometry.Point{X: 900, Y: 300}))
	assert.False(t, zone.AllowsPoint(geometry.Point{X: 10, Y: 10}))
}

func TestSpecZone(t *testing.T) {
	zones, err := DecodeSpecs([]byte(`[
		{"kind": "allowed", "rect": {"x": 0, "y": 0, "width": 10, "height": 10}},
		{"kind": "forbidden", "polygon": [{"x": 0, "y": 0}, {"x": 5, "y": 0}, {"x": 0, "y": 5}]}
	]`))
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.IsType(t, AllowedRect{}, zones[0])
	assert.IsType(t, ForbiddenPolygon{}, zones[1])

	_, err = Spec{Kind: "allowed"}.Zone()
	assert.Error(t, err)

	_, err = Spec{Kind: "sideways", Rect: &geometry.Rect{}}.Zone()
	assert.Error(t, err)

	_, err = DecodeSpecs([]byte(`{`))
	assert.Error(t, err)
}
