package constraint

import (
	"encoding/json"
	"fmt"

	"github.com/inamate/sceneedit/internal/geometry"
)

// Outcome describes what a zone did with a proposed position.
type Outcome string

const (
	Accepted Outcome = "accepted"
	Clamped  Outcome = "clamped"
	Rejected Outcome = "rejected"
)

// Zone restricts where a dragged object of a given size may be placed.
type Zone interface {
	// Bound maps a candidate position to the position the object should take.
	// last is the most recent accepted position, returned on rejection.
	Bound(candidate, last geometry.Point, size geometry.Size) (geometry.Point, Outcome)
	// Permits reports whether an object at pos is currently in a legal place.
	Permits(pos geometry.Point, size geometry.Size) bool
}

// AllowedRect keeps the object fully inside Area by clamping each axis.
type AllowedRect struct {
	Area geometry.Rect
}

func (z AllowedRect) Bound(candidate, _ geometry.Point, size geometry.Size) (geometry.Point, Outcome) {
	next := geometry.Point{
		X: geometry.Clamp(candidate.X, z.Area.X, z.Area.X+z.Area.Width-size.Width),
		Y: geometry.Clamp(candidate.Y, z.Area.Y, z.Area.Y+z.Area.Height-size.Height),
	}
	if next == candidate {
		return next, Accepted
	}
	return next, Clamped
}

func (z AllowedRect) Permits(pos geometry.Point, size geometry.Size) bool {
	return pos.X >= z.Area.X && pos.Y >= z.Area.Y &&
		pos.X+size.Width <= z.Area.X+z.Area.Width &&
		pos.Y+size.Height <= z.Area.Y+z.Area.Height
}

// AllowedPolygon accepts positions whose corners all lie inside Area.
type AllowedPolygon struct {
	Area geometry.Polygon
}

func (z AllowedPolygon) Bound(candidate, last geometry.Point, size geometry.Size) (geometry.Point, Outcome) {
	if z.Permits(candidate, size) {
		return candidate, Accepted
	}
	return last, Rejected
}

func (z AllowedPolygon) Permits(pos geometry.Point, size geometry.Size) bool {
	return geometry.IsRectInsidePolygon(pos, size, z.Area)
}

// AllowsPoint reports whether a pointer event at p falls inside the zone.
// Events outside it are swallowed by the backdrop.
func (z AllowedPolygon) AllowsPoint(p geometry.Point) bool {
	return geometry.IsPointInPolygon(p, z.Area)
}

// ForbiddenRect rejects any position overlapping Area.
type ForbiddenRect struct {
	Area geometry.Rect
}

func (z ForbiddenRect) Bound(candidate, last geometry.Point, size geometry.Size) (geometry.Point, Outcome) {
	if z.Permits(candidate, size) {
		return candidate, Accepted
	}
	return last, Rejected
}

func (z ForbiddenRect) Permits(pos geometry.Point, size geometry.Size) bool {
	return !geometry.AreRectsIntersecting(geometry.RectFromPos(pos, size), z.Area)
}

// ForbiddenPolygon rejects any position overlapping Area.
type ForbiddenPolygon struct {
	Area geometry.Polygon
}

func (z ForbiddenPolygon) Bound(candidate, last geometry.Point, size geometry.Size) (geometry.Point, Outcome) {
	if z.Permits(candidate, size) {
		return candidate, Accepted
	}
	return last, Rejected
}

func (z ForbiddenPolygon) Permits(pos geometry.Point, size geometry.Size) bool {
	return !geometry.DoesRectIntersectPolygon(geometry.RectFromPos(pos, size), z.Area)
}

// Spec is the wire/script form of a zone. Exactly one of Rect or Polygon is set.
type Spec struct {
	Kind    string           `json:"kind" yaml:"kind"` // "allowed" or "forbidden"
	Rect    *geometry.Rect   `json:"rect,omitempty" yaml:"rect,omitempty"`
	Polygon geometry.Polygon `json:"polygon,omitempty" yaml:"polygon,omitempty"`
}

// Zone builds the Zone s describes.
func (s Spec) Zone() (Zone, error) {
	if (s.Rect == nil) == (len(s.Polygon) == 0) {
		return nil, fmt.Errorf("zone %q: exactly one of rect or polygon is required", s.Kind)
	}

	switch s.Kind {
	case "allowed":
		if s.Rect != nil {
			return AllowedRect{Area: *s.Rect}, nil
		}
		return AllowedPolygon{Area: s.Polygon}, nil
	case "forbidden":
		if s.Rect != nil {
			return ForbiddenRect{Area: *s.Rect}, nil
		}
		return ForbiddenPolygon{Area: s.Polygon}, nil
	default:
		return nil, fmt.Errorf("unknown zone kind: %s", s.Kind)
	}
}

// ParseSpecs converts a list of specs, failing on the first invalid one.
func ParseSpecs(specs []Spec) ([]Zone, error) {
	zones := make([]Zone, 0, len(specs))
	for i, s := range specs {
		z, err := s.Zone()
		if err != nil {
			return nil, fmt.Errorf("zone %d: %w", i, err)
		}
		zones = append(zones, z)
	}
	return zones, nil
}

// DecodeSpecs parses a JSON array of zone specs.
func DecodeSpecs(data []byte) ([]Zone, error) {
	var specs []Spec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("invalid zones: %w", err)
	}
	return ParseSpecs(specs)
}
