package constraint

import "github.com/inamate/sceneedit/internal/geometry"

// Drag tracks one drag gesture of a fixed-size object through a set of zones.
// It is advisory only: nothing here touches the document, so rejected
// positions never reach the undo history.
type Drag struct {
	start geometry.Point
	last  geometry.Point
	size  geometry.Size
	zones []Zone
}

// NewDrag starts a drag at start.
func NewDrag(start geometry.Point, size geometry.Size, zones ...Zone) *Drag {
	return &Drag{
		start: start,
		last:  start,
		size:  size,
		zones: zones,
	}
}

// Propose runs a candidate position through every zone in order.
// A rejection stops the chain and yields the last accepted position; a clamp
// passes the clamped position on to the next zone.
func (d *Drag) Propose(candidate geometry.Point) (geometry.Point, Outcome) {
	pos, outcome := Bound(candidate, d.last, d.size, d.zones...)
	if outcome != Rejected {
		d.last = pos
	}
	return pos, outcome
}

// Position returns the last accepted position.
func (d *Drag) Position() geometry.Point {
	return d.last
}

// Moved reports whether the accepted position differs from the start.
func (d *Drag) Moved() bool {
	return d.last != d.start
}

// Bound evaluates a single proposal without drag state.
func Bound(candidate, last geometry.Point, size geometry.Size, zones ...Zone) (geometry.Point, Outcome) {
	pos := candidate
	result := Accepted

	for _, z := range zones {
		next, outcome := z.Bound(pos, last, size)
		switch outcome {
		case Rejected:
			return last, Rejected
		case Clamped:
			result = Clamped
		}
		pos = next
	}

	return pos, result
}

// Interactive reports whether an object at pos may be picked up at all.
// Objects sitting outside any zone stay inert until moved back by other means.
func Interactive(pos geometry.Point, size geometry.Size, zones ...Zone) bool {
	for _, z := range zones {
		if !z.Permits(pos, size) {
			return false
		}
	}
	return true
}
