package geometry

// Polygon is an ordered ring of vertices. The closing edge from the last
// vertex back to the first is implicit.
type Polygon []Point

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}

	minX, minY := p[0].X, p[0].Y
	maxX, maxY := p[0].X, p[0].Y
	for _, v := range p[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// IsPointInPolygon runs a ray-casting parity test. Points exactly on the
// boundary get whatever the parity test yields; they are not special-cased.
func IsPointInPolygon(point Point, polygon Polygon) bool {
	inside := false

	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		crosses := (yi > point.Y) != (yj > point.Y) &&
			point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi
		if crosses {
			inside = !inside
		}
	}

	return inside
}

// IsRectInsidePolygon reports whether all four corners of the rect at pos
// with size lie inside the polygon.
//
// This samples corners only. A concave polygon whose boundary cuts through
// a rect edge without capturing a corner still reports containment.
func IsRectInsidePolygon(pos Point, size Size, polygon Polygon) bool {
	for _, corner := range RectFromPos(pos, size).Corners() {
		if !IsPointInPolygon(corner, polygon) {
			return false
		}
	}
	return true
}

// DoesRectIntersectPolygon reports whether the rect and polygon overlap:
// a rect corner inside the polygon, a polygon vertex inside the rect, or any
// rect edge strictly crossing any polygon edge.
//
// Collinear overlaps are not detected by the crossing test, so the result is
// approximate in degenerate configurations.
func DoesRectIntersectPolygon(rect Rect, polygon Polygon) bool {
	for _, corner := range rect.Corners() {
		if IsPointInPolygon(corner, polygon) {
			return true
		}
	}

	for _, v := range polygon {
		if IsPointInRect(v, rect) {
			return true
		}
	}

	edges := rect.Edges()
	for i := range polygon {
		p1 := polygon[i]
		p2 := polygon[(i+1)%len(polygon)]

		for _, e := range edges {
			if SegmentsIntersect(e[0], e[1], p1, p2) {
				return true
			}
		}
	}

	return false
}
