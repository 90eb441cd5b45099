package geometry

// IsPointInRect reports whether point lies inside rect, edges included.
func IsPointInRect(point Point, rect Rect) bool {
	return rect.Contains(point.X, point.Y)
}

// AreRectsIntersecting is an AABB overlap test. Rects that only share an
// edge are separated.
func AreRectsIntersecting(a, b Rect) bool {
	return !(a.X+a.Width <= b.X ||
		b.X+b.Width <= a.X ||
		a.Y+a.Height <= b.Y ||
		b.Y+b.Height <= a.Y)
}

// ccw reports the orientation of triangle abc as the sign of its cross product.
func ccw(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsIntersect reports whether segment ab strictly crosses segment cd.
// Collinear and endpoint-touching segments are not reliably reported.
func SegmentsIntersect(a, b, c, d Point) bool {
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}

// Clamp limits value to [lo, hi]. When lo > hi, lo wins.
func Clamp(value, lo, hi float64) float64 {
	return max(lo, min(value, hi))
}
