package field

import "math"

// Point is a position in field units.
type Point struct {
	X float64
	Y float64
}

// Valid reports whether both coordinates are finite. Tracking pipelines emit
// NaN coordinates for frames where a detection dropped out; those entries are
// skipped when drawing.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Path is an ordered polyline of positions, typically one tracked entity's
// movement over time.
type Path []Point

// Missing returns the canonical invalid point used for dropped detections.
func Missing() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}
