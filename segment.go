package shapes

import "math"

// Segment is a single line, Bézier or arc primitive of a path. Segments are immutable value types; Transform returns a new segment of the same kind.
type Segment interface {
	// Start returns the segment's start point.
	Start() Point
	// End returns the segment's end point.
	End() Point
	// Transform returns the segment transformed by the affine transformation matrix.
	Transform(m Matrix) Segment
	// Flatten appends the polyline approximation of the segment to points, excluding the start point. The deviation from the segment is at most flatness.
	Flatten(points []Point, flatness float64) []Point
}

// LineSegment is a straight line between two points.
type LineSegment struct {
	P0, P1 Point
}

func (s LineSegment) Start() Point {
	return s.P0
}

func (s LineSegment) End() Point {
	return s.P1
}

func (s LineSegment) Transform(m Matrix) Segment {
	return LineSegment{m.Dot(s.P0), m.Dot(s.P1)}
}

func (s LineSegment) Flatten(points []Point, flatness float64) []Point {
	return append(points, s.P1)
}

// QuadSegment is a quadratic Bézier from P0 to P1 with control point CP.
type QuadSegment struct {
	P0, CP, P1 Point
}

func (s QuadSegment) Start() Point {
	return s.P0
}

func (s QuadSegment) End() Point {
	return s.P1
}

func (s QuadSegment) Transform(m Matrix) Segment {
	return QuadSegment{m.Dot(s.P0), m.Dot(s.CP), m.Dot(s.P1)}
}

func (s QuadSegment) Flatten(points []Point, flatness float64) []Point {
	cp1, cp2 := quadToCubic(s.P0, s.CP, s.P1)
	return flattenCubic(points, s.P0, cp1, cp2, s.P1, flatness)
}

// CubeSegment is a cubic Bézier from P0 to P1 with control points CP1 and CP2.
type CubeSegment struct {
	P0, CP1, CP2, P1 Point
}

func (s CubeSegment) Start() Point {
	return s.P0
}

func (s CubeSegment) End() Point {
	return s.P1
}

func (s CubeSegment) Transform(m Matrix) Segment {
	return CubeSegment{m.Dot(s.P0), m.Dot(s.CP1), m.Dot(s.CP2), m.Dot(s.P1)}
}

func (s CubeSegment) Flatten(points []Point, flatness float64) []Point {
	return flattenCubic(points, s.P0, s.CP1, s.CP2, s.P1, flatness)
}

// ArcSegment is an elliptical arc from P0 to P1 with radii RX and RY, where Rot is the counter clockwise rotation of the ellipse in degrees, Large selects the long arc between the end points, and Sweep selects the clockwise direction.
type ArcSegment struct {
	P0           Point
	RX, RY, Rot  float64
	Large, Sweep bool
	P1           Point
}

func (s ArcSegment) Start() Point {
	return s.P0
}

func (s ArcSegment) End() Point {
	return s.P1
}

// Transform maps the arc through the matrix rotation/scale decomposition. This is exact for translations, rotations, reflections and axis-aligned scaling; under shear the radii are approximated.
func (s ArcSegment) Transform(m Matrix) Segment {
	sx, sy := m.scale()
	sweep := s.Sweep
	if m.Det() < 0.0 {
		sweep = !sweep
	}
	return ArcSegment{
		P0:    m.Dot(s.P0),
		RX:    math.Abs(sx) * s.RX,
		RY:    math.Abs(sy) * s.RY,
		Rot:   s.Rot + m.theta()*180.0/math.Pi,
		Large: s.Large,
		Sweep: sweep,
		P1:    m.Dot(s.P1),
	}
}

func (s ArcSegment) Flatten(points []Point, flatness float64) []Point {
	return flattenArc(points, s.P0, s.RX, s.RY, s.Rot, s.Large, s.Sweep, s.P1, flatness)
}

// segmentsEqual returns true if both segments are of the same kind and their defining points are equal with tolerance Epsilon.
func segmentsEqual(a, b Segment) bool {
	switch sa := a.(type) {
	case LineSegment:
		sb, ok := b.(LineSegment)
		return ok && sa.P0.Equals(sb.P0) && sa.P1.Equals(sb.P1)
	case QuadSegment:
		sb, ok := b.(QuadSegment)
		return ok && sa.P0.Equals(sb.P0) && sa.CP.Equals(sb.CP) && sa.P1.Equals(sb.P1)
	case CubeSegment:
		sb, ok := b.(CubeSegment)
		return ok && sa.P0.Equals(sb.P0) && sa.CP1.Equals(sb.CP1) && sa.CP2.Equals(sb.CP2) && sa.P1.Equals(sb.P1)
	case ArcSegment:
		sb, ok := b.(ArcSegment)
		return ok && sa.P0.Equals(sb.P0) && sa.P1.Equals(sb.P1) &&
			equal(sa.RX, sb.RX) && equal(sa.RY, sb.RY) && equal(sa.Rot, sb.Rot) &&
			sa.Large == sb.Large && sa.Sweep == sb.Sweep
	}
	return false
}
