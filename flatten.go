package shapes

import "math"

// Tolerance is the maximum deviation from the original path when flattening curved segments, in the same unit as the path coordinates.
var Tolerance = 0.01

// splitCubic splits the cubic Bézier at t using De Casteljau's algorithm, returning the control points of both halves.
func splitCubic(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// flattenSmoothCubic splits the curve and replaces it by lines as long as the maximum deviation (flatness) is maintained. The curve must not contain inflection points or cusps. The start point p0 is not appended.
func flattenSmoothCubic(points []Point, p0, p1, p2, p3 Point, flatness float64) []Point {
	t := 0.0
	for t < 1.0 {
		s2nom := (p2.X-p0.X)*(p1.Y-p0.Y) - (p2.Y-p0.Y)*(p1.X-p0.X)
		s2denom := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
		if s2nom*s2denom == 0.0 {
			break
		}
		t = 2.0 * math.Sqrt(flatness/3.0*math.Abs(s2denom/s2nom))
		if t >= 1.0 {
			break
		}
		_, _, _, _, p0, p1, p2, p3 = splitCubic(p0, p1, p2, p3, t)
		points = append(points, p0)
	}
	return append(points, p3)
}

// findInflectionsCubic returns the parameters of the inflection points or cusp of the cubic Bézier, or NaN when they do not exist within [0,1].
func findInflectionsCubic(p0, p1, p2, p3 Point) (float64, float64) {
	ax := -p0.X + 3.0*p1.X - 3.0*p2.X + p3.X
	ay := -p0.Y + 3.0*p1.Y - 3.0*p2.Y + p3.Y
	bx := 3.0*p0.X - 6.0*p1.X + 3.0*p2.X
	by := 3.0*p0.Y - 6.0*p1.Y + 3.0*p2.Y
	cx := -3.0*p0.X + 3.0*p1.X
	cy := -3.0*p0.Y + 3.0*p1.Y

	tcusp := -0.5 * ((ay*cx - ax*cy) / (ay*bx - ax*by))
	if !(tcusp >= 0.0 && tcusp <= 1.0) { // handles NaN and Infs too
		return math.NaN(), math.NaN()
	}

	discriminant := tcusp*tcusp - ((by*cx-bx*cy)/(ay*bx-ax*by))/3.0
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return tcusp, math.NaN()
	}
	q := math.Sqrt(discriminant)
	return tcusp - q, tcusp + q
}

// inflectionRange returns the range around inflection point t over which the curve stays within flatness when approximated linearly.
func inflectionRange(p0, p1, p2, p3 Point, t, flatness float64) (float64, float64) {
	if math.IsNaN(t) {
		return math.Inf(1), math.Inf(1)
	}

	// s(t) aligned perpendicular to the curve at t=0; at inflection points s2=0 so that s(t)=s3*t^3
	_, _, _, _, p0, p1, p2, p3 = splitCubic(p0, p1, p2, p3, t)
	nr := p1.Sub(p0)
	ns := p3.Sub(p0)
	if nr.X == 0.0 && nr.Y == 0.0 {
		// if p0=p1, the velocity at t=0 needs adjustment, use (p2-p1)
		nr = p2.Sub(p1)
	}
	if nr.X == 0.0 && nr.Y == 0.0 {
		// p0=p1=p2, the curve is straight
		return 0.0, 1.0
	}

	s3 := math.Abs(ns.X*nr.Y-ns.Y*nr.X) / math.Hypot(nr.X, nr.Y)
	if s3 == 0.0 {
		return 0.0, 1.0 // can approximate whole curve linearly
	}

	tf := math.Cbrt(flatness / s3)
	return t - tf*(1-t), t + tf*(1-t)
}

// flattenCubic appends the polyline approximation of the cubic Bézier to points, excluding the start point p0.
// see Flat, precise flattening of cubic Bézier path and offset curves, by T.F. Hain et al., 2005
// https://www.sciencedirect.com/science/article/pii/S0097849305001287
func flattenCubic(points []Point, p0, p1, p2, p3 Point, flatness float64) []Point {
	t1, t2 := findInflectionsCubic(p0, p1, p2, p3)
	if math.IsNaN(t1) && math.IsNaN(t2) {
		// no inflection points or cusps, approximate linearly by subdivision
		return flattenSmoothCubic(points, p0, p1, p2, p3, flatness)
	}

	t1min, t1max := inflectionRange(p0, p1, p2, p3, t1, flatness)
	t2min, t2max := inflectionRange(p0, p1, p2, p3, t2, flatness)

	if math.IsNaN(t2) && t1min <= 0.0 && 1.0 <= t1max {
		// the first inflection point can be entirely approximated linearly
		return append(points, p3)
	}

	if 0.0 < t1min {
		// flatten up to t1min
		q0, q1, q2, q3, _, _, _, _ := splitCubic(p0, p1, p2, p3, t1min)
		points = flattenSmoothCubic(points, q0, q1, q2, q3, flatness)
	}

	if 0.0 < t1max && t1max < 1.0 && t1max < t2min {
		// t1 and t2 ranges do not overlap, approximate t1 linearly
		_, _, _, _, q0, q1, q2, q3 := splitCubic(p0, p1, p2, p3, t1max)
		points = append(points, q0)
		if 1.0 <= t2min {
			// no t2 present, approximate the rest linearly by subdivision
			return flattenSmoothCubic(points, q0, q1, q2, q3, flatness)
		}
	} else if 1.0 <= t2min {
		// t1 and t2 overlap but past the curve, approximate linearly
		return append(points, p3)
	}

	// t1 and t2 exist and ranges might overlap
	if 0.0 < t2min {
		if t2min < t1max {
			// t2 range starts inside t1 range, approximate t1 range linearly
			_, _, _, _, q0, _, _, _ := splitCubic(p0, p1, p2, p3, t1max)
			points = append(points, q0)
		} else if 0.0 < t1max {
			// no overlap
			_, _, _, _, q0, q1, q2, q3 := splitCubic(p0, p1, p2, p3, t1max)
			t2minq := (t2min - t1max) / (1 - t1max)
			q0, q1, q2, q3, _, _, _, _ = splitCubic(q0, q1, q2, q3, t2minq)
			points = flattenSmoothCubic(points, q0, q1, q2, q3, flatness)
		} else {
			// no t1, approximate up to t2min linearly by subdivision
			q0, q1, q2, q3, _, _, _, _ := splitCubic(p0, p1, p2, p3, t2min)
			points = flattenSmoothCubic(points, q0, q1, q2, q3, flatness)
		}
	}

	// handle (the rest of) t2
	if t2max < 1.0 {
		_, _, _, _, q0, q1, q2, q3 := splitCubic(p0, p1, p2, p3, t2max)
		points = append(points, q0)
		points = flattenSmoothCubic(points, q0, q1, q2, q3, flatness)
	} else {
		// t2max extends beyond 1
		points = append(points, p3)
	}
	return points
}

// quadToCubic elevates the quadratic Bézier control point to the two control points of the equivalent cubic Bézier.
func quadToCubic(p0, p1, p2 Point) (Point, Point) {
	cp1 := p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	cp2 := p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	return cp1, cp2
}

// arcToCenter converts the SVG arc format to the center and angles format, with rot, theta0 and theta1 in degrees.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	x1p := math.Cos(rot)*(x1-x2)/2.0 + math.Sin(rot)*(y1-y2)/2.0
	y1p := -math.Sin(rot)*(x1-x2)/2.0 + math.Cos(rot)*(y1-y2)/2.0

	// scale up the radii when the end points cannot be reached
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := math.Cos(rot)*cxp - math.Sin(rot)*cyp + (x1+x2)/2.0
	cy := math.Sin(rot)*cxp + math.Cos(rot)*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}
	theta *= 180.0 / math.Pi

	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	delta *= 180.0 / math.Pi
	if !sweep && delta > 0.0 {
		delta -= 360.0
	} else if sweep && delta < 0.0 {
		delta += 360.0
	}
	return cx, cy, theta, theta + delta
}

// ellipsePos returns the point on the ellipse at angle theta, with rot and theta in degrees.
func ellipsePos(cx, cy, rx, ry, rot, theta float64) Point {
	sinrot, cosrot := math.Sincos(rot * math.Pi / 180.0)
	sintheta, costheta := math.Sincos(theta * math.Pi / 180.0)
	return Point{
		cx + rx*cosrot*costheta - ry*sinrot*sintheta,
		cy + rx*sinrot*costheta + ry*cosrot*sintheta,
	}
}

// flattenArc appends the polyline approximation of the elliptical arc from p0 to p1 to points, excluding p0. Degenerate arcs reduce to a straight line per the SVG arc implementation notes.
func flattenArc(points []Point, p0 Point, rx, ry, rot float64, large, sweep bool, p1 Point, flatness float64) []Point {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if equal(rx, 0.0) || equal(ry, 0.0) || p0.Equals(p1) {
		return append(points, p1)
	}

	cx, cy, theta0, theta1 := arcToCenter(p0.X, p0.Y, rx, ry, rot, large, sweep, p1.X, p1.Y)

	// bound the angle step so that the chord deviates at most flatness from the arc
	r := math.Max(rx, ry)
	dtheta := math.Pi / 2.0
	if flatness < r {
		dtheta = 2.0 * math.Acos(1.0-flatness/r)
	}
	n := int(math.Ceil(math.Abs(theta1-theta0) / (dtheta * 180.0 / math.Pi)))
	if n < 1 {
		n = 1
	}
	for i := 1; i < n; i++ {
		theta := theta0 + (theta1-theta0)*float64(i)/float64(n)
		points = append(points, ellipsePos(cx, cy, rx, ry, rot, theta))
	}
	return append(points, p1)
}
