package shapes

import (
	"errors"
	"math"
	"sort"
)

// FillRule is the policy for deciding whether a point is inside the path from crossing counts.
type FillRule int

const (
	// NonZero sums crossings signed by orientation; a point is inside when the sum is non-zero.
	NonZero FillRule = iota
	// EvenOdd counts every raw crossing; a point is inside when the count is odd.
	EvenOdd
)

// Orientation is the direction in which a polyline edge crosses the query line of FindIntersections, as seen along the query direction.
type Orientation int

const (
	// CounterClockwise tags an edge crossing toward the left-hand side of the query line.
	CounterClockwise Orientation = iota
	// Clockwise tags an edge crossing toward the right-hand side of the query line.
	Clockwise
)

var (
	// ErrBufferMismatch is returned when the point and orientation buffers differ in length.
	ErrBufferMismatch = errors.New("shapes: intersection buffers have different lengths")
	// ErrBufferTooSmall is returned when the intersection count would exceed the buffer length. Size buffers using MaxIntersections.
	ErrBufferTooSmall = errors.New("shapes: intersection buffer too small")
)

// PointInfo is the result of a nearest-point query on a path.
type PointInfo struct {
	// Point is the nearest point on the path.
	Point Point
	// Distance is the Euclidean distance from the query point, negative when the query point is inside a closed path. It is +Inf for an empty path.
	Distance float64
	// AlongPath is the arc length along the path at which the nearest point occurs.
	AlongPath float64
}

// SegmentInfo is the result of a point-along-path query.
type SegmentInfo struct {
	// Point is the position on the path.
	Point Point
	// Angle is the tangent direction in radians at the position.
	Angle float64
	// AlongPath is the arc length along the path of the position.
	AlongPath float64
}

// keepCollinear disables the removal of duplicate and collinear points from the flattened polyline, which changes intersection counts. Tests only.
var keepCollinear = false

// flatPath is the polyline approximation of a path and answers all geometric queries against it.
type flatPath struct {
	points []Point
	closed bool
	bounds Rect
	cumLen []float64 // arc length from the start up to points[i]
	total  float64
}

func newFlatPath(segments []Segment, closed bool) *flatPath {
	f := &flatPath{closed: closed}
	if len(segments) == 0 {
		return f
	}

	points := make([]Point, 0, 2*len(segments))
	points = append(points, segments[0].Start())
	for _, seg := range segments {
		if !seg.Start().Equals(points[len(points)-1]) {
			// disjoint segments are bridged by a straight edge
			points = append(points, seg.Start())
		}
		points = seg.Flatten(points, Tolerance)
	}
	if !keepCollinear {
		points = simplifyPolyline(points, closed)
	}
	f.points = points

	x0, y0 := points[0].X, points[0].Y
	x1, y1 := x0, y0
	for _, p := range points[1:] {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	f.bounds = Rect{x0, y0, x1 - x0, y1 - y0}

	f.cumLen = make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		f.cumLen[i] = f.cumLen[i-1] + points[i].Sub(points[i-1]).Length()
	}
	f.total = f.cumLen[len(points)-1]
	if closed && 1 < len(points) {
		f.total += points[0].Sub(points[len(points)-1]).Length()
	}
	return f
}

// simplifyPolyline removes consecutive duplicate points and collinear midpoints. For closed polylines the wrap-around edge is considered too.
func simplifyPolyline(points []Point, closed bool) []Point {
	ps := points[:1]
	for _, p := range points[1:] {
		if !p.Equals(ps[len(ps)-1]) {
			ps = append(ps, p)
		}
	}
	if closed && 1 < len(ps) && ps[0].Equals(ps[len(ps)-1]) {
		ps = ps[:len(ps)-1]
	}
	if len(ps) < 3 {
		return ps
	}

	n := len(ps)
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		if closed || (0 < i && i < n-1) {
			prev := ps[(i+n-1)%n]
			next := ps[(i+1)%n]
			in := ps[i].Sub(prev)
			dir := next.Sub(ps[i])
			if equal(in.PerpDot(dir), 0.0) && 0.0 <= in.Dot(dir) {
				continue
			}
		}
		out = append(out, ps[i])
	}
	return out
}

// Empty returns true if the polyline has no edges.
func (f *flatPath) Empty() bool {
	return len(f.points) < 2
}

// Bounds returns the axis-aligned rectangle that tightly encloses all flattened points.
func (f *flatPath) Bounds() Rect {
	return f.bounds
}

// Length returns the total arc length of the polyline, including the closing edge when closed.
func (f *flatPath) Length() float64 {
	return f.total
}

// MaxIntersections returns the flattened point count, a safe upper bound on the number of intersections any line can have with the path.
func (f *flatPath) MaxIntersections() int {
	return len(f.points)
}

// edge returns the i-th polyline edge. Closed polylines have a wrap-around edge from the last point to the first.
func (f *flatPath) edge(i int) (Point, Point) {
	if i == len(f.points)-1 {
		return f.points[i], f.points[0]
	}
	return f.points[i], f.points[i+1]
}

func (f *flatPath) edgeCount() int {
	if f.Empty() {
		return 0
	}
	if f.closed {
		return len(f.points)
	}
	return len(f.points) - 1
}

// FindIntersections records every crossing of the query segment from start to end with the polyline into the caller-provided buffers and returns the number of crossings, ordered along the query direction. A vertex touch is counted once per adjacent edge that straddles the query line (half-open convention: points exactly on the line belong to its left side). Under NonZero, crossings that do not change the insideness are dropped.
func (f *flatPath) FindIntersections(start, end Point, points []Point, orientations []Orientation, rule FillRule) (int, error) {
	if len(points) != len(orientations) {
		return 0, ErrBufferMismatch
	}
	if f.Empty() {
		return 0, nil
	}
	d := end.Sub(start)
	if d.IsZero() {
		return 0, nil
	}

	n := 0
	dd := d.Dot(d)
	for i := 0; i < f.edgeCount(); i++ {
		a, b := f.edge(i)
		sa := d.PerpDot(a.Sub(start))
		sb := d.PerpDot(b.Sub(start))
		if (sa < 0.0) == (sb < 0.0) {
			continue
		}
		t := sa / (sa - sb)
		p := a.Interpolate(b, t)
		if u := p.Sub(start).Dot(d) / dd; u < 0.0 || 1.0 < u {
			continue
		}
		if n == len(points) {
			return 0, ErrBufferTooSmall
		}
		points[n] = p
		if sa < sb {
			orientations[n] = CounterClockwise
		} else {
			orientations[n] = Clockwise
		}
		n++
	}

	sortIntersections(points[:n], orientations[:n], d)
	if rule == NonZero {
		n = filterNonZero(points[:n], orientations[:n])
	}
	return n, nil
}

// sortIntersections sorts intersection points and their orientations in tandem by position along the query direction d.
func sortIntersections(points []Point, orientations []Orientation, d Point) {
	sort.Sort(&intersectionSorter{points, orientations, d})
}

// filterNonZero compacts sorted crossings to those at which the winding number enters or leaves zero and returns the new count.
func filterNonZero(points []Point, orientations []Orientation) int {
	m := 0
	winding := 0
	for i := range points {
		prev := winding
		if orientations[i] == CounterClockwise {
			winding++
		} else {
			winding--
		}
		if prev == 0 || winding == 0 {
			points[m] = points[i]
			orientations[m] = orientations[i]
			m++
		}
	}
	return m
}

// intersectionSorter sorts intersection points and their orientations in tandem by position along the query direction d.
type intersectionSorter struct {
	points       []Point
	orientations []Orientation
	d            Point
}

func (s *intersectionSorter) Len() int {
	return len(s.points)
}

func (s *intersectionSorter) Less(i, j int) bool {
	return s.points[i].Dot(s.d) < s.points[j].Dot(s.d)
}

func (s *intersectionSorter) Swap(i, j int) {
	s.points[i], s.points[j] = s.points[j], s.points[i]
	s.orientations[i], s.orientations[j] = s.orientations[j], s.orientations[i]
}

// fillCount returns the number of times the polyline encloses the point. Counter clockwise enclosures count positively and clockwise ones negatively.
func (f *flatPath) fillCount(q Point) int {
	count := 0
	for i := 0; i < f.edgeCount(); i++ {
		b, a := f.edge(i)
		// see https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
		if (q.Y < a.Y) != (q.Y < b.Y) &&
			q.X < (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y)+a.X {
			if b.Y < a.Y {
				count--
			} else {
				count++
			}
		}
	}
	return count
}

// Interior is true when the point is in the interior of the polyline, ie. gets filled, depending on the fill rule.
func (f *flatPath) Interior(q Point, rule FillRule) bool {
	count := f.fillCount(q)
	if rule == NonZero {
		return count != 0
	}
	return count%2 != 0
}

// Distance returns the nearest point on the polyline, the distance to it (negative when q is inside a closed polyline), and the arc length at which it occurs.
func (f *flatPath) Distance(q Point) PointInfo {
	if f.Empty() {
		return PointInfo{Distance: math.Inf(1)}
	}

	info := PointInfo{Distance: math.Inf(1)}
	dist2 := math.Inf(1)
	along := 0.0
	for i := 0; i < f.edgeCount(); i++ {
		a, b := f.edge(i)
		ab := b.Sub(a)
		edgeLen := ab.Length()
		t := 0.0
		if !equal(edgeLen, 0.0) {
			t = math.Max(0.0, math.Min(1.0, q.Sub(a).Dot(ab)/(edgeLen*edgeLen)))
		}
		p := a.Interpolate(b, t)
		if d2 := q.Sub(p).Dot(q.Sub(p)); d2 < dist2 {
			dist2 = d2
			info.Point = p
			info.AlongPath = along + t*edgeLen
		}
		along += edgeLen
	}
	info.Distance = math.Sqrt(dist2)
	if f.closed && f.Interior(q, EvenOdd) {
		info.Distance = -info.Distance
	}
	return info
}

// PointAlong returns the position and tangent direction at arc length dist from the polyline's start. Distances outside [0,total] clamp to the nearest endpoint for open polylines and wrap around for closed ones.
func (f *flatPath) PointAlong(dist float64) SegmentInfo {
	if f.Empty() {
		return SegmentInfo{}
	}

	if f.closed {
		dist = math.Mod(dist, f.total)
		if dist < 0.0 {
			dist += f.total
		}
	} else if dist < 0.0 {
		dist = 0.0
	} else if f.total < dist {
		dist = f.total
	}

	along := 0.0
	for i := 0; i < f.edgeCount(); i++ {
		a, b := f.edge(i)
		edgeLen := b.Sub(a).Length()
		if dist <= along+edgeLen || i == f.edgeCount()-1 {
			t := 1.0
			if !equal(edgeLen, 0.0) {
				t = (dist - along) / edgeLen
			}
			return SegmentInfo{
				Point:     a.Interpolate(b, t),
				Angle:     b.Sub(a).Angle(),
				AlongPath: dist,
			}
		}
		along += edgeLen
	}
	return SegmentInfo{} // unreachable
}
