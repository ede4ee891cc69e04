package shapes

import (
	"iter"
	"strconv"
	"strings"
	"sync"
)

// Path is an ordered sequence of segments, open or closed. A Path is immutable after construction; the polyline approximation backing all geometric queries is built on first use and reused for the Path's lifetime.
type Path struct {
	segments []Segment
	closed   bool

	once sync.Once
	flat *flatPath
}

// NewPath returns a path from the given segments in drawing order.
func NewPath(segments ...Segment) *Path {
	return &Path{segments: segments}
}

// NewPolygon returns a closed path of straight edges through the given points, adding the closing edge back to the first point when needed.
func NewPolygon(points ...Point) *Path {
	segments := make([]Segment, 0, len(points))
	for i := 1; i < len(points); i++ {
		segments = append(segments, LineSegment{points[i-1], points[i]})
	}
	if 2 < len(points) && !points[len(points)-1].Equals(points[0]) {
		segments = append(segments, LineSegment{points[len(points)-1], points[0]})
	}
	return &Path{segments: segments, closed: true}
}

// flatten returns the polyline approximation, building it on first use. Safe for concurrent first use.
func (p *Path) flatten() *flatPath {
	p.once.Do(func() {
		p.flat = newFlatPath(p.segments, p.closed)
	})
	return p.flat
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	return len(p.segments) == 0
}

// Segments returns the path's segments in drawing order. The returned slice must not be modified.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Closed returns true if the path is closed, ie. its end connects back to its start.
func (p *Path) Closed() bool {
	return p.closed
}

// AsClosed returns the path as a closed path. It returns the same instance when the path is already closed.
func (p *Path) AsClosed() *Path {
	if p.closed {
		return p
	}
	return &Path{segments: p.segments, closed: true}
}

// Transform returns the path transformed by the affine transformation matrix. The identity matrix returns the same instance.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p
	}
	segments := make([]Segment, len(p.segments))
	for i, seg := range p.segments {
		segments[i] = seg.Transform(m)
	}
	return &Path{segments: segments, closed: p.closed}
}

// Flatten returns a restartable sequence of the simple paths this path consists of, which for a simple path is the path itself.
func (p *Path) Flatten() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		yield(p)
	}
}

// Bounds returns the axis-aligned rectangle that tightly encloses the flattened path.
func (p *Path) Bounds() Rect {
	return p.flatten().Bounds()
}

// Length returns the arc length of the flattened path, including its closing edge when closed.
func (p *Path) Length() float64 {
	return p.flatten().Length()
}

// MaxIntersections returns a safe upper bound on the number of intersections any line can have with the path, for sizing the buffers of FindIntersections.
func (p *Path) MaxIntersections() int {
	return p.flatten().MaxIntersections()
}

// FindIntersections records every crossing of the query segment from start to end with the path into the caller-provided buffers and returns the number of crossings, using the NonZero rule.
func (p *Path) FindIntersections(start, end Point, points []Point, orientations []Orientation) (int, error) {
	return p.flatten().FindIntersections(start, end, points, orientations, NonZero)
}

// FindIntersectionsRule is FindIntersections with an explicit fill rule.
func (p *Path) FindIntersectionsRule(start, end Point, points []Point, orientations []Orientation, rule FillRule) (int, error) {
	return p.flatten().FindIntersections(start, end, points, orientations, rule)
}

// Interior is true when the point is in the interior of the path, ie. gets filled, depending on the fill rule.
func (p *Path) Interior(q Point, rule FillRule) bool {
	return p.flatten().Interior(q, rule)
}

// Distance returns the nearest point on the path, the distance from q to it (negative when q is inside a closed path, +Inf for an empty path), and the arc length at which it occurs.
func (p *Path) Distance(q Point) PointInfo {
	return p.flatten().Distance(q)
}

// PointAlong returns the position and tangent direction at arc length dist from the path's start. Distances outside the path clamp to the nearest endpoint for open paths and wrap around for closed ones.
func (p *Path) PointAlong(dist float64) SegmentInfo {
	return p.flatten().PointAlong(dist)
}

// Equals returns true if both paths have equal segments within tolerance Epsilon and the same closedness.
func (p *Path) Equals(q *Path) bool {
	if p.closed != q.closed || len(p.segments) != len(q.segments) {
		return false
	}
	for i := range p.segments {
		if !segmentsEqual(p.segments[i], q.segments[i]) {
			return false
		}
	}
	return true
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String returns the path written as SVG path data.
func (p *Path) String() string {
	sb := strings.Builder{}
	var pos Point
	first := true
	for _, seg := range p.segments {
		if first || !seg.Start().Equals(pos) {
			sb.WriteString("M")
			sb.WriteString(ftos(seg.Start().X))
			sb.WriteString(" ")
			sb.WriteString(ftos(seg.Start().Y))
			first = false
		}
		switch s := seg.(type) {
		case LineSegment:
			sb.WriteString("L")
			sb.WriteString(ftos(s.P1.X))
			sb.WriteString(" ")
			sb.WriteString(ftos(s.P1.Y))
		case QuadSegment:
			sb.WriteString("Q")
			for _, q := range []Point{s.CP, s.P1} {
				sb.WriteString(ftos(q.X))
				sb.WriteString(" ")
				sb.WriteString(ftos(q.Y))
				sb.WriteString(" ")
			}
		case CubeSegment:
			sb.WriteString("C")
			for _, q := range []Point{s.CP1, s.CP2, s.P1} {
				sb.WriteString(ftos(q.X))
				sb.WriteString(" ")
				sb.WriteString(ftos(q.Y))
				sb.WriteString(" ")
			}
		case ArcSegment:
			sb.WriteString("A")
			sb.WriteString(ftos(s.RX))
			sb.WriteString(" ")
			sb.WriteString(ftos(s.RY))
			sb.WriteString(" ")
			sb.WriteString(ftos(s.Rot))
			sb.WriteString(" ")
			if s.Large {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
			if s.Sweep {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
			sb.WriteString(ftos(s.P1.X))
			sb.WriteString(" ")
			sb.WriteString(ftos(s.P1.Y))
		}
		pos = seg.End()
	}
	if p.closed {
		sb.WriteString("z")
	}
	return strings.TrimSpace(sb.String())
}
