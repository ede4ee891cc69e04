package shapes

import (
	"iter"
	"math"
	"strings"
)

// MultiPath is an ordered collection of simple paths treated as one composite shape. It is the parser's result type; each M command or Z continuation starts a new subpath.
type MultiPath struct {
	paths []*Path
}

// NewMultiPath returns a composite path from the given subpaths in drawing order.
func NewMultiPath(paths ...*Path) *MultiPath {
	return &MultiPath{paths: paths}
}

// Empty returns true if no subpath has segments.
func (mp *MultiPath) Empty() bool {
	for _, p := range mp.paths {
		if !p.Empty() {
			return false
		}
	}
	return true
}

// Flatten returns a restartable sequence of the simple subpaths in drawing order.
func (mp *MultiPath) Flatten() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		for _, p := range mp.paths {
			if !yield(p) {
				return
			}
		}
	}
}

// Paths returns the subpaths in drawing order. The returned slice must not be modified.
func (mp *MultiPath) Paths() []*Path {
	return mp.paths
}

// Transform returns the composite path transformed by the affine transformation matrix. The identity matrix returns the same instance.
func (mp *MultiPath) Transform(m Matrix) *MultiPath {
	if m.IsIdentity() {
		return mp
	}
	paths := make([]*Path, len(mp.paths))
	for i, p := range mp.paths {
		paths[i] = p.Transform(m)
	}
	return &MultiPath{paths: paths}
}

// Bounds returns the axis-aligned rectangle that tightly encloses all subpaths.
func (mp *MultiPath) Bounds() Rect {
	r := Rect{}
	for _, p := range mp.paths {
		r = r.Add(p.Bounds())
	}
	return r
}

// Length returns the summed arc length of all subpaths.
func (mp *MultiPath) Length() float64 {
	d := 0.0
	for _, p := range mp.paths {
		d += p.Length()
	}
	return d
}

// MaxIntersections returns a safe upper bound on the number of intersections any line can have with the composite path.
func (mp *MultiPath) MaxIntersections() int {
	n := 0
	for _, p := range mp.paths {
		n += p.MaxIntersections()
	}
	return n
}

// FindIntersections records every crossing of the query segment from start to end with any subpath into the caller-provided buffers and returns the number of crossings, ordered along the query direction, using the NonZero rule.
func (mp *MultiPath) FindIntersections(start, end Point, points []Point, orientations []Orientation) (int, error) {
	return mp.FindIntersectionsRule(start, end, points, orientations, NonZero)
}

// FindIntersectionsRule is FindIntersections with an explicit fill rule, applied over the crossings of all subpaths combined.
func (mp *MultiPath) FindIntersectionsRule(start, end Point, points []Point, orientations []Orientation, rule FillRule) (int, error) {
	if len(points) != len(orientations) {
		return 0, ErrBufferMismatch
	}
	n := 0
	for _, p := range mp.paths {
		// collect raw crossings per subpath, the rule is applied over the whole set below
		num, err := p.FindIntersectionsRule(start, end, points[n:], orientations[n:], EvenOdd)
		if err != nil {
			return 0, err
		}
		n += num
	}
	sortIntersections(points[:n], orientations[:n], end.Sub(start))
	if rule == NonZero {
		n = filterNonZero(points[:n], orientations[:n])
	}
	return n, nil
}

// Interior is true when the point is in the interior of the composite path, ie. gets filled, depending on the fill rule.
func (mp *MultiPath) Interior(q Point, rule FillRule) bool {
	count := 0
	for _, p := range mp.paths {
		count += p.flatten().fillCount(q)
	}
	if rule == NonZero {
		return count != 0
	}
	return count%2 != 0
}

// Distance returns the nearest point over all subpaths with the smallest absolute distance, with arc length measured from the start of the composite path.
func (mp *MultiPath) Distance(q Point) PointInfo {
	info := PointInfo{Distance: math.Inf(1)}
	along := 0.0
	for _, p := range mp.paths {
		if pi := p.Distance(q); math.Abs(pi.Distance) < math.Abs(info.Distance) {
			pi.AlongPath += along
			info = pi
		}
		along += p.Length()
	}
	return info
}

// PointAlong returns the position and tangent direction at arc length dist from the start of the composite path, walking the subpaths in drawing order. Distances outside the composite path clamp to its endpoints.
func (mp *MultiPath) PointAlong(dist float64) SegmentInfo {
	if dist < 0.0 {
		dist = 0.0
	}
	along := 0.0
	for i, p := range mp.paths {
		length := p.Length()
		if dist <= along+length || i == len(mp.paths)-1 {
			info := p.PointAlong(dist - along)
			info.AlongPath += along
			return info
		}
		along += length
	}
	return SegmentInfo{}
}

// String returns the composite path written as SVG path data.
func (mp *MultiPath) String() string {
	sb := strings.Builder{}
	for _, p := range mp.paths {
		sb.WriteString(p.String())
	}
	return sb.String()
}
