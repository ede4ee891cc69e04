package shapes

// PathSink receives drawing commands in the order they are issued and accumulates them into some geometry. The parser emits to a PathSink, of which Builder is the canonical implementation.
type PathSink interface {
	MoveTo(p Point)
	LineTo(p Point)
	QuadTo(cp, p Point)
	CubeTo(cp1, cp2, p Point)
	ArcTo(rx, ry, rot float64, large, sweep bool, p Point)
	Close()
}

// Builder accumulates drawing commands into paths. Every MoveTo starts a new subpath and Close finishes one; drawing commands issued after a Close continue in a new subpath starting at the closed subpath's first point.
type Builder struct {
	paths    []*Path
	segments []Segment
	start    Point
	pos      Point
}

func (b *Builder) flush(closed bool) {
	if 0 < len(b.segments) {
		b.paths = append(b.paths, &Path{segments: b.segments, closed: closed})
		b.segments = nil
	}
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p Point) {
	b.flush(false)
	b.start = p
	b.pos = p
}

// LineTo adds a straight segment to p.
func (b *Builder) LineTo(p Point) {
	b.segments = append(b.segments, LineSegment{b.pos, p})
	b.pos = p
}

// QuadTo adds a quadratic Bézier to p with control point cp.
func (b *Builder) QuadTo(cp, p Point) {
	b.segments = append(b.segments, QuadSegment{b.pos, cp, p})
	b.pos = p
}

// CubeTo adds a cubic Bézier to p with control points cp1 and cp2.
func (b *Builder) CubeTo(cp1, cp2, p Point) {
	b.segments = append(b.segments, CubeSegment{b.pos, cp1, cp2, p})
	b.pos = p
}

// ArcTo adds an elliptical arc to p with radii rx and ry, rotated by rot degrees counter clockwise, where large selects the long arc between the end points and sweep the clockwise direction.
func (b *Builder) ArcTo(rx, ry, rot float64, large, sweep bool, p Point) {
	b.segments = append(b.segments, ArcSegment{b.pos, rx, ry, rot, large, sweep, p})
	b.pos = p
}

// Close closes the current subpath, adding a straight segment back to its first point when needed. The current point resets to the subpath's first point.
func (b *Builder) Close() {
	if len(b.segments) == 0 {
		return
	}
	if !b.pos.Equals(b.start) {
		b.segments = append(b.segments, LineSegment{b.pos, b.start})
	}
	b.flush(true)
	b.pos = b.start
}

// Pos returns the current point.
func (b *Builder) Pos() Point {
	return b.pos
}

// Paths returns all accumulated subpaths, finishing the pending one.
func (b *Builder) Paths() []*Path {
	b.flush(false)
	return b.paths
}

// Path returns the first accumulated subpath, or an empty path if nothing was drawn.
func (b *Builder) Path() *Path {
	paths := b.Paths()
	if len(paths) == 0 {
		return &Path{}
	}
	return paths[0]
}
