package shapes

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func square10() *Path {
	return Rectangle(0.0, 0.0, 10.0, 10.0)
}

func TestFlatPathBounds(t *testing.T) {
	p := square10()
	test.T(t, p.Bounds(), Rect{0, 0, 10, 10})
	test.T(t, (&Path{}).Bounds(), Rect{})

	mp := MustParsePath("M0 0L10 0L10 10z")
	test.T(t, mp.Bounds(), Rect{0, 0, 10, 10})
}

func TestFlatPathLength(t *testing.T) {
	test.Float(t, square10().Length(), 40.0)
	test.Float(t, MustParsePath("M0 0L10 0").Length(), 10.0)
	test.Float(t, (&Path{}).Length(), 0.0)
}

func TestFindIntersectionsSquare(t *testing.T) {
	p := square10()
	points := make([]Point, p.MaxIntersections())
	orientations := make([]Orientation, len(points))

	for _, rule := range []FillRule{NonZero, EvenOdd} {
		n, err := p.FindIntersectionsRule(Point{-5, 5}, Point{15, 5}, points, orientations, rule)
		test.That(t, err == nil)
		test.T(t, n, 2)
		test.That(t, points[0].Equals(Point{0, 5}))
		test.That(t, points[1].Equals(Point{10, 5}))
		test.That(t, orientations[0] != orientations[1])
	}
}

func TestFindIntersectionsOutside(t *testing.T) {
	p := square10()
	points := make([]Point, p.MaxIntersections())
	orientations := make([]Orientation, len(points))

	n, err := p.FindIntersections(Point{-5, 20}, Point{15, 20}, points, orientations)
	test.That(t, err == nil)
	test.T(t, n, 0)

	// query segment ending before the path is reached
	n, err = p.FindIntersections(Point{-10, 5}, Point{-5, 5}, points, orientations)
	test.That(t, err == nil)
	test.T(t, n, 0)

	// degenerate query segment
	n, err = p.FindIntersections(Point{5, 5}, Point{5, 5}, points, orientations)
	test.That(t, err == nil)
	test.T(t, n, 0)
}

func TestFindIntersectionsOrder(t *testing.T) {
	p := square10()
	points := make([]Point, p.MaxIntersections())
	orientations := make([]Orientation, len(points))

	// reversed query direction reverses the returned order
	n, err := p.FindIntersections(Point{15, 5}, Point{-5, 5}, points, orientations)
	test.That(t, err == nil)
	test.T(t, n, 2)
	test.That(t, points[0].Equals(Point{10, 5}))
	test.That(t, points[1].Equals(Point{0, 5}))
}

func TestFindIntersectionsVertical(t *testing.T) {
	p := square10()
	points := make([]Point, p.MaxIntersections())
	orientations := make([]Orientation, len(points))

	n, err := p.FindIntersections(Point{5, -5}, Point{5, 15}, points, orientations)
	test.That(t, err == nil)
	test.T(t, n, 2)
	test.That(t, points[0].Equals(Point{5, 0}))
	test.That(t, points[1].Equals(Point{5, 10}))
}

func TestFindIntersectionsBufferContract(t *testing.T) {
	p := square10()

	_, err := p.FindIntersections(Point{-5, 5}, Point{15, 5}, make([]Point, 4), make([]Orientation, 3))
	test.That(t, err == ErrBufferMismatch)

	_, err = p.FindIntersections(Point{-5, 5}, Point{15, 5}, make([]Point, 1), make([]Orientation, 1))
	test.That(t, err == ErrBufferTooSmall)

	// empty buffers are fine when nothing crosses
	n, err := p.FindIntersections(Point{-5, 20}, Point{15, 20}, nil, nil)
	test.That(t, err == nil)
	test.T(t, n, 0)
}

func TestMaxIntersectionsBound(t *testing.T) {
	paths := []*Path{
		square10(),
		MustParsePath("M0 0C0 10 10 10 10 0S20 -10 20 0").Paths()[0],
		RegularPolygon(7, 10.0, true),
		Circle(10.0),
	}
	for _, p := range paths {
		points := make([]Point, p.MaxIntersections())
		orientations := make([]Orientation, len(points))
		for y := -1.5; y < 12.0; y += 1.0 {
			n, err := p.FindIntersectionsRule(Point{-25, y}, Point{25, y}, points, orientations, EvenOdd)
			test.That(t, err == nil)
			test.That(t, n <= p.MaxIntersections())
		}
	}
}

func TestPolylineSimplify(t *testing.T) {
	// collinear midpoints on the polyline are removed
	p := MustParsePath("M0 0L5 0L10 0L10 10z").Paths()[0]
	test.T(t, p.MaxIntersections(), 3)

	q := MustParsePath("M0 0L5 0L5 0L10 0").Paths()[0]
	test.T(t, q.MaxIntersections(), 2)

	defer func() { keepCollinear = false }()
	keepCollinear = true
	r := MustParsePath("M0 0L5 0L10 0L10 10z").Paths()[0]
	test.T(t, r.MaxIntersections(), 5)
}

func TestInterior(t *testing.T) {
	p := square10()
	test.That(t, p.Interior(Point{5, 5}, NonZero))
	test.That(t, p.Interior(Point{5, 5}, EvenOdd))
	test.That(t, !p.Interior(Point{15, 5}, NonZero))
	test.That(t, !p.Interior(Point{15, 5}, EvenOdd))
}

func TestDistance(t *testing.T) {
	p := square10()

	inside := p.Distance(Point{5, 5})
	test.Float(t, inside.Distance, -5.0)
	test.That(t, inside.Point.Equals(Point{5, 0}))
	test.Float(t, inside.AlongPath, 5.0)

	outside := p.Distance(Point{15, 5})
	test.Float(t, outside.Distance, 5.0)
	test.That(t, outside.Point.Equals(Point{10, 5}))
	test.Float(t, outside.AlongPath, 15.0)

	corner := p.Distance(Point{13, 14})
	test.Float(t, corner.Distance, 5.0)
	test.That(t, corner.Point.Equals(Point{10, 10}))

	open := MustParsePath("M0 0L10 0").Paths()[0]
	below := open.Distance(Point{5, -3})
	test.Float(t, below.Distance, 3.0) // open paths have no interior
	test.Float(t, below.AlongPath, 5.0)

	empty := (&Path{}).Distance(Point{1, 1})
	test.That(t, math.IsInf(empty.Distance, 1))
}

func TestPointAlong(t *testing.T) {
	p := square10()

	start := p.PointAlong(0.0)
	test.That(t, start.Point.Equals(Point{0, 0}))
	test.Float(t, start.Angle, 0.0)

	mid := p.PointAlong(15.0)
	test.That(t, mid.Point.Equals(Point{10, 5}))
	test.Float(t, mid.Angle, 0.5*math.Pi)
	test.Float(t, mid.AlongPath, 15.0)

	// closed paths wrap around
	test.That(t, p.PointAlong(40.0).Point.Equals(start.Point))
	test.That(t, p.PointAlong(55.0).Point.Equals(p.PointAlong(15.0).Point))
	test.That(t, p.PointAlong(-5.0).Point.Equals(p.PointAlong(35.0).Point))

	// open paths clamp to their endpoints
	open := MustParsePath("M0 0L10 0").Paths()[0]
	test.That(t, open.PointAlong(-5.0).Point.Equals(Point{0, 0}))
	test.That(t, open.PointAlong(15.0).Point.Equals(Point{10, 0}))

	empty := (&Path{}).PointAlong(5.0)
	test.That(t, empty.Point.Equals(Point{}))
}
