package shapes

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func twoSquares() *MultiPath {
	return NewMultiPath(Rectangle(0, 0, 10, 10), Rectangle(20, 0, 10, 10))
}

func nestedSquares() *MultiPath {
	return NewMultiPath(Rectangle(0, 0, 10, 10), Rectangle(2, 2, 6, 6))
}

func TestMultiPathEmpty(t *testing.T) {
	test.That(t, NewMultiPath().Empty())
	test.That(t, NewMultiPath(&Path{}).Empty())
	test.That(t, !twoSquares().Empty())
}

func TestMultiPathBoundsLength(t *testing.T) {
	mp := twoSquares()
	test.T(t, mp.Bounds(), Rect{0, 0, 30, 10})
	test.Float(t, mp.Length(), 80.0)
	test.T(t, mp.MaxIntersections(), 8)
}

func TestMultiPathFlatten(t *testing.T) {
	mp := twoSquares()
	n := 0
	for p := range mp.Flatten() {
		test.That(t, p.Closed())
		n++
	}
	test.T(t, n, 2)
	n = 0
	for range mp.Flatten() { // restartable
		n++
	}
	test.T(t, n, 2)
}

func TestMultiPathTransform(t *testing.T) {
	mp := twoSquares()
	test.That(t, mp.Transform(Identity) == mp)
	test.T(t, mp.Transform(Identity.Translate(5, 0)).Bounds(), Rect{5, 0, 30, 10})
}

func TestMultiPathFindIntersections(t *testing.T) {
	mp := twoSquares()
	points := make([]Point, mp.MaxIntersections())
	orientations := make([]Orientation, mp.MaxIntersections())

	n, err := mp.FindIntersections(Point{-5, 5}, Point{35, 5}, points, orientations)
	test.That(t, err == nil)
	test.T(t, n, 4)
	test.Float(t, points[0].X, 0.0)
	test.Float(t, points[1].X, 10.0)
	test.Float(t, points[2].X, 20.0)
	test.Float(t, points[3].X, 30.0)

	_, err = mp.FindIntersections(Point{-5, 5}, Point{35, 5}, points, orientations[:len(orientations)-1])
	test.That(t, err == ErrBufferMismatch)
	_, err = mp.FindIntersections(Point{-5, 5}, Point{35, 5}, points[:1], orientations[:1])
	test.That(t, err == ErrBufferTooSmall)
}

func TestMultiPathFillRule(t *testing.T) {
	// both squares wind counter clockwise, so the inner one does not cut a hole under NonZero
	mp := nestedSquares()
	points := make([]Point, mp.MaxIntersections())
	orientations := make([]Orientation, mp.MaxIntersections())

	n, err := mp.FindIntersectionsRule(Point{-5, 5}, Point{15, 5}, points, orientations, EvenOdd)
	test.That(t, err == nil)
	test.T(t, n, 4)

	n, err = mp.FindIntersectionsRule(Point{-5, 5}, Point{15, 5}, points, orientations, NonZero)
	test.That(t, err == nil)
	test.T(t, n, 2)
	test.Float(t, points[0].X, 0.0)
	test.Float(t, points[1].X, 10.0)

	test.That(t, mp.Interior(Point{5, 5}, NonZero))
	test.That(t, !mp.Interior(Point{5, 5}, EvenOdd))
	test.That(t, mp.Interior(Point{1, 5}, NonZero))
	test.That(t, mp.Interior(Point{1, 5}, EvenOdd))
	test.That(t, !mp.Interior(Point{-1, 5}, NonZero))
}

func TestMultiPathDistance(t *testing.T) {
	mp := twoSquares()

	info := mp.Distance(Point{12, 5})
	test.Float(t, info.Distance, 2.0)
	test.That(t, info.Point.Equals(Point{10, 5}))
	test.Float(t, info.AlongPath, 15.0)

	// inside the second square, arc length offset by the first
	info = mp.Distance(Point{25, 5})
	test.Float(t, info.Distance, -5.0)
	test.Float(t, info.AlongPath, 45.0)

	test.That(t, math.IsInf(NewMultiPath().Distance(Point{0, 0}).Distance, 1))
}

func TestMultiPathPointAlong(t *testing.T) {
	mp := twoSquares()

	info := mp.PointAlong(5.0)
	test.That(t, info.Point.Equals(Point{5, 0}))
	test.Float(t, info.AlongPath, 5.0)

	info = mp.PointAlong(45.0)
	test.That(t, info.Point.Equals(Point{25, 0}))
	test.Float(t, info.Angle, 0.0)
	test.Float(t, info.AlongPath, 45.0)

	info = mp.PointAlong(-5.0)
	test.That(t, info.Point.Equals(Point{0, 0}))
}

func TestMultiPathString(t *testing.T) {
	mp := NewMultiPath(Line(Point{0, 0}, Point{10, 0}), Line(Point{20, 0}, Point{30, 0}))
	test.T(t, mp.String(), "M0 0L10 0M20 0L30 0")
}
