package shapes

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	test.That(t, (&Path{}).Empty())
	test.That(t, !square10().Empty())
}

func TestPathClosed(t *testing.T) {
	test.That(t, !MustParsePath("M0 0L10 0").Paths()[0].Closed())
	test.That(t, MustParsePath("M0 0L10 0L10 10z").Paths()[0].Closed())
}

func TestPathAsClosed(t *testing.T) {
	open := MustParsePath("M0 0L10 0L10 10").Paths()[0]
	closed := open.AsClosed()
	test.That(t, !open.Closed())
	test.That(t, closed.Closed())
	test.T(t, len(closed.Segments()), len(open.Segments()))
	test.That(t, closed.AsClosed() == closed)

	// closing changes the geometry of queries
	test.Float(t, open.Length(), 20.0)
	test.Float(t, closed.Length(), 20.0+math.Sqrt(200.0))
}

func TestPathTransformIdentity(t *testing.T) {
	p := square10()
	test.That(t, p.Transform(Identity) == p)
}

func TestPathTransform(t *testing.T) {
	p := square10()
	q := p.Transform(Identity.Translate(5.0, 5.0))
	test.That(t, p != q)
	test.T(t, q.Bounds(), Rect{5, 5, 10, 10})
	test.That(t, q.Equals(Rectangle(5.0, 5.0, 10.0, 10.0)))

	// the source path is untouched
	test.T(t, p.Bounds(), Rect{0, 0, 10, 10})
}

func TestPathTransformBounds(t *testing.T) {
	p := square10()
	for _, m := range []Matrix{
		Identity.Rotate(45),
		Identity.Scale(2.0, 3.0),
		Identity.Translate(-10.0, 4.0).Rotate(30),
		Identity.Shear(1.0, 0.0),
	} {
		q := p.Transform(m).Bounds()
		r := p.Bounds().Transform(m)
		test.That(t, math.Abs(q.X-r.X) < 1e-9)
		test.That(t, math.Abs(q.Y-r.Y) < 1e-9)
		test.That(t, math.Abs(q.W-r.W) < 1e-9)
		test.That(t, math.Abs(q.H-r.H) < 1e-9)
	}
}

func TestPathFlatten(t *testing.T) {
	p := square10()
	n := 0
	for q := range p.Flatten() {
		test.That(t, q == p)
		n++
	}
	test.T(t, n, 1)

	// the sequence is restartable
	n = 0
	seq := p.Flatten()
	for range seq {
		n++
	}
	for range seq {
		n++
	}
	test.T(t, n, 2)
}

func TestPathEquals(t *testing.T) {
	test.That(t, square10().Equals(square10()))
	test.That(t, !square10().Equals(Rectangle(0.0, 0.0, 10.0, 5.0)))
	test.That(t, !square10().Equals(square10().AsClosed().Transform(Identity.Translate(1.0, 0.0))))

	open := MustParsePath("M0 0L10 0L10 10L0 10L0 0").Paths()[0]
	test.That(t, !square10().Equals(open)) // same segments, different closedness
}

func TestPathString(t *testing.T) {
	test.String(t, MustParsePath("M0 0L10 0L10 10z").Paths()[0].String(), "M0 0L10 0L10 10L0 0z")
	test.String(t, MustParsePath("M1 2Q3 4 5 6").Paths()[0].String(), "M1 2Q3 4 5 6")
	test.String(t, MustParsePath("M1 2C3 4 5 6 7 8").Paths()[0].String(), "M1 2C3 4 5 6 7 8")
	test.String(t, MustParsePath("M0 0A10 5 0 1 0 20 0").Paths()[0].String(), "M0 0A10 5 0 1 0 20 0")
}

func TestPathLazyFlattenConcurrent(t *testing.T) {
	p := Circle(10.0)
	done := make(chan Rect)
	for i := 0; i < 4; i++ {
		go func() {
			done <- p.Bounds()
		}()
	}
	for i := 0; i < 4; i++ {
		r := <-done
		test.That(t, math.Abs(r.X+10.0) < 1e-9)
		test.That(t, math.Abs(r.W-20.0) < 1e-9)
	}
}

func TestNewPolygon(t *testing.T) {
	p := NewPolygon(Point{0, 0}, Point{10, 0}, Point{10, 10})
	test.That(t, p.Closed())
	test.T(t, len(p.Segments()), 3) // closing edge added

	q := NewPolygon(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 0})
	test.T(t, len(q.Segments()), 3) // already closed coordinates
}
