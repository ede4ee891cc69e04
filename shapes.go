package shapes

import "math"

// Line returns an open path of one straight segment from p0 to p1.
func Line(p0, p1 Point) *Path {
	return NewPath(LineSegment{p0, p1})
}

// Rectangle returns a closed rectangular path at (x,y) with width w and height h.
func Rectangle(x, y, w, h float64) *Path {
	return NewPolygon(
		Point{x, y},
		Point{x + w, y},
		Point{x + w, y + h},
		Point{x, y + h},
	)
}

// Circle returns a closed circular path of radius r centered at the origin.
func Circle(r float64) *Path {
	return Ellipse(r, r)
}

// Ellipse returns a closed elliptical path with radii rx and ry centered at the origin.
func Ellipse(rx, ry float64) *Path {
	return NewPath(
		ArcSegment{P0: Point{rx, 0.0}, RX: rx, RY: ry, P1: Point{-rx, 0.0}},
		ArcSegment{P0: Point{-rx, 0.0}, RX: rx, RY: ry, P1: Point{rx, 0.0}},
	).AsClosed()
}

// RegularPolygon returns a closed regular polygon with n vertices at radius r from the origin. The first vertex points up when up is true and down otherwise.
func RegularPolygon(n int, r float64, up bool) *Path {
	if n < 3 {
		panic("regular polygon must have at least 3 vertices")
	}
	theta0 := 90.0
	if !up {
		theta0 = 270.0
	}
	points := make([]Point, n)
	for i := range points {
		sintheta, costheta := math.Sincos((theta0 + 360.0*float64(i)/float64(n)) * math.Pi / 180.0)
		points[i] = Point{r * costheta, r * sintheta}
	}
	return NewPolygon(points...)
}
