// Package rasterizer fills shapes onto images using their scanline intersection queries.
package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/vecpath/shapes"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Filler is the geometric query surface the scanline filler consumes. Both shapes.Path and shapes.MultiPath implement it.
type Filler interface {
	Bounds() shapes.Rect
	MaxIntersections() int
	FindIntersectionsRule(start, end shapes.Point, points []shapes.Point, orientations []shapes.Orientation, rule shapes.FillRule) (int, error)
}

// Fill paints the interior of the shape onto the image with the given color, one scanline at a time. The fill rule decides which crossings bound the painted spans.
func Fill(img draw.Image, shape Filler, c color.Color, rule shapes.FillRule) error {
	bounds := shape.Bounds()
	if bounds.Empty() {
		return nil
	}

	points := make([]shapes.Point, shape.MaxIntersections())
	orientations := make([]shapes.Orientation, len(points))
	src := image.NewUniform(c)

	clip := img.Bounds()
	y0 := int(math.Floor(bounds.Y))
	y1 := int(math.Ceil(bounds.Y + bounds.H))
	if y0 < clip.Min.Y {
		y0 = clip.Min.Y
	}
	if clip.Max.Y < y1 {
		y1 = clip.Max.Y
	}
	for y := y0; y < y1; y++ {
		// query through the pixel centers of this scanline, extended past the bounds
		cy := float64(y) + 0.5
		start := shapes.Point{X: bounds.X - 1.0, Y: cy}
		end := shapes.Point{X: bounds.X + bounds.W + 1.0, Y: cy}
		n, err := shape.FindIntersectionsRule(start, end, points, orientations, rule)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i += 2 {
			x0 := int(math.Ceil(points[i].X - 0.5))
			x1 := int(math.Floor(points[i+1].X-0.5)) + 1
			r := image.Rect(x0, y, x1, y+1).Intersect(clip)
			if !r.Empty() {
				draw.Draw(img, r, src, image.Point{}, draw.Over)
			}
		}
	}
	return nil
}

// ToVector adds the path to the vector rasterizer for anti-aliased filling, flattening arcs to lines.
func ToVector(p *shapes.Path, ras *vector.Rasterizer) {
	segments := p.Segments()
	if len(segments) == 0 {
		return
	}

	pos := segments[0].Start()
	ras.MoveTo(float32(pos.X), float32(pos.Y))
	var scratch []shapes.Point
	for _, seg := range segments {
		if !seg.Start().Equals(pos) {
			ras.LineTo(float32(seg.Start().X), float32(seg.Start().Y))
		}
		switch s := seg.(type) {
		case shapes.LineSegment:
			ras.LineTo(float32(s.P1.X), float32(s.P1.Y))
		case shapes.QuadSegment:
			ras.QuadTo(float32(s.CP.X), float32(s.CP.Y), float32(s.P1.X), float32(s.P1.Y))
		case shapes.CubeSegment:
			ras.CubeTo(float32(s.CP1.X), float32(s.CP1.Y), float32(s.CP2.X), float32(s.CP2.Y), float32(s.P1.X), float32(s.P1.Y))
		default:
			scratch = seg.Flatten(scratch[:0], shapes.Tolerance)
			for _, q := range scratch {
				ras.LineTo(float32(q.X), float32(q.Y))
			}
		}
		pos = seg.End()
	}
	if p.Closed() {
		ras.ClosePath()
	}
}
