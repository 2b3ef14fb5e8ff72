// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/vector"
)

// Outline is a rounded rectangle used both to clip painting and to describe
// the overlay's shape to the host (shadows, elevation, hit testing).
// It is a value type; build a new one whenever size or radius changes.
type Outline struct {
	Min, Max gg.Point
	radius   float64
}

// NewOutline returns the outline of a width x height box anchored at the
// origin. The radius is clamped to [0, min(width, height)/2].
func NewOutline(width, height int, radius float64) Outline {
	return newOutline(gg.Point{}, gg.Pt(float64(width), float64(height)), radius)
}

func newOutline(lo, hi gg.Point, radius float64) Outline {
	if hi.X < lo.X {
		hi.X = lo.X
	}
	if hi.Y < lo.Y {
		hi.Y = lo.Y
	}
	limit := math.Min(hi.X-lo.X, hi.Y-lo.Y) / 2
	if math.IsNaN(radius) || radius < 0 {
		radius = 0
	}
	return Outline{Min: lo, Max: hi, radius: math.Min(radius, limit)}
}

// Radius returns the effective (clamped) corner radius.
func (o Outline) Radius() float64 { return o.radius }

// Width returns the outline width.
func (o Outline) Width() float64 { return o.Max.X - o.Min.X }

// Height returns the outline height.
func (o Outline) Height() float64 { return o.Max.Y - o.Min.Y }

// Empty reports whether the outline encloses no area.
func (o Outline) Empty() bool {
	return o.Width() <= 0 || o.Height() <= 0
}

// Bounds returns the smallest integer rectangle containing the outline.
func (o Outline) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(o.Min.X)), int(math.Floor(o.Min.Y)),
		int(math.Ceil(o.Max.X)), int(math.Ceil(o.Max.Y)),
	)
}

// Inset returns the outline shrunk by d on every side. The corner radius
// shrinks by the same amount so the two contours stay parallel.
func (o Outline) Inset(d float64) Outline {
	return newOutline(o.Min.Add(gg.Pt(d, d)), o.Max.Sub(gg.Pt(d, d)), math.Max(0, o.radius-d))
}

// Path returns the outline as a gg path. A zero radius yields a plain
// rectangle.
func (o Outline) Path() *gg.Path {
	p := gg.NewPath()
	switch {
	case o.Empty():
	case o.radius <= 0:
		p.Rectangle(o.Min.X, o.Min.Y, o.Width(), o.Height())
	default:
		p.RoundedRectangle(o.Min.X, o.Min.Y, o.Width(), o.Height(), o.radius)
	}
	return p
}

// Contains reports whether (x, y) lies inside the outline.
func (o Outline) Contains(x, y float64) bool {
	if o.Empty() || x < o.Min.X || x > o.Max.X || y < o.Min.Y || y > o.Max.Y {
		return false
	}
	r := o.radius
	cx := math.Min(math.Max(x, o.Min.X+r), o.Max.X-r)
	cy := math.Min(math.Max(y, o.Min.Y+r), o.Max.Y-r)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// Mask rasterizes the outline into an anti-aliased coverage mask covering
// [0, Max). Pixels outside the rounded boundary have zero coverage.
func (o Outline) Mask() *image.Alpha {
	w, h := o.maskSize()
	return fillMask(w, h, o.Path())
}

// RingMask rasterizes the band between the outline and the outline inset by
// width, i.e. a stroke of that width that stays inside the bounds.
func (o Outline) RingMask(width float64) *image.Alpha {
	w, h := o.maskSize()
	if width <= 0 {
		return image.NewAlpha(image.Rect(0, 0, w, h))
	}
	ring := fillMask(w, h, o.Path())
	inner := o.Inset(width)
	if inner.Empty() {
		return ring
	}
	hole := fillMask(w, h, inner.Path())
	for i, a := range hole.Pix {
		ring.Pix[i] -= min(a, ring.Pix[i])
	}
	return ring
}

func (o Outline) maskSize() (int, int) {
	return int(math.Ceil(math.Max(0, o.Max.X))), int(math.Ceil(math.Max(0, o.Max.Y)))
}

// fillMask rasterizes p under the non-zero rule into a w x h mask.
func fillMask(w, h int, p *gg.Path) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}
	z := vector.NewRasterizer(w, h)
	rasterizePath(z, p)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// rasterizePath feeds the elements of p to z.
func rasterizePath(z *vector.Rasterizer, p *gg.Path) {
	f := func(pt gg.Point) (float32, float32) { return float32(pt.X), float32(pt.Y) }
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			z.MoveTo(f(e.Point))
		case gg.LineTo:
			z.LineTo(f(e.Point))
		case gg.QuadTo:
			cx, cy := f(e.Control)
			x, y := f(e.Point)
			z.QuadTo(cx, cy, x, y)
		case gg.CubicTo:
			c1x, c1y := f(e.Control1)
			c2x, c2y := f(e.Control2)
			x, y := f(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case gg.Close:
			z.ClosePath()
		}
	}
}

// OutlineProvider supplies the outline for a surface of the given size.
// Hosts call it from their shadow and elevation machinery.
type OutlineProvider interface {
	Outline(width, height int) Outline
}

// RoundedOutlineProvider produces rounded rectangles with a fixed radius.
type RoundedOutlineProvider struct {
	Radius float64
}

// Outline implements OutlineProvider.
func (p RoundedOutlineProvider) Outline(width, height int) Outline {
	return NewOutline(width, height, p.Radius)
}
