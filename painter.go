// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Lighting colors.
const (
	highlightColor  ARGB = 0x59FFFFFF // top specular highlight, ~35% white
	glowColor       ARGB = 0x2EFFFFFF // bottom glow, ~18% white
	bevelLightColor ARGB = 0x80FFFFFF
	bevelShadeColor ARGB = 0x40000000
)

// Vertical extents of the highlight and glow, as fractions of the height.
const (
	highlightEnd = 0.4
	glowStart    = 0.6
)

// geometry caches everything derived from the overlay size and the shape
// settings: the outline, its coverage masks and the lighting gradients.
type geometry struct {
	width, height int
	radius        float64
	borderWidth   float64
	bevelWidth    float64

	outline   Outline
	clip      *image.Alpha
	border    *image.Alpha
	bevel     *image.Alpha
	highlight gg.Brush
	glow      gg.Brush
	bevelFill gg.Brush
}

func (g *Glass) geometry(w, h int) *geometry {
	geo := &g.geo
	if geo.clip != nil && geo.width == w && geo.height == h &&
		geo.radius == g.opts.cornerRadius &&
		geo.borderWidth == g.opts.borderWidth &&
		geo.bevelWidth == g.opts.bevelWidth {
		return geo
	}

	o := NewOutline(w, h, g.opts.cornerRadius)
	fw, fh := float64(w), float64(h)
	highlight := gg.NewLinearGradientBrush(0, 0, 0, highlightEnd*fh).
		AddColorStop(0, highlightColor.GG()).
		AddColorStop(1, highlightColor.WithAlpha(0).GG())
	glow := gg.NewLinearGradientBrush(0, glowStart*fh, 0, fh).
		AddColorStop(0, glowColor.WithAlpha(0).GG()).
		AddColorStop(1, glowColor.GG())
	// Straight-alpha stops: each half fades its own hue to clear, so the
	// light never passes through grey on its way to the shade.
	bevel := gg.NewLinearGradientBrush(0, 0, fw, fh).
		AddColorStop(0, bevelLightColor.GG()).
		AddColorStop(0.5, bevelLightColor.WithAlpha(0).GG()).
		AddColorStop(0.5, bevelShadeColor.WithAlpha(0).GG()).
		AddColorStop(1, bevelShadeColor.GG())

	*geo = geometry{
		width:       w,
		height:      h,
		radius:      g.opts.cornerRadius,
		borderWidth: g.opts.borderWidth,
		bevelWidth:  g.opts.bevelWidth,
		outline:     o,
		clip:        o.Mask(),
		border:      o.RingMask(g.opts.borderWidth),
		bevel:       o.RingMask(g.opts.bevelWidth),
		highlight:   highlight,
		glow:        glow,
		bevelFill:   bevel,
	}
	return geo
}

// Paint draws the glass into dst, whose bounds are the overlay's own pixels
// with dst.Bounds().Min as the overlay's top-left corner.
//
// Paint never fails. Without a usable raster or root position it fills the
// rounded rectangle with PlaceholderColor; with a zero-sized overlay it
// draws nothing.
func (g *Glass) Paint(dst draw.Image) {
	if g.overlay == nil {
		return
	}
	w, h := g.overlay.Width(), g.overlay.Height()
	if w <= 0 || h <= 0 {
		Logger().Debug("glass: paint skipped", "err", ErrDegenerateGeometry, "width", w, "height", h)
		return
	}
	geo := g.geometry(w, h)
	origin := dst.Bounds().Min
	area := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}

	if layer, err := g.backdrop(w, h); err == nil {
		draw.DrawMask(dst, area, layer, image.Point{}, geo.clip, image.Point{}, draw.Over)
	} else {
		Logger().Debug("glass: painting placeholder", "err", err)
		draw.DrawMask(dst, area, image.NewUniform(PlaceholderColor), image.Point{}, geo.clip, image.Point{}, draw.Over)
	}

	if g.opts.tint.A() > 0 {
		draw.DrawMask(dst, area, image.NewUniform(g.opts.tint), image.Point{}, geo.clip, image.Point{}, draw.Over)
	}
	if g.opts.layering == LayeringFull {
		g.fill(dst, area, geo.highlight, geo.clip)
		g.fill(dst, area, geo.glow, geo.clip)
	}
	if g.opts.borderWidth > 0 && g.opts.borderColor.A() > 0 {
		draw.DrawMask(dst, area, image.NewUniform(g.opts.borderColor), image.Point{}, geo.border, image.Point{}, draw.Over)
	}
	if g.opts.layering == LayeringFull && g.opts.bevelWidth > 0 {
		g.fill(dst, area, geo.bevelFill, geo.bevel)
	}
}

// fill composites brush over dst through mask.
func (g *Glass) fill(dst draw.Image, area image.Rectangle, b gg.Brush, mask *image.Alpha) {
	src := brushImage{brush: b, origin: area.Min, bounds: area}
	draw.DrawMask(dst, area, src, area.Min, mask, image.Point{}, draw.Over)
}

// relative returns the overlay offset from the root, both queried now.
func (g *Glass) relative() (gg.Point, error) {
	root := g.root
	if g.closed || !alive(root) {
		return gg.Point{}, ErrRootUnavailable
	}
	if root.Width() <= 0 || root.Height() <= 0 {
		return gg.Point{}, ErrDegenerateGeometry
	}
	op, ok := g.overlay.ScreenPosition()
	if !ok {
		return gg.Point{}, ErrDegenerateGeometry
	}
	rp, ok := root.ScreenPosition()
	if !ok {
		return gg.Point{}, ErrDegenerateGeometry
	}
	return ptOf(op.Sub(rp)), nil
}

// backdrop projects the raster into an overlay-sized layer and applies the
// saturation matrix to it. The layer is reused between paints.
func (g *Glass) backdrop(w, h int) (*image.RGBA, error) {
	rel, err := g.relative()
	if err != nil {
		return nil, err
	}
	r := g.raster
	if !r.usable() {
		return nil, ErrDegenerateGeometry
	}

	if g.layer == nil || g.layer.Rect.Dx() != w || g.layer.Rect.Dy() != h {
		g.layer = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		clear(g.layer.Pix)
	}

	m := ProjectionMatrix(rel, w, h, g.opts.zoom, r.Factor())
	g.opts.interp.Transform(g.layer, aff3(m), r.Image(), r.Bounds(), draw.Src, nil)
	if !g.sat.IsIdentity() {
		g.sat.Apply(g.layer)
	}
	return g.layer, nil
}
