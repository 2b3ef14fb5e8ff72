// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Content is what a Root shows. Draw paints the full content into dst
// through m, which maps content pixels to dst pixels.
type Content interface {
	Draw(dst draw.Image, m f64.Aff3) error
}

// ContentFunc adapts a function to Content.
type ContentFunc func(dst draw.Image, m f64.Aff3) error

// Draw implements Content.
func (f ContentFunc) Draw(dst draw.Image, m f64.Aff3) error {
	return f(dst, m)
}

// Layers paints each content in order, bottom first.
type Layers []Content

// Draw implements Content.
func (l Layers) Draw(dst draw.Image, m f64.Aff3) error {
	for _, c := range l {
		if err := c.Draw(dst, m); err != nil {
			return err
		}
	}
	return nil
}

// ImageContent shows a fixed image anchored at the content origin.
type ImageContent struct {
	Image image.Image

	// Interp resamples the image when m is not an integer translation.
	// Nil means draw.BiLinear.
	Interp draw.Interpolator

	// Op composites the image; the zero value is draw.Over.
	Op draw.Op
}

// Draw implements Content.
func (c ImageContent) Draw(dst draw.Image, m f64.Aff3) error {
	if c.Image == nil {
		return nil
	}
	return transform(dst, m, c.Image, c.Op, c.Interp)
}

// transform draws src through m, copying pixels directly when m is an
// integer translation so unscaled frames stay exact.
func transform(dst draw.Image, m f64.Aff3, src image.Image, op draw.Op, interp draw.Interpolator) error {
	sr := src.Bounds()
	if off, ok := integerTranslation(m); ok {
		draw.Draw(dst, sr.Add(off), src, sr.Min, op)
		return nil
	}
	if interp == nil {
		interp = draw.BiLinear
	}
	interp.Transform(dst, m, src, sr, op, nil)
	return nil
}

func integerTranslation(m f64.Aff3) (image.Point, bool) {
	if m[0] != 1 || m[1] != 0 || m[3] != 0 || m[4] != 1 {
		return image.Point{}, false
	}
	x, y := int(m[2]), int(m[5])
	if float64(x) != m[2] || float64(y) != m[5] {
		return image.Point{}, false
	}
	return image.Pt(x, y), true
}

// scaleTranslate returns the matrix scaling by s and then offsetting by
// (s*dx, s*dy), i.e. Scale(s) * Translate(dx, dy).
func scaleTranslate(s float64, dx, dy int) f64.Aff3 {
	return f64.Aff3{s, 0, s * float64(dx), 0, s, s * float64(dy)}
}
