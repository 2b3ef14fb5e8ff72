// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/math/f64"
)

// ProjectionMatrix returns the raster-to-overlay transform for an overlay
// of the given size at offset rel from the root. It is the composition, in
// order, of:
//
//  1. gg.Translate(-rel) to align the overlay origin with the root origin;
//  2. a zoom about the overlay center in root space;
//  3. gg.Scale(1/factor) to undo the capture downsampling.
func ProjectionMatrix(rel gg.Point, width, height int, zoom, factor float64) gg.Matrix {
	cx := rel.X + float64(width)/2
	cy := rel.Y + float64(height)/2
	m := gg.Translate(-rel.X, -rel.Y)
	m = m.Multiply(scaleAbout(zoom, cx, cy))
	return m.Multiply(gg.Scale(1/factor, 1/factor))
}

// scaleAbout returns a uniform scale by s that keeps (px, py) fixed,
// concatenated the way gg.Context.RotateAbout builds its rotation.
func scaleAbout(s, px, py float64) gg.Matrix {
	return gg.Translate(px, py).Multiply(gg.Scale(s, s)).Multiply(gg.Translate(-px, -py))
}

// aff3 converts m to the source-to-destination matrix taken by
// golang.org/x/image/draw transformers.
func aff3(m gg.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// ptOf converts an integer pixel position to a gg point.
func ptOf(p image.Point) gg.Point {
	return gg.Pt(float64(p.X), float64(p.Y))
}
