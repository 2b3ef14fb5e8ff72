// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// brushImage exposes a gg.Brush as an image.Image so it can be composited
// with draw.DrawMask. Pixel (x, y) samples the brush at the pixel center,
// relative to origin.
type brushImage struct {
	brush  gg.Brush
	origin image.Point
	bounds image.Rectangle
}

func (b brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (b brushImage) Bounds() image.Rectangle { return b.bounds }

func (b brushImage) At(x, y int) color.Color {
	c := b.brush.ColorAt(float64(x-b.origin.X)+0.5, float64(y-b.origin.Y)+0.5)
	return ARGBOfGG(c).NRGBA()
}
