// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"
	"math"
)

// Downsample limits. The factor is the fraction of linear resolution kept
// in the captured raster.
const (
	MinDownsample = 0.05
	MaxDownsample = 0.5
)

// DownsampleFactor maps a blur radius to the capture downsample factor:
// clamp(2/blurRadius, MinDownsample, MaxDownsample). Non-positive and NaN
// radii mean "no blur" and yield MaxDownsample.
func DownsampleFactor(blurRadius float64) float64 {
	if !(blurRadius > 0) {
		return MaxDownsample
	}
	return math.Max(MinDownsample, math.Min(MaxDownsample, 2/blurRadius))
}

// RasterSize returns the raster dimensions for a root of the given size:
// each side is ceil(side * factor), at least 1.
func RasterSize(rootWidth, rootHeight int, factor float64) (int, int) {
	return scaledSide(rootWidth, factor), scaledSide(rootHeight, factor)
}

func scaledSide(n int, factor float64) int {
	// The epsilon keeps products like 100*0.05 = 5.000000000000001 at 5.
	s := int(math.Ceil(float64(n)*factor - 1e-9))
	return max(s, 1)
}

// Raster is the captured, downsampled background. It owns two equally
// sized buffers: the one shown by Image and a spare that the next capture
// paints into, so a failed capture never disturbs the visible pixels and a
// repeated capture never allocates.
type Raster struct {
	front, spare *image.RGBA
	factor       float64
}

func newRaster(width, height int) *Raster {
	r := image.Rect(0, 0, width, height)
	return &Raster{
		front: image.NewRGBA(r),
		spare: image.NewRGBA(r),
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.front.Rect.Dx() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.front.Rect.Dy() }

// Bounds returns the raster bounds, anchored at the origin.
func (r *Raster) Bounds() image.Rectangle { return r.front.Rect }

// Factor returns the downsample factor the pixels were captured with.
func (r *Raster) Factor() float64 { return r.factor }

// Image returns the current pixels. The image is owned by the Raster and is
// replaced by the next successful capture; callers must not retain it.
func (r *Raster) Image() *image.RGBA { return r.front }

// usable reports whether the raster can be projected.
func (r *Raster) usable() bool {
	return r != nil && !r.front.Rect.Empty() && r.factor > 0
}

// commit makes the freshly painted spare buffer current.
func (r *Raster) commit(factor float64) {
	r.front, r.spare = r.spare, r.front
	r.factor = factor
}
