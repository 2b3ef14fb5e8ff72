// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glass renders a "liquid glass" overlay: a movable rounded
// rectangle that shows a blurred, zoomed, saturated and tinted view of the
// content behind it.
//
// # Overview
//
// The effect has two halves that share the same transform math:
//
//   - Capture paints a root surface into a downsampled raster and caches it
//     as the background texture.
//   - Paint re-projects that raster into the overlay on every redraw and
//     layers synthetic lighting on top.
//
// There is no convolution blur. The blur is an illusion produced by
// decimating the root at capture time and upsampling the coarse raster with
// bilinear interpolation at paint time. The blur radius controls the
// decimation:
//
//	downsample = clamp(2/blurRadius, 0.05, 0.5)
//
// # Quick Start
//
//	g := glass.New(overlay,
//	    glass.WithBlurRadius(15),
//	    glass.WithZoom(1.2),
//	    glass.WithCornerRadius(24),
//	)
//	defer g.Close()
//
//	g.Attach(root)
//
//	// From the host's layout-complete callback:
//	g.RootLayout()
//
//	// From the host's draw callback:
//	g.Paint(overlayPixels)
//
// # Projection
//
// Paint composes three transforms, in this order, before drawing the raster
// at the origin:
//
//  1. translate by the negated overlay offset relative to the root;
//  2. scale by the zoom level about the overlay center expressed in root space;
//  3. scale by 1/downsample to undo the capture-time decimation.
//
// A raster pixel p therefore lands at overlay-local c + z*(p/d - c) - r,
// where r is the overlay offset, c = r + size/2, z the zoom and d the
// downsample factor. See [ProjectionMatrix].
//
// # Layering
//
// On top of the projected raster (which alone receives the saturation
// [ColorMatrix]) Paint draws a flat tint, a top specular highlight, a
// bottom glow, a border ring and a diagonal bevel ring, all clipped to the
// rounded [Outline]. [LayeringLegacy] keeps only tint and border.
//
// # Errors
//
// Nothing escapes Paint. When the raster or the geometry is unusable the
// rounded rectangle is filled with a neutral gray placeholder instead.
// Capture returns a [*CaptureError] and keeps the last good raster.
//
// # Thread Safety
//
// A Glass belongs to the UI thread. It is NOT safe for concurrent use.
package glass
