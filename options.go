// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"math"

	"golang.org/x/image/draw"
)

// Defaults for a new Glass.
const (
	DefaultBlurRadius  = 15.0
	DefaultZoom        = 1.15
	DefaultSaturation  = 1.5
	DefaultBorderWidth = 1.5
	DefaultBevelWidth  = 3.0

	DefaultTint        ARGB = 0x20FFFFFF
	DefaultBorderColor ARGB = 0x60FFFFFF
)

// Layering selects which lighting layers Paint draws over the background.
type Layering int

const (
	// LayeringFull draws tint, top highlight, bottom glow, border and bevel.
	LayeringFull Layering = iota

	// LayeringLegacy draws only tint and border. It is the degraded look of
	// the earlier painter and exists for hosts that want the flat style.
	LayeringLegacy
)

// String returns the layering name.
func (l Layering) String() string {
	switch l {
	case LayeringFull:
		return "full"
	case LayeringLegacy:
		return "legacy"
	}
	return "unknown"
}

// Option configures a Glass during creation.
//
// Example:
//
//	g := glass.New(overlay,
//	    glass.WithBlurRadius(20),
//	    glass.WithTint(0x20FFFFFF),
//	)
type Option func(*options)

type options struct {
	blurRadius   float64
	zoom         float64
	saturation   float64
	cornerRadius float64
	tint         ARGB
	borderColor  ARGB
	borderWidth  float64
	bevelWidth   float64
	interp       draw.Interpolator
	layering     Layering
}

func defaultOptions() options {
	return options{
		blurRadius:  DefaultBlurRadius,
		zoom:        DefaultZoom,
		saturation:  DefaultSaturation,
		tint:        DefaultTint,
		borderColor: DefaultBorderColor,
		borderWidth: DefaultBorderWidth,
		bevelWidth:  DefaultBevelWidth,
		interp:      draw.BiLinear,
		layering:    LayeringFull,
	}
}

// WithBlurRadius sets the blur strength. See DownsampleFactor.
func WithBlurRadius(radius float64) Option {
	return func(o *options) {
		o.blurRadius = radius
	}
}

// WithZoom sets the magnification applied about the overlay center.
// Non-positive and infinite values are ignored.
func WithZoom(zoom float64) Option {
	return func(o *options) {
		if zoom > 0 && !math.IsInf(zoom, 0) {
			o.zoom = zoom
		}
	}
}

// WithTint sets the flat color drawn over the background.
func WithTint(c ARGB) Option {
	return func(o *options) {
		o.tint = c
	}
}

// WithBorder sets the border ring color and width. A zero width disables
// the border.
func WithBorder(c ARGB, width float64) Option {
	return func(o *options) {
		o.borderColor = c
		o.borderWidth = max(width, 0)
	}
}

// WithBevelWidth sets the width of the diagonal bevel ring. A zero width
// disables the bevel.
func WithBevelWidth(width float64) Option {
	return func(o *options) {
		o.bevelWidth = max(width, 0)
	}
}

// WithSaturation sets the saturation multiplier applied to the background.
// 1 leaves the background untouched.
func WithSaturation(s float64) Option {
	return func(o *options) {
		o.saturation = max(s, 0)
	}
}

// WithCornerRadius sets the radius shared by the clip, the outline and every
// lighting layer.
func WithCornerRadius(r float64) Option {
	return func(o *options) {
		o.cornerRadius = max(r, 0)
	}
}

// WithInterpolator sets the sampler used to upscale the background raster.
// The default is draw.BiLinear, which produces the blur; draw.NearestNeighbor
// shows the raw decimated pixels.
func WithInterpolator(interp draw.Interpolator) Option {
	return func(o *options) {
		if interp != nil {
			o.interp = interp
		}
	}
}

// WithLayering selects the lighting layers.
func WithLayering(l Layering) Option {
	return func(o *options) {
		o.layering = l
	}
}
