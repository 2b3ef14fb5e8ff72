// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"

	"golang.org/x/image/draw"
)

// RootSurface is the host content the glass samples from. Glass holds it as
// a non-owning reference and re-validates it on every use.
type RootSurface interface {
	// Width and Height return the laid-out size in pixels; zero until the
	// host has measured the surface.
	Width() int
	Height() int

	// ScreenPosition returns the top-left corner in screen pixels, or false
	// if the surface is not attached or not yet positioned.
	ScreenPosition() (image.Point, bool)

	// PaintInto paints the full surface into dst through a uniform scale
	// about the origin, so a scale of 0.1 compresses the whole content into
	// a buffer one tenth the size. Visible overlays that are part of the
	// surface's tree are painted as well.
	PaintInto(dst draw.Image, scale float64) error
}

// OverlaySurface is the host widget the glass paints into.
type OverlaySurface interface {
	Width() int
	Height() int

	// ScreenPosition returns the top-left corner in screen pixels, or false
	// if the overlay is not attached or not yet positioned.
	ScreenPosition() (image.Point, bool)

	// Visible and SetVisible control whether the root paints the overlay.
	// Capture hides the overlay so it never appears in its own background.
	Visible() bool
	SetVisible(visible bool)

	// RequestRedraw schedules a future Paint.
	RequestRedraw()
}

// Attacher is implemented by surfaces that can be torn down while a Glass
// still references them. Attached reporting false makes the surface
// unavailable for capture and projection.
type Attacher interface {
	Attached() bool
}

// alive reports whether s can be used right now.
func alive(s any) bool {
	if s == nil {
		return false
	}
	if a, ok := s.(Attacher); ok {
		return a.Attached()
	}
	return true
}
