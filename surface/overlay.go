// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math"
)

// Overlay is a movable widget with its own pixel buffer. Its position is
// tracked in floating point so that accumulated drag deltas are not lost to
// rounding; ScreenPosition rounds to whole pixels.
type Overlay struct {
	x, y    float64
	width   int
	height  int
	visible bool
	redraws int
	frame   *image.RGBA
	parent  *Root
}

// NewOverlay creates a visible overlay of the given size at the screen
// origin. It has no screen position until added to a Root.
func NewOverlay(width, height int) *Overlay {
	o := &Overlay{visible: true}
	o.Resize(width, height)
	return o
}

// Width returns the overlay width.
func (o *Overlay) Width() int { return o.width }

// Height returns the overlay height.
func (o *Overlay) Height() int { return o.height }

// Resize changes the overlay size and reallocates its frame.
func (o *Overlay) Resize(width, height int) {
	o.width, o.height = max(width, 0), max(height, 0)
	o.frame = image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	o.RequestRedraw()
}

// Position returns the rounded screen position, attached or not.
func (o *Overlay) Position() image.Point {
	return image.Pt(int(math.Round(o.x)), int(math.Round(o.y)))
}

// ScreenPosition returns the rounded screen position. It reports false
// while the overlay is not part of an attached root.
func (o *Overlay) ScreenPosition() (image.Point, bool) {
	if o.parent == nil || !o.parent.attached {
		return image.Point{}, false
	}
	return o.Position(), true
}

// Attached reports whether the overlay is part of an attached root.
func (o *Overlay) Attached() bool {
	return o.parent != nil && o.parent.attached
}

// MoveTo places the overlay at (x, y) in screen pixels.
func (o *Overlay) MoveTo(x, y float64) {
	o.x, o.y = x, y
	o.RequestRedraw()
}

// MoveBy applies a drag delta.
func (o *Overlay) MoveBy(dx, dy float64) {
	o.MoveTo(o.x+dx, o.y+dy)
}

// Visible reports whether the root paints the overlay.
func (o *Overlay) Visible() bool { return o.visible }

// SetVisible shows or hides the overlay.
func (o *Overlay) SetVisible(visible bool) { o.visible = visible }

// RequestRedraw records that the overlay needs to be painted again.
func (o *Overlay) RequestRedraw() { o.redraws++ }

// Redraws returns how many redraws have been requested.
func (o *Overlay) Redraws() int { return o.redraws }

// Frame returns the overlay's pixels, cleared to transparent, ready to be
// painted. The root shows whatever was last painted into it.
func (o *Overlay) Frame() *image.RGBA {
	clear(o.frame.Pix)
	return o.frame
}

// Pixels returns the overlay's pixels without clearing them.
func (o *Overlay) Pixels() *image.RGBA { return o.frame }
