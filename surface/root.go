// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"slices"

	"golang.org/x/image/draw"
)

// Common errors returned by surfaces.
var (
	// ErrDetached is returned when painting a root that has been detached.
	ErrDetached = errors.New("surface: root is detached")

	// ErrInvalidScale is returned for non-positive paint scales.
	ErrInvalidScale = errors.New("surface: invalid scale")
)

// Root is a content area laid out at a screen position. Overlays added to
// it are painted over the content, in insertion order, while visible.
type Root struct {
	content  Content
	width    int
	height   int
	pos      image.Point
	attached bool
	overlays []*Overlay
	paints   int
}

// NewRoot creates an attached root of the given size at the screen origin.
func NewRoot(content Content, width, height int) *Root {
	return &Root{
		content:  content,
		width:    max(width, 0),
		height:   max(height, 0),
		attached: true,
	}
}

// Width returns the root width.
func (r *Root) Width() int { return r.width }

// Height returns the root height.
func (r *Root) Height() int { return r.height }

// Resize changes the laid-out size. Zero is allowed and means "not measured".
func (r *Root) Resize(width, height int) {
	r.width, r.height = max(width, 0), max(height, 0)
}

// ScreenPosition returns the root's top-left corner. It reports false once
// the root is detached.
func (r *Root) ScreenPosition() (image.Point, bool) {
	return r.pos, r.attached
}

// SetScreenPosition moves the root on screen.
func (r *Root) SetScreenPosition(p image.Point) {
	r.pos = p
}

// Attached reports whether the root is still part of the host.
func (r *Root) Attached() bool { return r.attached }

// Detach tears the root down. Its overlays lose their screen position.
func (r *Root) Detach() { r.attached = false }

// SetContent replaces what the root shows.
func (r *Root) SetContent(c Content) { r.content = c }

// Paints returns how many times PaintInto has run.
func (r *Root) Paints() int { return r.paints }

// AddOverlay makes o a child of r. Adding an overlay twice is a no-op.
func (r *Root) AddOverlay(o *Overlay) {
	if o.parent == r {
		return
	}
	if o.parent != nil {
		o.parent.RemoveOverlay(o)
	}
	o.parent = r
	r.overlays = append(r.overlays, o)
}

// RemoveOverlay detaches o from r.
func (r *Root) RemoveOverlay(o *Overlay) {
	if i := slices.Index(r.overlays, o); i >= 0 {
		r.overlays = slices.Delete(r.overlays, i, i+1)
	}
	if o.parent == r {
		o.parent = nil
	}
}

// PaintInto paints the content and every visible overlay into dst, scaled
// uniformly by scale about the root origin.
func (r *Root) PaintInto(dst draw.Image, scale float64) error {
	if !r.attached {
		return ErrDetached
	}
	if !(scale > 0) {
		return ErrInvalidScale
	}
	r.paints++

	m := scaleTranslate(scale, 0, 0)
	if r.content != nil {
		if err := r.content.Draw(dst, m); err != nil {
			return err
		}
	}
	for _, o := range r.overlays {
		if !o.visible || o.frame == nil {
			continue
		}
		off := o.Position().Sub(r.pos)
		if err := transform(dst, scaleTranslate(scale, off.X, off.Y), o.frame, draw.Over, draw.ApproxBiLinear); err != nil {
			return err
		}
	}
	return nil
}
