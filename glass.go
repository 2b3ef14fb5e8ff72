// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"
	"math"
)

// State tracks whether a Glass has a background to project.
type State int

const (
	// StateUnprimed means no snapshot has succeeded since Attach.
	StateUnprimed State = iota

	// StatePrimed means at least one snapshot has succeeded.
	StatePrimed
)

// String returns the state name.
func (s State) String() string {
	if s == StatePrimed {
		return "primed"
	}
	return "unprimed"
}

// Settings is the host-facing configuration of a Glass.
type Settings struct {
	BlurRadius   float64
	Zoom         float64
	Tint         ARGB
	CornerRadius float64
}

// Glass is one liquid glass overlay. It owns its background raster and
// borrows the root surface it samples from.
//
// Glass is NOT safe for concurrent use; drive it from the UI thread.
type Glass struct {
	opts    options
	factor  float64
	overlay OverlaySurface
	root    RootSurface
	raster  *Raster
	state   State
	closed  bool

	sat   ColorMatrix
	geo   geometry
	layer *image.RGBA
}

// New creates a Glass painting into overlay. It starts unprimed with no
// root; call Attach before the first layout.
func New(overlay OverlaySurface, opts ...Option) *Glass {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Glass{
		opts:    o,
		factor:  DownsampleFactor(o.blurRadius),
		overlay: overlay,
		sat:     SaturationMatrix(o.saturation),
	}
}

// Attach sets the root surface the glass samples from and re-arms the
// one-shot layout capture (see RootLayout). Attaching a different root
// drops the raster captured from the previous one.
func (g *Glass) Attach(root RootSurface) {
	if root != g.root {
		g.raster = nil
	}
	g.root = root
	g.state = StateUnprimed
	g.closed = false
}

// Close releases the raster together with the root reference. A closed
// Glass paints the placeholder until it is attached again.
func (g *Glass) Close() error {
	g.raster = nil
	g.root = nil
	g.layer = nil
	g.geo = geometry{}
	g.state = StateUnprimed
	g.closed = true
	return nil
}

// RootLayout is the host's layout-complete hook. While the glass is
// unprimed and the root has a nonzero size it captures a snapshot; once a
// capture has succeeded further calls do nothing. It reports whether a
// capture happened.
func (g *Glass) RootLayout() bool {
	if g.closed || g.state == StatePrimed || !alive(g.root) {
		return false
	}
	if g.root.Width() <= 0 || g.root.Height() <= 0 {
		return false
	}
	_, err := g.Capture()
	return err == nil
}

// State returns the priming state.
func (g *Glass) State() State { return g.state }

// Raster returns the current background raster, or nil before the first
// successful capture.
func (g *Glass) Raster() *Raster { return g.raster }

// Root returns the attached root surface.
func (g *Glass) Root() RootSurface { return g.root }

// BlurRadius returns the blur strength.
func (g *Glass) BlurRadius() float64 { return g.opts.blurRadius }

// DownsampleFactor returns the factor the next capture will use.
func (g *Glass) DownsampleFactor() float64 { return g.factor }

// Zoom returns the magnification.
func (g *Glass) Zoom() float64 { return g.opts.zoom }

// Tint returns the tint color.
func (g *Glass) Tint() ARGB { return g.opts.tint }

// CornerRadius returns the configured corner radius.
func (g *Glass) CornerRadius() float64 { return g.opts.cornerRadius }

// Layering returns the lighting layers in use.
func (g *Glass) Layering() Layering { return g.opts.layering }

// Settings returns the host-facing configuration.
func (g *Glass) Settings() Settings {
	return Settings{
		BlurRadius:   g.opts.blurRadius,
		Zoom:         g.opts.zoom,
		Tint:         g.opts.tint,
		CornerRadius: g.opts.cornerRadius,
	}
}

// SetBlurRadius changes the blur strength. The downsample factor is
// recomputed and, when a root is attached, the background is recaptured.
// A failed recapture keeps the previous raster and is returned.
func (g *Glass) SetBlurRadius(radius float64) error {
	g.opts.blurRadius = radius
	g.factor = DownsampleFactor(radius)
	if g.root == nil || g.closed {
		return nil
	}
	_, err := g.Capture()
	return err
}

// SetZoom changes the magnification. Non-positive values are ignored.
func (g *Glass) SetZoom(zoom float64) {
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return
	}
	g.opts.zoom = zoom
	g.invalidate()
}

// SetTint changes the tint color.
func (g *Glass) SetTint(c ARGB) {
	g.opts.tint = c
	g.invalidate()
}

// SetCornerRadius changes the corner radius of the clip, the outline and
// every lighting layer.
func (g *Glass) SetCornerRadius(r float64) {
	g.opts.cornerRadius = math.Max(r, 0)
	g.invalidate()
}

// SetBorder changes the border ring.
func (g *Glass) SetBorder(c ARGB, width float64) {
	g.opts.borderColor = c
	g.opts.borderWidth = math.Max(width, 0)
	g.invalidate()
}

// SetSaturation changes the saturation multiplier of the background.
func (g *Glass) SetSaturation(s float64) {
	g.opts.saturation = math.Max(s, 0)
	g.sat = SaturationMatrix(g.opts.saturation)
	g.invalidate()
}

// Apply updates every host-facing setting at once. The background is
// recaptured only when the blur radius changed.
func (g *Glass) Apply(s Settings) error {
	if s.Zoom > 0 && !math.IsInf(s.Zoom, 0) {
		g.opts.zoom = s.Zoom
	}
	g.opts.tint = s.Tint
	g.opts.cornerRadius = math.Max(s.CornerRadius, 0)
	if s.BlurRadius != g.opts.blurRadius {
		return g.SetBlurRadius(s.BlurRadius)
	}
	g.invalidate()
	return nil
}

// Outline returns the overlay's current outline. It follows both the
// overlay size and the corner radius. Without an overlay it is empty.
func (g *Glass) Outline() Outline {
	if g.overlay == nil {
		return Outline{}
	}
	return g.geometry(g.overlay.Width(), g.overlay.Height()).outline
}

func (g *Glass) invalidate() {
	if g.overlay != nil {
		g.overlay.RequestRedraw()
	}
}
