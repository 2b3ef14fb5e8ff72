// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"fmt"
	"image"
)

// Capture snapshots the root into the background raster.
//
// The root is painted through a uniform scale of DownsampleFactor into a
// buffer of RasterSize, with the overlay hidden for the duration of the
// paint. When the size is unchanged the existing Raster is reused without
// allocating. On success the overlay is asked to redraw and the glass
// becomes primed.
//
// On failure a *CaptureError is returned, the failure is logged, and the
// previous raster (if any) stays in use. The overlay's visibility is
// restored even if the root panics.
func (g *Glass) Capture() (*Raster, error) {
	root := g.root
	if g.closed || !alive(root) {
		return nil, g.captureFailed(0, 0, ErrRootUnavailable)
	}
	rw, rh := root.Width(), root.Height()
	if rw <= 0 || rh <= 0 {
		return nil, g.captureFailed(rw, rh, ErrRootEmpty)
	}

	factor := g.factor
	w, h := RasterSize(rw, rh, factor)

	r := g.raster
	fresh := r == nil || r.Width() != w || r.Height() != h
	if fresh {
		r = newRaster(w, h)
	}

	target := r.spare
	clear(target.Pix)
	if err := g.paintRoot(root, target, factor); err != nil {
		return nil, g.captureFailed(rw, rh, err)
	}
	r.commit(factor)

	if fresh {
		Logger().Debug("glass: raster allocated",
			"width", w, "height", h, "factor", factor)
		g.raster = r
	}
	if g.state == StateUnprimed {
		g.state = StatePrimed
		Logger().Debug("glass: primed", "root_width", rw, "root_height", rh)
	}
	g.invalidate()
	return r, nil
}

// paintRoot runs the root paint with the overlay hidden. A panic inside the
// root is converted into ErrPaintPanic.
func (g *Glass) paintRoot(root RootSurface, dst *image.RGBA, scale float64) (err error) {
	restore := g.hideOverlay()
	defer restore()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrPaintPanic, p)
		}
	}()
	return root.PaintInto(dst, scale)
}

// hideOverlay makes the overlay invisible and returns the function that
// puts its previous visibility back.
func (g *Glass) hideOverlay() (restore func()) {
	if g.overlay == nil {
		return func() {}
	}
	was := g.overlay.Visible()
	g.overlay.SetVisible(false)
	return func() { g.overlay.SetVisible(was) }
}

func (g *Glass) captureFailed(w, h int, err error) error {
	cerr := &CaptureError{Width: w, Height: h, Err: err}
	Logger().Warn("glass: snapshot capture failed", "err", cerr)
	return cerr
}
