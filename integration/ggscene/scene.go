// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

var (
	// ErrUnsupportedTransform is returned when the paint transform rotates,
	// shears or flips the scene.
	ErrUnsupportedTransform = errors.New("ggscene: unsupported transform")

	// ErrInvalidDimensions is returned for a scene with no area.
	ErrInvalidDimensions = errors.New("ggscene: invalid dimensions")
)

// DrawFunc draws a scene into dc in scene coordinates. The context arrives
// with the paint transform already applied.
type DrawFunc func(dc *gg.Context) error

// Scene is a width x height drawing rendered through gg on demand.
type Scene struct {
	width  int
	height int
	draw   DrawFunc
}

// New creates a scene of the given logical size.
func New(width, height int, fn DrawFunc) *Scene {
	return &Scene{width: width, height: height, draw: fn}
}

// Width returns the logical width.
func (s *Scene) Width() int { return s.width }

// Height returns the logical height.
func (s *Scene) Height() int { return s.height }

// Draw renders the scene through m and composites it over dst. It
// implements surface.Content.
func (s *Scene) Draw(dst draw.Image, m f64.Aff3) error {
	if s.width <= 0 || s.height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, s.width, s.height)
	}
	if m[1] != 0 || m[3] != 0 || !(m[0] > 0) || !(m[4] > 0) {
		return fmt.Errorf("%w: %v", ErrUnsupportedTransform, m)
	}
	if s.draw == nil {
		return nil
	}

	area := image.Rect(
		int(math.Floor(m[2])), int(math.Floor(m[5])),
		int(math.Ceil(m[2]+m[0]*float64(s.width))), int(math.Ceil(m[5]+m[4]*float64(s.height))),
	).Intersect(dst.Bounds())
	if area.Empty() {
		return nil
	}

	dc := gg.NewContext(area.Dx(), area.Dy())
	defer dc.Close()
	dc.Translate(m[2]-float64(area.Min.X), m[5]-float64(area.Min.Y))
	dc.Scale(m[0], m[4])
	if err := s.draw(dc); err != nil {
		return fmt.Errorf("ggscene: draw: %w", err)
	}

	gg.Logger().Debug("ggscene: rendered", "width", area.Dx(), "height", area.Dy(), "scale", m[0])
	draw.Draw(dst, area, dc.Image(), image.Point{}, draw.Over)
	return nil
}
