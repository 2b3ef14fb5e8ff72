// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestRootPaintIntoUnscaled(t *testing.T) {
	root := NewRoot(ImageContent{Image: solid(20, 10, red)}, 20, 10)
	dst := image.NewRGBA(image.Rect(0, 0, 20, 10))

	if err := root.PaintInto(dst, 1); err != nil {
		t.Fatalf("PaintInto() = %v", err)
	}
	if got := dst.RGBAAt(19, 9); got != red {
		t.Errorf("pixel (19,9) = %v, want %v", got, red)
	}
	if root.Paints() != 1 {
		t.Errorf("Paints() = %d, want 1", root.Paints())
	}
}

func TestRootPaintIntoScaled(t *testing.T) {
	// Left half red, right half blue.
	bg := solid(40, 40, red)
	draw.Draw(bg, image.Rect(20, 0, 40, 40), image.NewUniform(blue), image.Point{}, draw.Src)
	root := NewRoot(ImageContent{Image: bg, Interp: draw.NearestNeighbor}, 40, 40)

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := root.PaintInto(dst, 0.1); err != nil {
		t.Fatalf("PaintInto() = %v", err)
	}
	if got := dst.RGBAAt(0, 2); got != red {
		t.Errorf("pixel (0,2) = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(3, 2); got != blue {
		t.Errorf("pixel (3,2) = %v, want %v", got, blue)
	}
}

func TestRootPaintIntoErrors(t *testing.T) {
	root := NewRoot(nil, 10, 10)
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))

	if err := root.PaintInto(dst, 0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("PaintInto(scale 0) = %v, want ErrInvalidScale", err)
	}

	root.Detach()
	if err := root.PaintInto(dst, 1); !errors.Is(err, ErrDetached) {
		t.Errorf("PaintInto(detached) = %v, want ErrDetached", err)
	}
	if _, ok := root.ScreenPosition(); ok {
		t.Error("ScreenPosition() ok = true after Detach")
	}
}

func TestRootPaintIntoContentError(t *testing.T) {
	boom := errors.New("boom")
	root := NewRoot(ContentFunc(func(draw.Image, f64.Aff3) error { return boom }), 10, 10)
	if err := root.PaintInto(image.NewRGBA(image.Rect(0, 0, 10, 10)), 1); !errors.Is(err, boom) {
		t.Errorf("PaintInto() = %v, want %v", err, boom)
	}
}

func TestRootPaintsVisibleOverlays(t *testing.T) {
	root := NewRoot(ImageContent{Image: solid(30, 30, red)}, 30, 30)
	root.SetScreenPosition(image.Pt(100, 100))

	card := NewOverlay(10, 10)
	root.AddOverlay(card)
	card.MoveTo(110, 105)
	draw.Draw(card.Frame(), image.Rect(0, 0, 10, 10), image.NewUniform(green), image.Point{}, draw.Src)

	tests := []struct {
		name    string
		visible bool
		want    color.RGBA
	}{
		{"visible", true, green},
		{"hidden", false, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card.SetVisible(tt.visible)
			dst := image.NewRGBA(image.Rect(0, 0, 30, 30))
			if err := root.PaintInto(dst, 1); err != nil {
				t.Fatalf("PaintInto() = %v", err)
			}
			// The card sits at (10,5) in root space.
			if got := dst.RGBAAt(12, 7); got != tt.want {
				t.Errorf("pixel (12,7) = %v, want %v", got, tt.want)
			}
			if got := dst.RGBAAt(2, 2); got != red {
				t.Errorf("pixel (2,2) = %v, want %v", got, red)
			}
		})
	}
}

func TestOverlayScreenPosition(t *testing.T) {
	o := NewOverlay(10, 10)
	if _, ok := o.ScreenPosition(); ok {
		t.Error("ScreenPosition() ok = true before AddOverlay")
	}

	root := NewRoot(nil, 50, 50)
	root.AddOverlay(o)
	o.MoveTo(3.4, 7.6)
	p, ok := o.ScreenPosition()
	if !ok {
		t.Fatal("ScreenPosition() ok = false after AddOverlay")
	}
	if want := image.Pt(3, 8); p != want {
		t.Errorf("ScreenPosition() = %v, want %v", p, want)
	}

	root.RemoveOverlay(o)
	if o.Attached() {
		t.Error("Attached() = true after RemoveOverlay")
	}
}

func TestOverlayMoveByAccumulates(t *testing.T) {
	o := NewOverlay(10, 10)
	before := o.Redraws()
	for range 4 {
		o.MoveBy(0.3, -0.3)
	}
	if got, want := o.Position(), image.Pt(1, -1); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
	if got := o.Redraws() - before; got != 4 {
		t.Errorf("redraws after 4 moves = %d, want 4", got)
	}
}

func TestOverlayFrameIsCleared(t *testing.T) {
	o := NewOverlay(4, 4)
	draw.Draw(o.Frame(), image.Rect(0, 0, 4, 4), image.NewUniform(red), image.Point{}, draw.Src)
	if got := o.Pixels().RGBAAt(1, 1); got != red {
		t.Fatalf("Pixels() (1,1) = %v, want %v", got, red)
	}
	if got := o.Frame().RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("Frame() (1,1) = %v, want transparent", got)
	}
}

func TestAddOverlayMovesBetweenRoots(t *testing.T) {
	a, b := NewRoot(nil, 10, 10), NewRoot(nil, 10, 10)
	o := NewOverlay(2, 2)
	a.AddOverlay(o)
	a.AddOverlay(o)
	b.AddOverlay(o)
	if len(a.overlays) != 0 {
		t.Errorf("len(a.overlays) = %d, want 0", len(a.overlays))
	}
	if len(b.overlays) != 1 {
		t.Errorf("len(b.overlays) = %d, want 1", len(b.overlays))
	}
}

func TestLayersPaintInOrder(t *testing.T) {
	// A half-transparent green layer over red.
	top := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(top, top.Bounds(), image.NewUniform(color.NRGBA{G: 255, A: 128}), image.Point{}, draw.Src)
	content := Layers{
		ImageContent{Image: solid(4, 4, red)},
		ImageContent{Image: top},
	}

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := content.Draw(dst, scaleTranslate(1, 0, 0)); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	got := dst.RGBAAt(1, 1)
	if got.R == 0 || got.G == 0 || got.A != 255 {
		t.Errorf("pixel (1,1) = %v, want a red and green mix", got)
	}
}
