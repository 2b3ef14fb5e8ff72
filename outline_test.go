// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
	"golang.org/x/image/vector"
)

func TestNewOutlineClampsRadius(t *testing.T) {
	tests := []struct {
		w, h int
		r    float64
		want float64
	}{
		{40, 20, 6, 6},
		{40, 20, 30, 10},
		{40, 20, -4, 0},
		{0, 20, 5, 0},
	}
	for _, tt := range tests {
		if got := NewOutline(tt.w, tt.h, tt.r).Radius(); got != tt.want {
			t.Errorf("NewOutline(%d, %d, %v).Radius() = %v, want %v", tt.w, tt.h, tt.r, got, tt.want)
		}
	}
}

func TestOutlineContains(t *testing.T) {
	o := NewOutline(20, 20, 8)
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{0.5, 10, true},
		{10, 0.5, true},
		{0.5, 0.5, false},
		{19.5, 19.5, false},
		{2, 2, false},
		{3, 3, true},
		{-1, 10, false},
		{21, 10, false},
	}
	for _, tt := range tests {
		if got := o.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestOutlineMask(t *testing.T) {
	o := NewOutline(20, 10, 4)
	m := o.Mask()
	if got, want := m.Bounds(), image.Rect(0, 0, 20, 10); got != want {
		t.Fatalf("Mask().Bounds() = %v, want %v", got, want)
	}
	if a := m.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := m.AlphaAt(10, 5).A; a != 0xFF {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := m.AlphaAt(10, 0).A; a != 0xFF {
		t.Errorf("top edge alpha = %d, want 255", a)
	}
	// The arc crosses this pixel, so coverage is partial.
	if a := m.AlphaAt(1, 1).A; a == 0 || a == 0xFF {
		t.Errorf("arc pixel alpha = %d, want partial coverage", a)
	}
}

func TestOutlineRingMask(t *testing.T) {
	o := NewOutline(20, 20, 0)
	ring := o.RingMask(3)

	tests := []struct {
		p    image.Point
		want uint8
	}{
		{image.Pt(10, 0), 0xFF},
		{image.Pt(10, 2), 0xFF},
		{image.Pt(10, 3), 0},
		{image.Pt(0, 10), 0xFF},
		{image.Pt(19, 10), 0xFF},
		{image.Pt(10, 10), 0},
	}
	for _, tt := range tests {
		if got := ring.AlphaAt(tt.p.X, tt.p.Y).A; got != tt.want {
			t.Errorf("ring alpha at %v = %d, want %d", tt.p, got, tt.want)
		}
	}

	if a := o.RingMask(0).AlphaAt(10, 0).A; a != 0 {
		t.Errorf("zero-width ring alpha = %d, want 0", a)
	}
	// A ring wider than half the box fills it.
	if a := o.RingMask(15).AlphaAt(10, 10).A; a != 0xFF {
		t.Errorf("oversized ring center alpha = %d, want 255", a)
	}
}

func TestOutlineInset(t *testing.T) {
	in := NewOutline(20, 20, 5).Inset(2)
	if in.Min != gg.Pt(2, 2) || in.Max != gg.Pt(18, 18) {
		t.Errorf("Inset(2) = %v-%v, want (2,2)-(18,18)", in.Min, in.Max)
	}
	if in.Radius() != 3 {
		t.Errorf("Inset(2).Radius() = %v, want 3", in.Radius())
	}
	if !NewOutline(4, 4, 0).Inset(3).Empty() {
		t.Error("over-inset outline is not empty")
	}
}

func TestRoundedOutlineProvider(t *testing.T) {
	var p OutlineProvider = RoundedOutlineProvider{Radius: 12}
	o := p.Outline(30, 16)
	if o.Bounds() != image.Rect(0, 0, 30, 16) || o.Radius() != 8 {
		t.Errorf("Outline(30, 16) = %v r=%v, want (0,0)-(30,16) r=8", o.Bounds(), o.Radius())
	}
}

func TestOutlinePath(t *testing.T) {
	els := NewOutline(20, 10, 4).Path().Elements()
	if len(els) == 0 {
		t.Fatal("Path() has no elements")
	}
	if _, ok := els[0].(gg.MoveTo); !ok {
		t.Errorf("Path() starts with %T, want gg.MoveTo", els[0])
	}
	var cubics int
	for _, el := range els {
		if _, ok := el.(gg.CubicTo); ok {
			cubics++
		}
	}
	if cubics < 4 {
		t.Errorf("Path() has %d cubics, want at least one per corner", cubics)
	}

	for _, el := range NewOutline(20, 10, 0).Path().Elements() {
		if _, ok := el.(gg.CubicTo); ok {
			t.Fatal("square outline path contains a cubic")
		}
	}
	if n := len(NewOutline(0, 10, 4).Path().Elements()); n != 0 {
		t.Errorf("empty outline path has %d elements, want 0", n)
	}
}

func TestRasterizePathTransformed(t *testing.T) {
	p := gg.NewPath()
	p.Rectangle(0, 0, 4, 4)
	p = p.Transform(gg.Translate(2, 3))

	z := vector.NewRasterizer(10, 10)
	rasterizePath(z, p)
	mask := image.NewAlpha(image.Rect(0, 0, 10, 10))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	tests := []struct {
		p    image.Point
		want uint8
	}{
		{image.Pt(2, 3), 0xFF},
		{image.Pt(5, 6), 0xFF},
		{image.Pt(1, 3), 0},
		{image.Pt(6, 6), 0},
		{image.Pt(2, 7), 0},
	}
	for _, tt := range tests {
		if got := mask.AlphaAt(tt.p.X, tt.p.Y).A; got != tt.want {
			t.Errorf("alpha at %v = %d, want %d", tt.p, got, tt.want)
		}
	}
}
