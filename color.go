// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ARGB is a non-premultiplied color packed as 0xAARRGGBB.
// It implements color.Color.
type ARGB uint32

// Common colors.
const (
	Transparent ARGB = 0x00000000
	Black       ARGB = 0xFF000000
	White       ARGB = 0xFFFFFFFF

	// PlaceholderColor fills the overlay while no background is available.
	PlaceholderColor ARGB = 0xFFCCCCCC
)

// A returns the alpha component.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c ARGB) B() uint8 { return uint8(c) }

// NRGBA converts the color to color.NRGBA.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color, returning alpha-premultiplied components.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return c&0x00FFFFFF | ARGB(a)<<24
}

// String formats the color as #AARRGGBB.
func (c ARGB) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ARGBOf converts any color.Color to ARGB.
func ARGBOf(col color.Color) ARGB {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return ARGB(n.A)<<24 | ARGB(n.R)<<16 | ARGB(n.G)<<8 | ARGB(n.B)
}

// GG returns c as a straight-alpha gg color.
func (c ARGB) GG() gg.RGBA {
	return gg.RGBA2(
		float64(c.R())/255, float64(c.G())/255, float64(c.B())/255, float64(c.A())/255,
	)
}

// ARGBOfGG converts a straight-alpha gg color to ARGB, rounding each channel
// to the nearest 8-bit value.
func ARGBOfGG(c gg.RGBA) ARGB {
	ch := func(v float64) ARGB {
		return ARGB(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return ch(c.A)<<24 | ch(c.R)<<16 | ch(c.G)<<8 | ch(c.B)
}

// ParseHex parses a hex color with alpha first, as UI toolkits write them.
// Supported forms, with or without a leading '#': "RGB", "ARGB", "RRGGBB"
// and "AARRGGBB". Forms without alpha are opaque.
//
// gg.Hex expects alpha last, so the alpha digits are rotated to the end
// before delegating to it.
func ParseHex(s string) (ARGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return 0, fmt.Errorf("glass: invalid hex color %q", s)
	}
	switch len(hex) {
	case 3, 6:
	case 4:
		hex = hex[1:] + hex[:1]
	case 8:
		hex = hex[2:] + hex[:2]
	default:
		return 0, fmt.Errorf("glass: invalid hex color %q", s)
	}
	return ARGBOfGG(gg.Hex(hex)), nil
}
