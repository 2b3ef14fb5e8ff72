// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"image"
	"math"
)

// ColorMatrix is a 4x5 color transform in row-major order:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
//
// Channels are straight-alpha values in [0, 255]; the fifth column is an
// offset in the same range.
type ColorMatrix [20]float64

// IdentityColorMatrix returns the matrix that leaves colors unchanged.
func IdentityColorMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SaturationMatrix returns a matrix scaling saturation by s: 0 is grayscale,
// 1 is unchanged, values above 1 push colors away from their luminance.
// Luminance weights match the ones UI toolkits use for saturation filters.
func SaturationMatrix(s float64) ColorMatrix {
	const (
		lumR = 0.213
		lumG = 0.715
		lumB = 0.072
	)
	inv := 1 - s
	r, g, b := lumR*inv, lumG*inv, lumB*inv
	return ColorMatrix{
		r + s, g, b, 0, 0,
		r, g + s, b, 0, 0,
		r, g, b + s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// IsIdentity reports whether m leaves colors unchanged.
func (m ColorMatrix) IsIdentity() bool {
	return m == IdentityColorMatrix()
}

// Apply transforms img in place. img holds premultiplied pixels; they are
// unpremultiplied for the transform and premultiplied again on the way out.
func (m ColorMatrix) Apply(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			a := float64(row[i+3])
			if a == 0 && m[19] == 0 {
				continue
			}
			var r, g, bl float64
			if a > 0 {
				r = float64(row[i+0]) * 255 / a
				g = float64(row[i+1]) * 255 / a
				bl = float64(row[i+2]) * 255 / a
			}

			nr := m[0]*r + m[1]*g + m[2]*bl + m[3]*a + m[4]
			ng := m[5]*r + m[6]*g + m[7]*bl + m[8]*a + m[9]
			nb := m[10]*r + m[11]*g + m[12]*bl + m[13]*a + m[14]
			na := clamp255(m[15]*r + m[16]*g + m[17]*bl + m[18]*a + m[19])

			f := na / 255
			row[i+0] = uint8(clamp255(nr)*f + 0.5)
			row[i+1] = uint8(clamp255(ng)*f + 0.5)
			row[i+2] = uint8(clamp255(nb)*f + 0.5)
			row[i+3] = uint8(na + 0.5)
		}
	}
}

func clamp255(x float64) float64 {
	return math.Max(0, math.Min(255, x))
}
