// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggscene lets a gg drawing function act as the content of a glass
// root surface.
//
// The root surface paints its content at two very different scales: at 1
// when composing a visible frame and at the glass downsample factor (as
// small as 0.05) when the glass captures its background. Scene renders the
// drawing function through gg at whatever scale it is asked for, so the
// small capture is a real vector rendering and not a resample of a big
// bitmap.
//
// # Usage
//
//	sc := ggscene.New(800, 600, func(dc *gg.Context) error {
//	    dc.ClearWithColor(gg.Hex("#F0F0F0"))
//	    dc.SetRGB(1, 0, 0)
//	    dc.DrawRoundedRectangle(40, 40, 200, 120, 16)
//	    return dc.Fill()
//	})
//	root := surface.NewRoot(sc, 800, 600)
//
// # Transforms
//
// Only axis-aligned transforms (scale plus translation) are supported,
// which is all a root surface ever asks for. Other transforms return
// ErrUnsupportedTransform.
//
// # Thread Safety
//
// Scene holds no mutable state; it is safe to draw from several goroutines
// as long as the drawing function is.
package ggscene
