// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides in-memory host surfaces for the glass effect.
//
// A host UI toolkit normally supplies the root and overlay surfaces. This
// package implements both on plain images so the effect can run headless:
// in tests, in the demo command, or in any program that composes frames
// itself.
//
//   - Root is a laid-out content area with a screen position. It paints its
//     Content and every visible child Overlay into a buffer through a
//     uniform scale.
//   - Overlay is a positioned, movable widget with a pixel buffer, a
//     visibility flag and a redraw counter.
//
// Example:
//
//	root := surface.NewRoot(surface.ImageContent{Image: background}, 400, 800)
//	card := surface.NewOverlay(240, 160)
//	root.AddOverlay(card)
//
//	g := glass.New(card)
//	g.Attach(root)
//	g.RootLayout()
//
//	card.MoveBy(12, -4) // drag input
//	g.Paint(card.Frame())
//
//	frame := image.NewRGBA(image.Rect(0, 0, 400, 800))
//	_ = root.PaintInto(frame, 1)
//
// Surfaces are NOT thread-safe. Use them from a single goroutine.
package surface
