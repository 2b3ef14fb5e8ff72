// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glass package.
var (
	// ErrRootUnavailable is returned when no root is attached or the root
	// reports that it has been detached from the host.
	ErrRootUnavailable = errors.New("glass: root surface unavailable")

	// ErrRootEmpty is returned when the root has not been measured yet.
	ErrRootEmpty = errors.New("glass: root surface has zero size")

	// ErrPaintPanic is returned when the root panics while painting into
	// the snapshot buffer.
	ErrPaintPanic = errors.New("glass: root paint panicked")

	// ErrDegenerateGeometry marks a paint that could not project the
	// background because a surface has no size or no screen position.
	ErrDegenerateGeometry = errors.New("glass: degenerate geometry")
)

// CaptureError is returned by Capture when a snapshot could not be taken.
// The previously captured raster, if any, is still in use.
type CaptureError struct {
	// Width and Height are the root dimensions seen by the capture.
	Width, Height int

	// Err is the underlying cause.
	Err error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("glass: capture %dx%d: %v", e.Width, e.Height, e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}
