// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import (
	"math"
	"testing"
)

func TestDownsampleFactor(t *testing.T) {
	tests := []struct {
		blur float64
		want float64
	}{
		{15, 2.0 / 15},
		{10, 0.2},
		{4, 0.5},
		{2, 0.5},
		{40, 0.05},
		{100, 0.05},
		{0, 0.5},
		{-3, 0.5},
		{math.NaN(), 0.5},
		{math.Inf(1), 0.05},
	}
	for _, tt := range tests {
		got := DownsampleFactor(tt.blur)
		if got != tt.want {
			t.Errorf("DownsampleFactor(%v) = %v, want %v", tt.blur, got, tt.want)
		}
		if got < MinDownsample || got > MaxDownsample {
			t.Errorf("DownsampleFactor(%v) = %v outside [%v, %v]", tt.blur, got, MinDownsample, MaxDownsample)
		}
	}
}

func TestRasterSize(t *testing.T) {
	tests := []struct {
		w, h         int
		factor       float64
		wantW, wantH int
	}{
		{100, 100, 0.05, 5, 5},
		{1080, 1920, 2.0 / 15, 144, 256},
		{101, 33, 0.5, 51, 17},
		{60, 60, 2.0 / 15, 8, 8},
		{1, 1, 0.05, 1, 1},
		{0, 0, 0.5, 1, 1},
		{19, 21, 0.05, 1, 2},
	}
	for _, tt := range tests {
		w, h := RasterSize(tt.w, tt.h, tt.factor)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("RasterSize(%d, %d, %v) = %dx%d, want %dx%d", tt.w, tt.h, tt.factor, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestRasterCommitSwapsBuffers(t *testing.T) {
	r := newRaster(3, 2)
	if r.usable() {
		t.Error("uncommitted raster is usable")
	}
	front, spare := r.front, r.spare
	r.commit(0.25)

	if r.Image() != spare || r.spare != front {
		t.Error("commit() did not swap the buffers")
	}
	if r.Factor() != 0.25 || !r.usable() {
		t.Errorf("after commit: Factor() = %v, usable = %v", r.Factor(), r.usable())
	}
	if r.Width() != 3 || r.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", r.Width(), r.Height())
	}

	var nilRaster *Raster
	if nilRaster.usable() {
		t.Error("nil raster is usable")
	}
}
