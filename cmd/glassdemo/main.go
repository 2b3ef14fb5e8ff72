// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command glassdemo renders a liquid glass card dragged across a sample
// screen and writes one PNG per frame.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/integration/ggscene"
	"github.com/gogpu/glass/surface"
)

func main() {
	var (
		width   = flag.Int("width", 480, "screen width")
		height  = flag.Int("height", 800, "screen height")
		frames  = flag.Int("frames", 12, "number of frames along the drag path")
		output  = flag.String("output", "frames", "output directory")
		blur    = flag.Float64("blur", glass.DefaultBlurRadius, "blur radius")
		zoom    = flag.Float64("zoom", glass.DefaultZoom, "magnification")
		tintHex = flag.String("tint", glass.DefaultTint.String(), "tint color as #AARRGGBB")
		radius  = flag.Float64("radius", 28, "card corner radius")
		legacy  = flag.Bool("legacy", false, "draw only tint and border")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	glass.SetLogger(logger)
	gg.SetLogger(logger)

	tint, err := glass.ParseHex(*tintHex)
	if err != nil {
		log.Fatalf("Invalid -tint: %v", err)
	}
	if *width <= 0 || *height <= 0 || *frames <= 0 {
		log.Fatalf("Invalid size %dx%d with %d frames", *width, *height, *frames)
	}

	w, h := *width, *height
	root := surface.NewRoot(surface.Layers{
		ggscene.New(w, h, drawScreen(float64(w), float64(h))),
		surface.ImageContent{Image: labels(w, h)},
	}, w, h)

	cardW, cardH := w*3/5, 160
	card := surface.NewOverlay(cardW, cardH)
	root.AddOverlay(card)

	opts := []glass.Option{
		glass.WithBlurRadius(*blur),
		glass.WithZoom(*zoom),
		glass.WithTint(tint),
		glass.WithCornerRadius(*radius),
	}
	if *legacy {
		opts = append(opts, glass.WithLayering(glass.LayeringLegacy))
	}
	g := glass.New(card, opts...)
	defer g.Close()
	g.Attach(root)

	if !g.RootLayout() {
		log.Fatal("Background capture failed")
	}
	r := g.Raster()
	logger.Info("captured background", "width", r.Width(), "height", r.Height(), "factor", r.Factor())

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	px, py := 0.0, 0.0
	for i := range *frames {
		x, y := dragPath(i, *frames, w, h, cardW, cardH)
		card.MoveBy(x-px, y-py)
		px, py = x, y

		g.Paint(card.Frame())
		clear(frame.Pix)
		if err := root.PaintInto(frame, 1); err != nil {
			log.Fatalf("Failed to compose frame %d: %v", i, err)
		}

		path := filepath.Join(*output, fmt.Sprintf("frame_%03d.png", i))
		if err := gg.NewContextForImage(frame).SavePNG(path); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		logger.Debug("frame saved", "path", path, "x", x, "y", y)
	}

	log.Printf("Demo saved %d frames to %s (%dx%d)\n", *frames, *output, w, h)
}

// dragPath returns the card position for frame i: a top-to-bottom sweep
// with a sideways wobble, the way a finger drags a card.
func dragPath(i, n, w, h, cardW, cardH int) (float64, float64) {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	x := float64(w-cardW)/2 + math.Sin(2*math.Pi*t)*float64(w)*0.15
	y := 40 + t*float64(h-cardH-80)
	return x, y
}

// drawScreen returns the sample screen: colored boxes, circles and a
// gradient card on a light background.
func drawScreen(w, h float64) ggscene.DrawFunc {
	return func(dc *gg.Context) error {
		dc.ClearWithColor(gg.Hex("#F0F0F0"))

		boxes := []struct {
			r, g, b float64
		}{
			{0.90, 0.22, 0.21},
			{0.12, 0.53, 0.90},
			{0.26, 0.63, 0.28},
		}
		bw := (w - 80) / 3
		for i, c := range boxes {
			dc.SetRGB(c.r, c.g, c.b)
			dc.DrawRoundedRectangle(20+float64(i)*(bw+20), 80, bw, bw, 16)
			if err := dc.Fill(); err != nil {
				return err
			}
		}

		dc.SetRGBA(0.85, 0.1, 0.75, 0.9)
		for i := range 4 {
			dc.DrawCircle(w*float64(i+1)/5, h*0.42, w/12)
			if err := dc.Fill(); err != nil {
				return err
			}
		}

		grad := gg.NewLinearGradientBrush(20, h*0.55, w-20, h*0.8).
			AddColorStop(0, gg.Hex("#7B1FA2")).
			AddColorStop(1, gg.Hex("#00897B"))
		dc.SetFillBrush(grad)
		dc.DrawRoundedRectangle(20, h*0.55, w-40, h*0.25, 24)
		if err := dc.Fill(); err != nil {
			return err
		}

		dc.SetRGB(0.2, 0.2, 0.2)
		for i := range 6 {
			dc.DrawRectangle(20, h*0.84+float64(i)*12, w*(0.9-0.1*float64(i%3)), 4)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
		return nil
	}
}

// labels renders the screen's text into a transparent layer.
func labels(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}),
		Face: basicfont.Face7x13,
	}
	text := []struct {
		s    string
		x, y int
	}{
		{"Liquid Glass", 20, 40},
		{"Drag the card to see the background move", 20, 60},
		{"Featured", 40, h*55/100 + 30},
	}
	for _, t := range text {
		d.Dot = fixed.P(t.x, t.y)
		d.DrawString(t.s)
	}
	return img
}
