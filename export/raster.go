package export

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/midbel/barplot"
)

// rasterize renders the scene to an RGBA image sized at the displayed
// dimensions times the quality scale times the device pixel ratio.
func rasterize(scene barplot.Scene, opts Options, dpr float64) (image.Image, error) {
	var buf bytes.Buffer
	scene.Render(&buf)

	icon, err := oksvg.ReadIconStream(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	var (
		factor = float64(opts.scale()) * dpr
		w      = int(math.Round(scene.Layout.Width * factor))
		h      = int(math.Round(scene.Layout.Height * factor))
	)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if !opts.Transparent {
		bg := barplot.ParseColor(scene.Settings.Background)
		draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	}
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return dst, nil
}

func writePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
