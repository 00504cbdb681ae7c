// Package export serializes composed chart scenes to SVG, PNG and PDF
// files at arbitrary scale.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/midbel/barplot"
)

// ErrBusy is returned when a raster export is started while another one
// is still running.
var ErrBusy = errors.New("export already in progress")

const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"

	DefaultName = "barplot"

	minScale = 1
	maxScale = 6
)

// Options selects the output format, target name and raster quality of
// one export.
type Options struct {
	Format      string
	Name        string
	Scale       int
	Transparent bool
}

// Filename returns the output file name: the trimmed name, defaulted to
// "barplot" when blank, with the format extension appended when it is
// missing.
func (o Options) Filename() string {
	var (
		name = strings.TrimSpace(o.Name)
		ext  = "." + o.format()
	)
	if name == "" {
		name = DefaultName
	}
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}

func (o Options) format() string {
	switch strings.ToLower(strings.TrimSpace(o.Format)) {
	case FormatSVG:
		return FormatSVG
	case FormatPDF:
		return FormatPDF
	default:
		return FormatPNG
	}
}

func (o Options) scale() int {
	if o.Scale < minScale {
		return minScale
	}
	if o.Scale > maxScale {
		return maxScale
	}
	return o.Scale
}

// FromSettings seeds options from the last confirmed export settings.
func FromSettings(s barplot.Settings) Options {
	return Options{
		Format:      s.Export.Format,
		Name:        s.Export.Name,
		Scale:       s.Export.Scale,
		Transparent: s.Export.Transparent,
	}
}

// Engine renders and writes chart exports. Raster exports do not
// overlap: a second call while one is running fails with ErrBusy, and
// the busy flag is cleared on every exit path.
type Engine struct {
	// DevicePixelRatio multiplies the raster pixel size on top of the
	// quality scale. Zero means 1.
	DevicePixelRatio float64

	// ContainerWidth is the measured display width used when the
	// settings pin no custom dimension.
	ContainerWidth float64

	mu   sync.Mutex
	busy bool
}

func (e *Engine) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return ErrBusy
	}
	e.busy = true
	return nil
}

func (e *Engine) end() {
	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()
}

func (e *Engine) dpr() float64 {
	if e.DevicePixelRatio <= 0 {
		return 1
	}
	return e.DevicePixelRatio
}

// WriteTo renders one export to w without touching the filesystem.
func (e *Engine) WriteTo(w io.Writer, s barplot.Settings, points []barplot.BarPoint, opts Options) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()
	return e.write(w, s, points, opts)
}

func (e *Engine) write(w io.Writer, s barplot.Settings, points []barplot.BarPoint, opts Options) error {
	scene := barplot.NewScene(s, points, e.ContainerWidth)
	scene.Transparent = opts.Transparent
	switch opts.format() {
	case FormatSVG:
		return writeSVG(w, scene)
	case FormatPDF:
		img, err := rasterize(scene, opts, e.dpr())
		if err != nil {
			return err
		}
		return writePDF(w, img, scene.Layout.Width, scene.Layout.Height)
	default:
		img, err := rasterize(scene, opts, e.dpr())
		if err != nil {
			return err
		}
		return writePNG(w, img)
	}
}

// Export writes the chart to <dir>/<name>.<format> and, on success,
// returns a settings copy with the confirmed options persisted as the
// new export defaults. On failure the original settings come back
// unchanged.
func (e *Engine) Export(s barplot.Settings, points []barplot.BarPoint, opts Options, dir string) (barplot.Settings, string, error) {
	if err := e.begin(); err != nil {
		return s, "", err
	}
	defer e.end()

	name := filepath.Join(dir, opts.Filename())
	f, err := os.Create(name)
	if err != nil {
		return s, "", fmt.Errorf("create %s: %w", name, err)
	}
	if err := e.write(f, s, points, opts); err != nil {
		f.Close()
		os.Remove(name)
		return s, "", err
	}
	if err := f.Close(); err != nil {
		return s, "", fmt.Errorf("close %s: %w", name, err)
	}
	s.Export = barplot.ExportDefaults{
		Format:      opts.format(),
		Name:        strings.TrimSpace(opts.Name),
		Scale:       opts.scale(),
		Transparent: opts.Transparent,
	}
	return s, name, nil
}
