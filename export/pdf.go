package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"
)

// writePDF embeds the rasterized chart as a single page sized to the
// chart's logical pixel dimensions, landscape when wider than tall.
func writePDF(w io.Writer, img image.Image, width, height float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode page image: %w", err)
	}
	var (
		orient = "P"
		size   = fpdf.SizeType{Wd: width, Ht: height}
	)
	if width > height {
		orient = "L"
		size = fpdf.SizeType{Wd: height, Ht: width}
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orient,
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.AddPage()
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("chart", opt, &buf)
	pdf.ImageOptions("chart", 0, 0, width, height, false, opt, 0, "")
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
