package export

import (
	"io"

	"github.com/midbel/barplot"
)

func writeSVG(w io.Writer, scene barplot.Scene) error {
	scene.Render(w)
	return nil
}
