package barplot

import (
	"fmt"
	"image/color"
	"strings"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
	Pastel     Palette
	Dark       Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
	Pastel = splitColorString("a1c9f4ffb4828de5a1ff9f9bd0bbffdebb9bfab0e4cfcfcffffea3b9f2f0")
	Dark = splitColorString("1b9e77d95f027570b3e7298a66a61ee6ab02a6761d666666")
}

var palettes = map[string]Palette{}

func init() {
	palettes["category10"] = Category10
	palettes["tableau10"] = Tableau10
	palettes["pastel"] = Pastel
	palettes["dark"] = Dark
}

// GetPalette returns the palette registered under the given id, falling
// back to Category10 for unknown ids.
func GetPalette(id string) Palette {
	if p, ok := palettes[id]; ok {
		return p
	}
	return Category10
}

// At cycles through the palette by bar index.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return "#000000"
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// ParseColor converts a #rgb or #rrggbb string into a color. Unparseable
// strings yield opaque black rather than an error so a bad setting can
// not break rasterization.
func ParseColor(str string) color.RGBA {
	str = strings.TrimPrefix(strings.TrimSpace(str), "#")
	var r, g, b uint8
	switch len(str) {
	case 3:
		fmt.Sscanf(str, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		fmt.Sscanf(str, "%02x%02x%02x", &r, &g, &b)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
