package barplot

import (
	"bytes"
	"strings"
	"testing"
)

func renderScene(t *testing.T, scene Scene) string {
	t.Helper()
	var buf bytes.Buffer
	scene.Render(&buf)
	if buf.Len() == 0 {
		t.Fatal("empty render")
	}
	return buf.String()
}

func TestSceneRender(t *testing.T) {
	s := DefaultSettings()
	s.Title.Text = "Quarterly revenue"
	s.Subtitle.Text = "fiscal 2025"
	s.Background = "#fafbfc"

	doc := renderScene(t, NewScene(s, testPoints(5, 3, 8), 800))
	if !strings.Contains(doc, "<svg") {
		t.Error("missing svg root")
	}
	for _, want := range []string{"Quarterly revenue", "fiscal 2025", "#fafbfc"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in output", want)
		}
	}
	// Every bar fill color must reach the document.
	pal := GetPalette(s.Palette)
	for i := 0; i < 3; i++ {
		if !strings.Contains(doc, pal.At(i)) {
			t.Errorf("missing bar color %s", pal.At(i))
		}
	}
}

func TestSceneRenderTransparent(t *testing.T) {
	s := DefaultSettings()
	s.Background = "#0a1b2c"

	scene := NewScene(s, testPoints(1, 2), 800)
	if doc := renderScene(t, scene); !strings.Contains(doc, "#0a1b2c") {
		t.Fatal("background color missing from opaque render")
	}
	scene.Transparent = true
	if doc := renderScene(t, scene); strings.Contains(doc, "#0a1b2c") {
		t.Error("transparent render must omit the background")
	}
}

func TestSceneRenderTickLabels(t *testing.T) {
	var (
		s      = DefaultSettings()
		points = testPoints(5, 3, 8, 2)
	)
	points[0].Label = "alpha"
	points[2].Label = "gamma"
	scene := NewScene(s, points, 800)
	doc := renderScene(t, scene)
	for _, want := range []string{"alpha", "gamma"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing category label %q", want)
		}
	}
	// Value axis ticks for extent [0, 8].
	for _, want := range []string{">0<", ">8<"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing tick label %s", want)
		}
	}
}

func TestSceneRenderValueLabels(t *testing.T) {
	s := DefaultSettings()
	s.ValueLabels.Show = true
	points := testPoints(4.25, 7)
	doc := renderScene(t, NewScene(s, points, 800))
	for _, want := range []string{"4.25", "7"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing value label %q", want)
		}
	}
}

func TestSceneRenderGrid(t *testing.T) {
	s := DefaultSettings()
	s.YAxis.ShowGrid = true
	s.YAxis.GridStyle = StyleDashed
	s.YAxis.GridColor = "#9ca3af"
	doc := renderScene(t, NewScene(s, testPoints(5, 3), 800))
	if !strings.Contains(doc, "#9ca3af") {
		t.Error("grid lines missing from output")
	}
}

func TestSceneRenderRoundedCorners(t *testing.T) {
	var (
		s      = DefaultSettings()
		points = testPoints(5, 3)
	)
	square := renderScene(t, NewScene(s, points, 800))
	s.CornerRadius = 8
	rounded := renderScene(t, NewScene(s, points, 800))
	if square == rounded {
		t.Error("corner radius must change the bar outlines")
	}
}

func TestFormatTick(t *testing.T) {
	data := []struct {
		In   float64
		Want string
	}{
		{In: 0, Want: "0"},
		{In: 5, Want: "5"},
		{In: -2.5, Want: "-2.5"},
		{In: 0.125, Want: "0.125"},
		{In: 1.0000001, Want: "1"},
		{In: -0.0000001, Want: "0"},
	}
	for _, d := range data {
		if got := FormatTick(d.In); got != d.Want {
			t.Errorf("FormatTick(%g): want %q, got %q", d.In, d.Want, got)
		}
	}
}
