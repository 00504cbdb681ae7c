package barplot

import (
	"encoding/json"
	"math"
	"testing"
)

func TestPatternTile(t *testing.T) {
	data := []struct {
		Kind  PatternKind
		Lines int
		Dots  int
	}{
		{Kind: PatternSolid, Lines: 0, Dots: 0},
		{Kind: PatternDiagonal, Lines: 3, Dots: 0},
		{Kind: PatternDots, Lines: 0, Dots: 2},
		{Kind: PatternCrosshatch, Lines: 2, Dots: 0},
		{Kind: PatternVertical, Lines: 2, Dots: 0},
	}
	for _, d := range data {
		tile := PatternTile(d.Kind, 8)
		if len(tile.Lines) != d.Lines || len(tile.Dots) != d.Dots {
			t.Errorf("%s: want %d lines and %d dots, got %d and %d",
				d.Kind, d.Lines, d.Dots, len(tile.Lines), len(tile.Dots))
		}
	}
}

func TestPatternTileSizeFloor(t *testing.T) {
	for _, size := range []float64{0, -4, math.NaN(), 1} {
		tile := PatternTile(PatternDiagonal, size)
		if tile.Size < minTileSize {
			t.Errorf("size %g: tile size %g below floor", size, tile.Size)
		}
		if tile.StrokeWidth <= 0 {
			t.Errorf("size %g: stroke width %g", size, tile.StrokeWidth)
		}
	}
}

func TestTileFillClipped(t *testing.T) {
	var (
		rect = Box{X: 10, Y: 20, W: 21, H: 13}
		eps  = 1e-9
	)
	for _, kind := range []PatternKind{PatternDiagonal, PatternDots, PatternCrosshatch, PatternVertical} {
		tile := PatternTile(kind, 8)
		lines, dots := tile.Fill(rect)
		if len(lines)+len(dots) == 0 {
			t.Errorf("%s: empty fill", kind)
		}
		for _, ln := range lines {
			for _, v := range []float64{ln.X1, ln.X2} {
				if v < rect.X-eps || v > rect.Right()+eps {
					t.Errorf("%s: line x %g outside [%g, %g]", kind, v, rect.X, rect.Right())
				}
			}
			for _, v := range []float64{ln.Y1, ln.Y2} {
				if v < rect.Y-eps || v > rect.Bottom()+eps {
					t.Errorf("%s: line y %g outside [%g, %g]", kind, v, rect.Y, rect.Bottom())
				}
			}
		}
		for _, d := range dots {
			if !dotInside(d, rect) {
				t.Errorf("%s: dot at (%g, %g) leaves the rectangle", kind, d.X, d.Y)
			}
		}
	}
}

func TestTileFillEmptyRect(t *testing.T) {
	tile := PatternTile(PatternCrosshatch, 8)
	for _, rect := range []Box{{W: 0, H: 10}, {W: 10, H: 0}, {W: -5, H: -5}} {
		if lines, dots := tile.Fill(rect); len(lines)+len(dots) != 0 {
			t.Errorf("rect %+v: expected empty fill", rect)
		}
	}
}

func TestClipSegment(t *testing.T) {
	rect := Box{X: 0, Y: 0, W: 10, H: 10}
	data := []struct {
		Name string
		In   Segment
		Want Segment
		Keep bool
	}{
		{
			Name: "inside",
			In:   Segment{X1: 2, Y1: 2, X2: 8, Y2: 8},
			Want: Segment{X1: 2, Y1: 2, X2: 8, Y2: 8},
			Keep: true,
		},
		{
			Name: "crossing",
			In:   Segment{X1: -5, Y1: 5, X2: 15, Y2: 5},
			Want: Segment{X1: 0, Y1: 5, X2: 10, Y2: 5},
			Keep: true,
		},
		{
			Name: "diagonal crossing",
			In:   Segment{X1: -10, Y1: -10, X2: 20, Y2: 20},
			Want: Segment{X1: 0, Y1: 0, X2: 10, Y2: 10},
			Keep: true,
		},
		{
			Name: "outside",
			In:   Segment{X1: 20, Y1: 20, X2: 30, Y2: 25},
			Keep: false,
		},
		{
			Name: "parallel outside",
			In:   Segment{X1: -5, Y1: 20, X2: 15, Y2: 20},
			Keep: false,
		},
	}
	for _, d := range data {
		got, ok := clipSegment(d.In, rect)
		if ok != d.Keep {
			t.Errorf("%s: keep %v, want %v", d.Name, ok, d.Keep)
			continue
		}
		if !ok {
			continue
		}
		diff := math.Abs(got.X1-d.Want.X1) + math.Abs(got.Y1-d.Want.Y1) +
			math.Abs(got.X2-d.Want.X2) + math.Abs(got.Y2-d.Want.Y2)
		if diff > 1e-9 {
			t.Errorf("%s: want %+v, got %+v", d.Name, d.Want, got)
		}
	}
}

func TestPatternKindJSON(t *testing.T) {
	for _, kind := range []PatternKind{PatternSolid, PatternDiagonal, PatternDots, PatternCrosshatch, PatternVertical} {
		b, err := json.Marshal(kind)
		if err != nil {
			t.Fatal(err)
		}
		var back PatternKind
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatal(err)
		}
		if back != kind {
			t.Errorf("%s came back as %s", kind, back)
		}
	}
	var kind PatternKind
	if err := json.Unmarshal([]byte(`"zigzag"`), &kind); err != nil {
		t.Fatal(err)
	}
	if kind != PatternSolid {
		t.Errorf("unknown kind must fall back to solid, got %s", kind)
	}
}
