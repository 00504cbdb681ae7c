package barplot

import (
	"encoding/json"
	"math"
)

type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternDiagonal
	PatternDots
	PatternCrosshatch
	PatternVertical
)

func GetPatternKind(str string) PatternKind {
	switch str {
	case "diagonal":
		return PatternDiagonal
	case "dots":
		return PatternDots
	case "crosshatch":
		return PatternCrosshatch
	case "vertical":
		return PatternVertical
	default:
		return PatternSolid
	}
}

func (p PatternKind) String() string {
	switch p {
	case PatternDiagonal:
		return "diagonal"
	case PatternDots:
		return "dots"
	case PatternCrosshatch:
		return "crosshatch"
	case PatternVertical:
		return "vertical"
	default:
		return "solid"
	}
}

func (p PatternKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PatternKind) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*p = GetPatternKind(str)
	return nil
}

// Segment is a straight accent stroke in tile or canvas coordinates.
type Segment struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// Dot is a filled accent circle.
type Dot struct {
	X float64
	Y float64
	R float64
}

// Tile is the repeating unit of a pattern fill. Primitives are laid out
// in a Size by Size square so adjacent tiles join seamlessly.
type Tile struct {
	Size        float64
	StrokeWidth float64
	Lines       []Segment
	Dots        []Dot
}

const minTileSize = 2.0

// PatternTile builds the unit tile for a pattern kind. Stroke and dot
// sizes scale with the tile, with floors so the accent stays visible at
// small sizes.
func PatternTile(kind PatternKind, size float64) Tile {
	if !isFinite(size) || size < minTileSize {
		size = minTileSize
	}
	var (
		t    = Tile{Size: size, StrokeWidth: math.Max(size/8, 0.75)}
		half = size / 2
	)
	switch kind {
	case PatternDiagonal:
		// Three parallel 45 degree strokes, offset by half a tile,
		// so the hatch continues across tile boundaries.
		t.Lines = []Segment{
			{X1: 0, Y1: half, X2: half, Y2: 0},
			{X1: 0, Y1: size, X2: size, Y2: 0},
			{X1: half, Y1: size, X2: size, Y2: half},
		}
	case PatternDots:
		r := math.Max(size/6, 1)
		t.Dots = []Dot{
			{X: size / 4, Y: size / 4, R: r},
			{X: 3 * size / 4, Y: 3 * size / 4, R: r},
		}
	case PatternCrosshatch:
		t.Lines = []Segment{
			{X1: 0, Y1: half, X2: size, Y2: half},
			{X1: half, Y1: 0, X2: half, Y2: size},
		}
	case PatternVertical:
		t.Lines = []Segment{
			{X1: size / 4, Y1: 0, X2: size / 4, Y2: size},
			{X1: 3 * size / 4, Y1: 0, X2: 3 * size / 4, Y2: size},
		}
	}
	return t
}

// Fill repeats the tile across a rectangle and clips every primitive at
// the rectangle edges, so the pattern can be drawn directly without an
// SVG pattern reference.
func (t Tile) Fill(rect Box) ([]Segment, []Dot) {
	if rect.W <= 0 || rect.H <= 0 {
		return nil, nil
	}
	var (
		lines []Segment
		dots  []Dot
	)
	for ty := rect.Y; ty < rect.Bottom(); ty += t.Size {
		for tx := rect.X; tx < rect.Right(); tx += t.Size {
			for _, ln := range t.Lines {
				seg := Segment{
					X1: tx + ln.X1,
					Y1: ty + ln.Y1,
					X2: tx + ln.X2,
					Y2: ty + ln.Y2,
				}
				if c, ok := clipSegment(seg, rect); ok {
					lines = append(lines, c)
				}
			}
			for _, d := range t.Dots {
				dot := Dot{X: tx + d.X, Y: ty + d.Y, R: d.R}
				if dotInside(dot, rect) {
					dots = append(dots, dot)
				}
			}
		}
	}
	return lines, dots
}

func dotInside(d Dot, rect Box) bool {
	return d.X-d.R >= rect.X && d.X+d.R <= rect.Right() &&
		d.Y-d.R >= rect.Y && d.Y+d.R <= rect.Bottom()
}

// clipSegment reduces a segment to its portion inside the rectangle
// using the Liang-Barsky parametric test. The second return value is
// false when the segment lies entirely outside.
func clipSegment(seg Segment, rect Box) (Segment, bool) {
	var (
		dx     = seg.X2 - seg.X1
		dy     = seg.Y2 - seg.Y1
		t0, t1 = 0.0, 1.0
	)
	p := []float64{-dx, dx, -dy, dy}
	q := []float64{
		seg.X1 - rect.X,
		rect.Right() - seg.X1,
		seg.Y1 - rect.Y,
		rect.Bottom() - seg.Y1,
	}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return seg, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return seg, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return seg, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return Segment{
		X1: seg.X1 + t0*dx,
		Y1: seg.Y1 + t0*dy,
		X2: seg.X1 + t1*dx,
		Y2: seg.Y1 + t1*dy,
	}, true
}
