package barplot

import (
	"math"
)

// Box is an axis-aligned pixel rectangle.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

func (b Box) Right() float64 {
	return b.X + b.W
}

func (b Box) Bottom() float64 {
	return b.Y + b.H
}

const (
	minBarWidth   = 4.0
	maxGapRatio   = 0.9
	errVisibility = 0.5
)

// ErrorGeom is the drawable geometry of one error bar: the main
// segment plus the half width of its caps.
type ErrorGeom struct {
	X1      float64
	Y1      float64
	X2      float64
	Y2      float64
	CapHalf float64
}

// BarGeom is the resolved geometry and paint of one bar.
type BarGeom struct {
	Index    int
	Rect     Box
	Radius   float64
	Corners  CornerStyle
	Negative bool

	Fill          string
	FillOpacity   float64
	Border        string
	BorderWidth   float64
	BorderOpacity float64

	Pattern        PatternKind
	PatternColor   string
	PatternOpacity float64
	PatternSize    float64

	LabelX float64
	LabelY float64

	Error *ErrorGeom
}

// BuildBars computes per bar rectangles, label anchors and error bar
// geometry inside the content box. The category axis runs along the
// width for vertical charts and along the height for horizontal ones.
func BuildBars(s Settings, points []BarPoint, box Box, sc Scale) []BarGeom {
	if len(points) == 0 {
		return nil
	}
	var (
		n    = len(points)
		span = box.W
	)
	if s.Horizontal {
		span = box.H
	}
	var (
		band = span / float64(n)
		gap  = band * clampGap(s.BarGap)
		size = band - gap
	)
	if size < minBarWidth {
		size = math.Min(minBarWidth, band)
	}
	bars := make([]BarGeom, 0, n)
	for i, pt := range points {
		var (
			value = pt.Value
			from  = float64(i)*band + (band-size)/2
		)
		if !isFinite(value) {
			value = 0
		}
		bar := BarGeom{
			Index:          i,
			Corners:        s.CornerStyle,
			Negative:       value < 0,
			Fill:           pt.Fill,
			FillOpacity:    clampOpacity(pt.FillOpacity.Get(s.FillOpacity)),
			Border:         pt.Border,
			BorderWidth:    pt.BorderWidth.Get(s.BorderWidth),
			BorderOpacity:  clampOpacity(pt.BorderOpacity.Get(s.BorderOpacity)),
			Pattern:        pt.Pattern,
			PatternColor:   pt.PatternColor,
			PatternOpacity: pt.PatternOpacity,
			PatternSize:    pt.PatternSize,
		}
		if bar.BorderWidth < 0 || !isFinite(bar.BorderWidth) {
			bar.BorderWidth = s.BorderWidth
		}
		if s.Horizontal {
			bar.Rect = horizontalRect(box, from, size, value, sc)
		} else {
			bar.Rect = verticalRect(box, from, size, value, sc)
		}
		bar.Radius = clampRadius(s.CornerRadius, bar.Rect)
		bar.LabelX, bar.LabelY = labelAnchor(s, bar.Rect, box)
		if s.ErrorBars.Show {
			bar.Error = errorGeom(s, pt, bar.Rect, box, sc)
		}
		bars = append(bars, bar)
	}
	return bars
}

func verticalRect(box Box, from, size, value float64, sc Scale) Box {
	var (
		base = box.Bottom() - sc.Baseline()
		end  = box.Bottom() - sc.Map(clampValue(value, sc))
	)
	return Box{
		X: box.X + from,
		Y: math.Min(base, end),
		W: size,
		H: math.Abs(base - end),
	}
}

func horizontalRect(box Box, from, size, value float64, sc Scale) Box {
	var (
		base = box.X + sc.Baseline()
		end  = box.X + sc.Map(clampValue(value, sc))
	)
	return Box{
		X: math.Min(base, end),
		Y: box.Y + from,
		W: math.Abs(base - end),
		H: size,
	}
}

func labelAnchor(s Settings, rect, box Box) (float64, float64) {
	size := s.ValueLabels.Size
	if size <= 0 || !isFinite(size) {
		size = defaultTickSize
	}
	if s.Horizontal {
		x := rect.Right() + size*0.35 + s.ValueLabels.OffsetY
		if x > box.Right() {
			x = box.Right()
		}
		if x < box.X {
			x = box.X
		}
		return x, rect.Y + rect.H/2
	}
	y := rect.Y - size*0.35 - s.ValueLabels.OffsetY
	if y < box.Y+size*0.8 {
		y = box.Y + size*0.8
	}
	if y > box.Bottom() {
		y = box.Bottom()
	}
	return rect.X + rect.W/2, y
}

func errorGeom(s Settings, pt BarPoint, rect, box Box, sc Scale) *ErrorGeom {
	e := pt.Error
	if !isFinite(e) || e <= 0 || !isFinite(pt.Value) {
		return nil
	}
	lo, hi := pt.Value-e, pt.Value+e
	switch s.ErrorBars.Mode {
	case ErrorAbove:
		lo = pt.Value
	case ErrorBelow:
		hi = pt.Value
	}
	var geo ErrorGeom
	geo.CapHalf = s.ErrorBars.CapWidth / 2
	if s.Horizontal {
		y := rect.Y + rect.H/2
		geo.X1 = box.X + sc.Map(clampValue(lo, sc))
		geo.X2 = box.X + sc.Map(clampValue(hi, sc))
		geo.Y1, geo.Y2 = y, y
		if math.Abs(geo.X2-geo.X1) <= errVisibility {
			return nil
		}
	} else {
		x := rect.X + rect.W/2
		geo.Y1 = box.Bottom() - sc.Map(clampValue(lo, sc))
		geo.Y2 = box.Bottom() - sc.Map(clampValue(hi, sc))
		geo.X1, geo.X2 = x, x
		if math.Abs(geo.Y2-geo.Y1) <= errVisibility {
			return nil
		}
	}
	return &geo
}

// clampRadius keeps the requested corner radius below half the smaller
// bar dimension so the rounded path can not self intersect.
func clampRadius(r float64, rect Box) float64 {
	if r <= 0 || !isFinite(r) {
		return 0
	}
	return math.Min(r, math.Min(rect.W/2, rect.H/2))
}

func clampGap(g float64) float64 {
	if !isFinite(g) || g < 0 {
		return 0
	}
	if g > maxGapRatio {
		return maxGapRatio
	}
	return g
}

func clampValue(v float64, sc Scale) float64 {
	if v < sc.Min {
		return sc.Min
	}
	if v > sc.Max {
		return sc.Max
	}
	return v
}

func clampOpacity(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
