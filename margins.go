package barplot

import (
	"math"
)

// Margins are the pixel widths of the four gutters around the content
// box. They are solved analytically from font sizes and offsets rather
// than measured text metrics, trading exactness for determinism.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (m Margins) Horizontal() float64 {
	return m.Left + m.Right
}

func (m Margins) Vertical() float64 {
	return m.Top + m.Bottom
}

const (
	marginGap     = 8.0
	blockGap      = 8.0
	smallDefault  = 16.0
	minTopRight   = 24.0
	minBottomLeft = 32.0
	edgeReserve   = 20.0
)

// SolveMargins computes the four margins for a canvas of the given
// size. Title and subtitle blocks occupy the top margin, tick labels
// and axis titles the bottom and left ones; every margin is clamped so
// the content box can not collapse.
func SolveMargins(s Settings, width, height float64) Margins {
	var m Margins

	top := s.Padding
	if s.Title.Text != "" || s.Subtitle.Text != "" {
		var block float64
		if s.Title.Text != "" {
			block += captionHeight(s.Title)
		}
		if s.Subtitle.Text != "" {
			block += captionHeight(s.Subtitle)
		}
		top += block + blockGap
	} else {
		top += smallDefault
	}
	// Negative vertical offsets push text upward, past the solved
	// block; reserve the overshoot.
	top += negMag(s.Title.OffsetY) + negMag(s.Subtitle.OffsetY)
	if s.ValueLabels.Show {
		top += negMag(s.ValueLabels.OffsetY)
	}
	m.Top = clampMargin(top, minTopRight, height/2-edgeReserve)

	bottom := s.Padding
	if s.XAxis.ShowTicks {
		bottom += s.TickLabelSize + marginGap
	} else {
		bottom += marginGap
	}
	if s.XAxis.Title != "" {
		bottom += s.AxisTitleSize * 1.2
	}
	bottom += math.Max(0, s.XAxis.TitleOffset)
	m.Bottom = clampMargin(bottom, minBottomLeft, height/2-edgeReserve)

	left := s.Padding
	if s.YAxis.ShowTicks {
		left += s.TickLabelSize + marginGap
	} else {
		left += marginGap
	}
	if s.YAxis.Title != "" {
		left += s.AxisTitleSize * 1.2
	}
	left += negMag(s.YAxis.TitleOffset)
	m.Left = clampMargin(left, minBottomLeft, width/2-edgeReserve)

	m.Right = clampMargin(s.Padding+marginGap, minTopRight, width/2-edgeReserve)
	return m
}

func captionHeight(c Caption) float64 {
	size := c.Size
	if size <= 0 || !isFinite(size) {
		size = defaultFontSize
	}
	return size * 1.25
}

func negMag(v float64) float64 {
	if !isFinite(v) || v >= 0 {
		return 0
	}
	return -v
}

func clampMargin(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
