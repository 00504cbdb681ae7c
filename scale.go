package barplot

import (
	"math"

	"github.com/midbel/slices"
)

// Range is a pixel interval along one canvas dimension.
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// Scale maps axis values onto pixel offsets inside a Range.
type Scale struct {
	Min   float64
	Max   float64
	Ticks []float64
	rg    Range
}

// ResolveScale reconciles the data extent with the optional user
// overrides and produces the final axis bounds and tick list. The axis
// min and max are the first and last tick, not the raw extent, so grid
// lines always line up with tick labels.
func ResolveScale(ext Extent, min, max, step OptFloat, rg Range) Scale {
	var (
		lo = min.Get(ext.Min)
		hi = max.Get(ext.Max)
	)
	if !isFinite(lo) {
		lo = ext.Min
	}
	if !isFinite(hi) {
		hi = ext.Max
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		hi++
	}
	var ticks []float64
	if sv := step.Get(0); sv > 0 {
		ticks = stepTicks(lo, hi, sv)
	} else {
		ticks = NiceTicks(lo, hi, DefaultTicks)
	}
	return Scale{
		Min:   slices.Fst(ticks),
		Max:   slices.Lst(ticks),
		Ticks: ticks,
		rg:    rg,
	}
}

// stepTicks enumerates ticks at a fixed user step, then force-includes
// the exact bounds so the axis always starts and ends on a tick.
func stepTicks(lo, hi, step float64) []float64 {
	var ticks []float64
	for v := math.Ceil(lo/step) * step; v <= hi+step/1e6; v += step {
		ticks = append(ticks, round6(v))
	}
	if len(ticks) == 0 || ticks[0] > round6(lo) {
		ticks = append([]float64{round6(lo)}, ticks...)
	}
	if slices.Lst(ticks) < round6(hi) {
		ticks = append(ticks, round6(hi))
	}
	return ticks
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Map converts an axis value to a pixel offset within the range.
func (s Scale) Map(v float64) float64 {
	if s.Max == s.Min {
		return s.rg.F
	}
	return s.rg.F + (v-s.Min)/(s.Max-s.Min)*s.rg.Len()
}

// Baseline is the pixel offset of the zero line, clamped into the axis
// bounds so bars never leave the content box.
func (s Scale) Baseline() float64 {
	zero := 0.0
	if zero < s.Min {
		zero = s.Min
	}
	if zero > s.Max {
		zero = s.Max
	}
	return s.Map(zero)
}

// Replace returns a copy of the scale mapped onto another pixel range.
func (s Scale) Replace(rg Range) Scale {
	x := s
	x.rg = rg
	x.Ticks = make([]float64, len(s.Ticks))
	copy(x.Ticks, s.Ticks)
	return x
}
