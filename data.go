package barplot

import (
	"math"
)

// BarPoint is a single bar. Records are replaced whole on edit; ids are
// kept sequential by Renumber so addressing stays stable across
// delete and reorder operations.
type BarPoint struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Error float64 `json:"error"`
	Group string  `json:"group"`

	Fill          string   `json:"fill"`
	Border        string   `json:"border"`
	BorderOpacity OptFloat `json:"borderOpacity"`
	BorderWidth   OptFloat `json:"borderWidth"`
	FillOpacity   OptFloat `json:"fillOpacity"`

	Pattern        PatternKind `json:"pattern"`
	PatternColor   string      `json:"patternColor"`
	PatternOpacity float64     `json:"patternOpacity"`
	PatternSize    float64     `json:"patternSize"`
}

// NewBarPoint creates a bar with colors derived from the palette and
// the bar index.
func NewBarPoint(pal Palette, index int) BarPoint {
	return BarPoint{
		ID:             index,
		Label:          "",
		Fill:           pal.At(index),
		Border:         pal.At(index),
		Pattern:        PatternSolid,
		PatternColor:   "#ffffff",
		PatternOpacity: 0.6,
		PatternSize:    8,
	}
}

// Renumber returns a copy of points with sequential ids in slice order.
func Renumber(points []BarPoint) []BarPoint {
	out := make([]BarPoint, len(points))
	copy(out, points)
	for i := range out {
		out[i].ID = i
	}
	return out
}

// Replace swaps the record whose id matches pt.ID and returns the new
// slice; the input slice is left untouched.
func Replace(points []BarPoint, pt BarPoint) []BarPoint {
	out := make([]BarPoint, len(points))
	copy(out, points)
	for i := range out {
		if out[i].ID == pt.ID {
			out[i] = pt
		}
	}
	return out
}

// Extent is the numeric span of the data, error bars included.
type Extent struct {
	Min float64
	Max float64
}

// DataExtent computes the value range covered by the bars. The lower
// bound never exceeds zero so bars always grow from the baseline, and
// non finite values are skipped. An empty or degenerate set yields the
// synthetic [0, 1] extent.
func DataExtent(points []BarPoint) Extent {
	var (
		lo    = math.Inf(1)
		hi    = math.Inf(-1)
		found bool
	)
	for _, pt := range points {
		if !isFinite(pt.Value) {
			continue
		}
		e := pt.Error
		if !isFinite(e) || e < 0 {
			e = 0
		}
		if v := pt.Value - e; v < lo {
			lo = v
		}
		if v := pt.Value + e; v > hi {
			hi = v
		}
		found = true
	}
	if !found {
		return Extent{Min: 0, Max: 1}
	}
	if lo > 0 {
		lo = 0
	}
	if hi <= lo {
		hi = lo + 1
	}
	return Extent{Min: lo, Max: hi}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
