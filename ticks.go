package barplot

import (
	"math"
)

const DefaultTicks = 6

// NiceTicks returns an ascending list of tick values covering at least
// [min, max], spaced on a 1/2/5/10 grid. Running it again on its own
// first and last tick returns the same list.
func NiceTicks(min, max float64, count int) []float64 {
	if count < 2 {
		count = DefaultTicks
	}
	if !isFinite(min) || !isFinite(max) {
		min, max = 0, 1
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		// Synthesize a symmetric window around the single value.
		step := math.Abs(min) * 0.2
		if step == 0 {
			step = 1
		}
		min, max = min-step, max+step
	}
	var (
		rng     = niceNumber(max-min, false)
		spacing = niceNumber(rng/float64(count-1), true)
		lo      = math.Floor(min/spacing) * spacing
		hi      = math.Ceil(max/spacing) * spacing
		ticks   []float64
	)
	for v := lo; v <= hi+spacing/2; v += spacing {
		ticks = append(ticks, roundSig(v, 12))
	}
	return ticks
}

// niceNumber maps rng onto the nearest value of the form {1,2,5,10}*10^k.
// The rounding table differs between the step computation (round) and
// the outer range computation.
func niceNumber(rng float64, round bool) float64 {
	if rng <= 0 || !isFinite(rng) {
		return 1
	}
	var (
		exp  = math.Floor(math.Log10(rng))
		frac = rng / math.Pow(10, exp)
		nice float64
	)
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

// roundSig trims accumulated float drift by rounding to the given number
// of significant digits.
func roundSig(v float64, digits int) float64 {
	if v == 0 || !isFinite(v) {
		return 0
	}
	var (
		mag   = float64(digits) - 1 - math.Floor(math.Log10(math.Abs(v)))
		scale = math.Pow(10, mag)
	)
	return math.Round(v*scale) / scale
}
