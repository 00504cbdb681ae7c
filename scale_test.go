package barplot

import (
	"math"
	"reflect"
	"testing"
)

func TestResolveScaleAuto(t *testing.T) {
	sc := ResolveScale(Extent{Min: 0, Max: 8}, Auto(), Auto(), Auto(), NewRange(0, 300))
	want := []float64{0, 2, 4, 6, 8}
	if !reflect.DeepEqual(sc.Ticks, want) {
		t.Fatalf("want ticks %v, got %v", want, sc.Ticks)
	}
	if sc.Min != 0 || sc.Max != 8 {
		t.Errorf("bounds must be the first and last tick, got [%g, %g]", sc.Min, sc.Max)
	}
}

func TestResolveScaleOverrides(t *testing.T) {
	sc := ResolveScale(Extent{Min: 0, Max: 8}, Manual(-10), Manual(20), Auto(), NewRange(0, 100))
	if sc.Min > -10 || sc.Max < 20 {
		t.Errorf("manual bounds not honored: [%g, %g]", sc.Min, sc.Max)
	}

	// Swapped overrides are reordered, equal ones widened.
	sc = ResolveScale(Extent{Min: 0, Max: 1}, Manual(5), Manual(2), Auto(), NewRange(0, 100))
	if sc.Min > 2 || sc.Max < 5 {
		t.Errorf("swapped bounds not reordered: [%g, %g]", sc.Min, sc.Max)
	}
	sc = ResolveScale(Extent{Min: 0, Max: 1}, Manual(3), Manual(3), Auto(), NewRange(0, 100))
	if sc.Min >= sc.Max {
		t.Errorf("equal bounds must widen, got [%g, %g]", sc.Min, sc.Max)
	}
}

func TestResolveScaleStep(t *testing.T) {
	sc := ResolveScale(Extent{Min: 0, Max: 10}, Auto(), Auto(), Manual(3), NewRange(0, 100))
	want := []float64{0, 3, 6, 9, 10}
	if !reflect.DeepEqual(sc.Ticks, want) {
		t.Fatalf("want ticks %v, got %v", want, sc.Ticks)
	}
	if sc.Min != 0 || sc.Max != 10 {
		t.Errorf("step ticks must include the exact bounds, got [%g, %g]", sc.Min, sc.Max)
	}
}

func TestScaleMap(t *testing.T) {
	sc := ResolveScale(Extent{Min: 0, Max: 10}, Auto(), Auto(), Auto(), NewRange(0, 100))
	data := []struct {
		In   float64
		Want float64
	}{
		{In: 0, Want: 0},
		{In: 5, Want: 50},
		{In: 10, Want: 100},
	}
	for _, d := range data {
		if got := sc.Map(d.In); math.Abs(got-d.Want) > 1e-9 {
			t.Errorf("Map(%g): want %g, got %g", d.In, d.Want, got)
		}
	}
}

func TestScaleBaseline(t *testing.T) {
	sc := ResolveScale(Extent{Min: -4, Max: 8}, Auto(), Auto(), Auto(), NewRange(0, 120))
	if got, want := sc.Baseline(), sc.Map(0); got != want {
		t.Errorf("baseline inside bounds must map zero: want %g, got %g", want, got)
	}

	// Axis entirely above zero: the baseline clamps to the bottom bound.
	sc = ResolveScale(Extent{Min: 0, Max: 1}, Manual(2), Manual(10), Auto(), NewRange(0, 120))
	if got, want := sc.Baseline(), sc.Map(sc.Min); got != want {
		t.Errorf("baseline must clamp to the axis min: want %g, got %g", want, got)
	}
}

func TestScaleReplace(t *testing.T) {
	sc := ResolveScale(Extent{Min: 0, Max: 10}, Auto(), Auto(), Auto(), NewRange(0, 100))
	other := sc.Replace(NewRange(0, 200))
	if got := other.Map(5); got != 100 {
		t.Errorf("replaced range not used: got %g", got)
	}
	if got := sc.Map(5); got != 50 {
		t.Errorf("original scale mutated: got %g", got)
	}
}
