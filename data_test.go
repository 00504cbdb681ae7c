package barplot

import (
	"math"
	"testing"
)

func TestDataExtent(t *testing.T) {
	data := []struct {
		Name   string
		Points []BarPoint
		Want   Extent
	}{
		{
			Name:   "positive values clamp to zero",
			Points: []BarPoint{{Value: 3}, {Value: 7}},
			Want:   Extent{Min: 0, Max: 7},
		},
		{
			Name:   "negative values extend down",
			Points: []BarPoint{{Value: -4}, {Value: 2}},
			Want:   Extent{Min: -4, Max: 2},
		},
		{
			Name:   "errors widen both sides",
			Points: []BarPoint{{Value: 5, Error: 2}, {Value: -1, Error: 3}},
			Want:   Extent{Min: -4, Max: 7},
		},
		{
			Name:   "negative error ignored",
			Points: []BarPoint{{Value: 5, Error: -2}},
			Want:   Extent{Min: 0, Max: 5},
		},
		{
			Name:   "non finite skipped",
			Points: []BarPoint{{Value: math.NaN()}, {Value: math.Inf(1)}, {Value: 3}},
			Want:   Extent{Min: 0, Max: 3},
		},
		{
			Name: "empty set",
			Want: Extent{Min: 0, Max: 1},
		},
		{
			Name:   "all non finite",
			Points: []BarPoint{{Value: math.NaN()}},
			Want:   Extent{Min: 0, Max: 1},
		},
		{
			Name:   "all zero widens up",
			Points: []BarPoint{{Value: 0}, {Value: 0}},
			Want:   Extent{Min: 0, Max: 1},
		},
	}
	for _, d := range data {
		if got := DataExtent(d.Points); got != d.Want {
			t.Errorf("%s: want %+v, got %+v", d.Name, d.Want, got)
		}
	}
}

func TestRenumber(t *testing.T) {
	in := []BarPoint{{ID: 7}, {ID: 0}, {ID: 3}}
	out := Renumber(in)
	for i, pt := range out {
		if pt.ID != i {
			t.Errorf("index %d has id %d", i, pt.ID)
		}
	}
	if in[0].ID != 7 {
		t.Error("input slice mutated")
	}
}

func TestReplace(t *testing.T) {
	in := []BarPoint{{ID: 0, Value: 1}, {ID: 1, Value: 2}}
	out := Replace(in, BarPoint{ID: 1, Value: 9})
	if out[1].Value != 9 {
		t.Errorf("record not replaced: %+v", out[1])
	}
	if in[1].Value != 2 {
		t.Error("input slice mutated")
	}
	same := Replace(in, BarPoint{ID: 5, Value: 9})
	if same[0].Value != 1 || same[1].Value != 2 {
		t.Error("unknown id must leave records alone")
	}
}

func TestNewBarPoint(t *testing.T) {
	pal := GetPalette("category10")
	for i := 0; i < 12; i++ {
		pt := NewBarPoint(pal, i)
		if pt.Fill == "" || pt.Fill != pt.Border {
			t.Errorf("index %d: fill %q border %q", i, pt.Fill, pt.Border)
		}
		if pt.Pattern != PatternSolid {
			t.Errorf("index %d: new bars start solid", i)
		}
	}
	if NewBarPoint(pal, 0).Fill != NewBarPoint(pal, 10).Fill {
		t.Error("palette must cycle after ten colors")
	}
}
