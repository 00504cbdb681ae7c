package barplot

import (
	"testing"
)

func TestSolveMarginsDefaults(t *testing.T) {
	m := SolveMargins(DefaultSettings(), 800, 500)
	if m.Top != 32 {
		t.Errorf("top: want 32, got %g", m.Top)
	}
	if m.Bottom != 36 {
		t.Errorf("bottom: want 36, got %g", m.Bottom)
	}
	if m.Left != 36 {
		t.Errorf("left: want 36, got %g", m.Left)
	}
	if m.Right != 24 {
		t.Errorf("right: want 24, got %g", m.Right)
	}
}

func TestSolveMarginsCaptions(t *testing.T) {
	s := DefaultSettings()
	s.Title.Text = "Quarterly revenue"
	base := SolveMargins(s, 800, 500)

	// padding + title block + gap
	if want := 16 + 20*1.25 + 8.0; base.Top != want {
		t.Errorf("top with title: want %g, got %g", want, base.Top)
	}

	s.Subtitle.Text = "2025"
	both := SolveMargins(s, 800, 500)
	if both.Top <= base.Top {
		t.Errorf("subtitle must deepen the top margin: %g then %g", base.Top, both.Top)
	}

	// Negative offsets push text upward and widen the reserve.
	s.Title.OffsetY = -12
	off := SolveMargins(s, 800, 500)
	if got, want := off.Top, both.Top+12; got != want {
		t.Errorf("negative offset reserve: want %g, got %g", want, got)
	}
}

func TestSolveMarginsAxisExtras(t *testing.T) {
	s := DefaultSettings()
	s.XAxis.Title = "quarter"
	s.YAxis.Title = "revenue"
	m := SolveMargins(s, 800, 500)
	plain := SolveMargins(DefaultSettings(), 800, 500)
	if m.Bottom <= plain.Bottom {
		t.Errorf("x title must deepen the bottom margin: %g then %g", plain.Bottom, m.Bottom)
	}
	if m.Left <= plain.Left {
		t.Errorf("y title must widen the left margin: %g then %g", plain.Left, m.Left)
	}

	s.XAxis.ShowTicks = false
	s.YAxis.ShowTicks = false
	s.XAxis.Title = ""
	s.YAxis.Title = ""
	bare := SolveMargins(s, 800, 500)
	if bare.Bottom >= plain.Bottom || bare.Left >= plain.Left {
		t.Errorf("hidden ticks must shrink margins: %+v vs %+v", bare, plain)
	}
}

func TestSolveMarginsClamped(t *testing.T) {
	s := DefaultSettings()
	s.Title.Text = "A very long title"
	s.Title.Size = 400
	s.Padding = 500

	sizes := [][2]float64{
		{800, 500},
		{120, 90},
		{40, 30},
	}
	for _, wh := range sizes {
		var (
			width, height = wh[0], wh[1]
			m             = SolveMargins(s, width, height)
		)
		if m.Top < minTopRight || m.Right < minTopRight {
			t.Errorf("%gx%g: top/right below floor: %+v", width, height, m)
		}
		if m.Bottom < minBottomLeft || m.Left < minBottomLeft {
			t.Errorf("%gx%g: bottom/left below floor: %+v", width, height, m)
		}
		if hi := height/2 - edgeReserve; hi > minTopRight && m.Top > hi {
			t.Errorf("%gx%g: top above ceiling %g: %+v", width, height, hi, m)
		}
		if hi := width/2 - edgeReserve; hi > minTopRight && m.Right > hi {
			t.Errorf("%gx%g: right above ceiling %g: %+v", width, height, hi, m)
		}
	}
}
