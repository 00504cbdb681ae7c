package barplot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/midbel/svg"
)

// Scene binds settings, data and a resolved layout into a renderable
// SVG document. Build one with NewScene; it holds no mutable state and
// can be rendered any number of times.
type Scene struct {
	Settings Settings
	Points   []BarPoint
	Layout   Layout

	// Transparent skips the background rectangle, for exports onto
	// transparent surfaces.
	Transparent bool
}

func NewScene(s Settings, points []BarPoint, containerWidth float64) Scene {
	return Scene{
		Settings: s,
		Points:   points,
		Layout:   BuildLayout(s, points, containerWidth),
	}
}

// Render writes the scene as a standalone SVG document. Elements are
// drawn back to front: background, grid, bars, value labels, error
// bars, axis lines, axis titles, tick labels.
func (c Scene) Render(w io.Writer) {
	var (
		s   = c.Settings
		lay = c.Layout
		el  = svg.NewSVG(svg.WithDimension(lay.Width, lay.Height))
	)
	if !c.Transparent {
		var bg svg.Rect
		bg.Id = KeyBackground
		bg.Pos = svg.NewPos(0, 0)
		bg.Dim = svg.NewDim(lay.Width, lay.Height)
		bg.Fill = svg.NewFill(s.Background)
		el.Append(bg.AsElement())
	}
	if valueAxis(s).ShowGrid {
		el.Append(gridLines(s, lay.Content, lay.Scale))
	}
	el.Append(c.drawBars())
	if s.ValueLabels.Show {
		el.Append(c.drawValueLabels())
	}
	if s.ErrorBars.Show {
		el.Append(c.drawErrorBars())
	}
	el.Append(c.drawAxisLines())
	el.Append(axisTitles(s, lay.Content, lay.Width, lay.Height))
	el.Append(c.drawTickLabels())
	el.Append(c.drawCaptions())

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func (c Scene) drawBars() svg.Element {
	grp := svg.NewGroup(svg.WithID(KeyData))
	for _, bar := range c.Layout.Bars {
		g := svg.NewGroup(svg.WithID(fmt.Sprintf("bar-%d", bar.Index)))
		g.Append(c.drawBar(bar))
		if bar.Pattern != PatternSolid {
			g.Append(c.drawPattern(bar))
		}
		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}

func (c Scene) drawBar(bar BarGeom) svg.Element {
	pat := barPath(bar, c.Settings.Horizontal)
	pat.Fill = svg.NewFill(bar.Fill)
	pat.Fill.Opacity = bar.FillOpacity
	if c.Settings.WithBorder && bar.BorderWidth > 0 {
		pat.Stroke = sceneStroke(bar.Border, bar.BorderWidth)
		pat.Stroke.Opacity = bar.BorderOpacity
	}
	return pat.AsElement()
}

func (c Scene) drawPattern(bar BarGeom) svg.Element {
	var (
		tile        = PatternTile(bar.Pattern, bar.PatternSize)
		lines, dots = tile.Fill(bar.Rect)
		grp         svg.Group
		opacity     = clampOpacity(bar.PatternOpacity)
	)
	grp.Class = append(grp.Class, "pattern")
	for _, ln := range lines {
		line := svg.NewLine(svg.NewPos(ln.X1, ln.Y1), svg.NewPos(ln.X2, ln.Y2))
		line.Stroke = sceneStroke(bar.PatternColor, tile.StrokeWidth)
		line.Stroke.Opacity = opacity
		grp.Append(line.AsElement())
	}
	for _, d := range dots {
		var ci svg.Circle
		ci.Pos = svg.NewPos(d.X, d.Y)
		ci.Radius = d.R
		ci.Fill = svg.NewFill(bar.PatternColor)
		ci.Fill.Opacity = opacity
		grp.Append(ci.AsElement())
	}
	return grp.AsElement()
}

func (c Scene) drawValueLabels() svg.Element {
	var (
		s    = c.Settings
		grp  = svg.NewGroup(svg.WithID("value-labels"))
		size = s.ValueLabels.Size
	)
	if size <= 0 || !isFinite(size) {
		size = defaultTickSize
	}
	font := sceneFont(size, s.FontFamily)
	grp.Fill = svg.NewFill(s.ValueLabels.Color)
	for _, bar := range c.Layout.Bars {
		if bar.Index >= len(c.Points) {
			continue
		}
		pt := c.Points[bar.Index]
		if !isFinite(pt.Value) {
			continue
		}
		text := svg.NewText(FormatTick(pt.Value))
		text.Font = font
		if s.Horizontal {
			// Baseline shifted down to center the text on the bar.
			text.Pos = svg.NewPos(bar.LabelX, bar.LabelY+size*0.35)
			text.Anchor = "start"
		} else {
			text.Pos = svg.NewPos(bar.LabelX, bar.LabelY)
			text.Anchor = "middle"
		}
		grp.Append(text.AsElement())
	}
	return grp.AsElement()
}

func (c Scene) drawErrorBars() svg.Element {
	var (
		s      = c.Settings
		stroke = sceneStroke(s.ErrorBars.Color, s.ErrorBars.Width)
		grp    = svg.NewGroup(svg.WithID("error-bars"))
	)
	for _, bar := range c.Layout.Bars {
		geo := bar.Error
		if geo == nil {
			continue
		}
		main := svg.NewLine(svg.NewPos(geo.X1, geo.Y1), svg.NewPos(geo.X2, geo.Y2))
		main.Stroke = stroke
		grp.Append(main.AsElement())
		for _, end := range [][2]float64{{geo.X1, geo.Y1}, {geo.X2, geo.Y2}} {
			var pos1, pos2 svg.Pos
			if s.Horizontal {
				pos1 = svg.NewPos(end[0], end[1]-geo.CapHalf)
				pos2 = svg.NewPos(end[0], end[1]+geo.CapHalf)
			} else {
				pos1 = svg.NewPos(end[0]-geo.CapHalf, end[1])
				pos2 = svg.NewPos(end[0]+geo.CapHalf, end[1])
			}
			tick := svg.NewLine(pos1, pos2)
			tick.Stroke = stroke
			grp.Append(tick.AsElement())
		}
	}
	return grp.AsElement()
}

func (c Scene) drawAxisLines() svg.Element {
	var (
		s   = c.Settings
		box = c.Layout.Content
		grp = svg.NewGroup(svg.WithID("axis"))
	)
	if s.XAxis.ShowLine {
		grp.Append(axisLine(OrientBottom, box, s.XAxis))
	}
	if s.YAxis.ShowLine {
		grp.Append(axisLine(OrientLeft, box, s.YAxis))
	}
	return grp.AsElement()
}

func (c Scene) drawTickLabels() svg.Element {
	var (
		s   = c.Settings
		box = c.Layout.Content
		grp = svg.NewGroup(svg.WithID("ticks"))
	)
	if valueAxis(s).ShowTicks {
		grp.Append(valueTicks(s, box, c.Layout.Scale))
	}
	if categoryAxis(s).ShowTicks {
		grp.Append(categoryTicks(s, c.Points, box))
	}
	return grp.AsElement()
}

func (c Scene) drawCaptions() svg.Element {
	var (
		s   = c.Settings
		lay = c.Layout
		grp = svg.NewGroup(svg.WithID("captions"))
		top = s.Padding
	)
	if s.Title.Text != "" {
		top += captionHeight(s.Title)
		grp.Append(caption(s.Title, KeyTitle, lay.Width, top, s.FontFamily))
	}
	if s.Subtitle.Text != "" {
		if s.Title.Text != "" {
			top += blockGap
		}
		top += captionHeight(s.Subtitle)
		grp.Append(caption(s.Subtitle, KeySubtitle, lay.Width, top, s.FontFamily))
	}
	return grp.AsElement()
}

func caption(c Caption, key string, width, baseline float64, family string) svg.Element {
	text := svg.NewText(c.Text)
	text.Pos = svg.NewPos(width/2+c.OffsetX, baseline+c.OffsetY)
	text.Anchor = "middle"
	text.Font = sceneFont(c.Size, family)
	g := svg.NewGroup(svg.WithID(key))
	g.Fill = svg.NewFill(c.Color)
	g.Append(text.AsElement())
	return g.AsElement()
}

func sceneFont(size float64, family string) svg.Font {
	fnt := svg.NewFont(size)
	if family != "" {
		fnt.Family = []string{family}
	}
	return fnt
}

// sceneStroke builds a stroke with a fractional width, which the
// constructor does not accept.
func sceneStroke(color string, width float64) svg.Stroke {
	sk := svg.NewStroke(color, 0)
	sk.Width = width
	return sk
}

// barPath builds the bar outline, rounding either the two corners away
// from the baseline or all four.
func barPath(bar BarGeom, horizontal bool) svg.Path {
	var (
		pat svg.Path
		r   = bar.Radius
		b   = bar.Rect
	)
	if r <= 0 {
		pat.AbsMoveTo(svg.NewPos(b.X, b.Y))
		pat.AbsLineTo(svg.NewPos(b.Right(), b.Y))
		pat.AbsLineTo(svg.NewPos(b.Right(), b.Bottom()))
		pat.AbsLineTo(svg.NewPos(b.X, b.Bottom()))
		pat.ClosePath()
		return pat
	}
	round := [4]bool{true, true, true, true}
	if bar.Corners == CornerTop {
		// Only the far end, relative to the baseline, is rounded.
		switch {
		case horizontal && bar.Negative:
			round = [4]bool{true, false, false, true}
		case horizontal:
			round = [4]bool{false, true, true, false}
		case bar.Negative:
			round = [4]bool{false, false, true, true}
		default:
			round = [4]bool{true, true, false, false}
		}
	}
	// Clockwise from the top left corner; round[i] follows the same
	// order: top-left, top-right, bottom-right, bottom-left.
	if round[0] {
		pat.AbsMoveTo(svg.NewPos(b.X, b.Y+r))
		pat.Arc(svg.NewPos(b.X+r, b.Y), r, r, false, true)
	} else {
		pat.AbsMoveTo(svg.NewPos(b.X, b.Y))
	}
	if round[1] {
		pat.AbsLineTo(svg.NewPos(b.Right()-r, b.Y))
		pat.Arc(svg.NewPos(b.Right(), b.Y+r), r, r, false, true)
	} else {
		pat.AbsLineTo(svg.NewPos(b.Right(), b.Y))
	}
	if round[2] {
		pat.AbsLineTo(svg.NewPos(b.Right(), b.Bottom()-r))
		pat.Arc(svg.NewPos(b.Right()-r, b.Bottom()), r, r, false, true)
	} else {
		pat.AbsLineTo(svg.NewPos(b.Right(), b.Bottom()))
	}
	if round[3] {
		pat.AbsLineTo(svg.NewPos(b.X+r, b.Bottom()))
		pat.Arc(svg.NewPos(b.X, b.Bottom()-r), r, r, false, true)
	} else {
		pat.AbsLineTo(svg.NewPos(b.X, b.Bottom()))
	}
	pat.ClosePath()
	return pat
}
