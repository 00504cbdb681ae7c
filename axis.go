package barplot

import (
	"strconv"
	"strings"

	"github.com/midbel/svg"
)

// Orientation selects the content box edge an axis line runs along.
// Only the bottom and left edges carry axes in a bar chart.
type Orientation int

const (
	OrientBottom Orientation = iota
	OrientLeft
)

// FormatTick renders a tick value with up to six decimals and trailing
// zeros trimmed.
func FormatTick(v float64) string {
	str := strconv.FormatFloat(v, 'f', 6, 64)
	str = strings.TrimRight(str, "0")
	str = strings.TrimSuffix(str, ".")
	if str == "-0" {
		str = "0"
	}
	return str
}

// axisLine draws the domain line of one axis along the content box edge.
func axisLine(orient Orientation, box Box, style AxisStyle) svg.Element {
	var pos1, pos2 svg.Pos
	if orient == OrientLeft {
		pos1 = svg.NewPos(box.X, box.Y)
		pos2 = svg.NewPos(box.X, box.Bottom())
	} else {
		pos1 = svg.NewPos(box.X, box.Bottom())
		pos2 = svg.NewPos(box.Right(), box.Bottom())
	}
	line := svg.NewLine(pos1, pos2)
	line.Stroke = sceneStroke(style.LineColor, style.LineWidth)
	return line.AsElement()
}

// gridLines draws one grid line per tick across the content box,
// perpendicular to the value axis.
func gridLines(s Settings, box Box, sc Scale) svg.Element {
	var (
		style  = valueAxis(s)
		stroke = sceneStroke(style.GridColor, style.GridWidth)
		grp    = svg.NewGroup(svg.WithID("grid"))
	)
	stroke.Opacity = clampOpacity(style.GridOpacity)
	if dash := style.GridStyle.Dash(style.GridWidth); dash != nil {
		stroke.Dash.Array = dash
	}
	for _, t := range sc.Ticks {
		var pos1, pos2 svg.Pos
		if s.Horizontal {
			x := box.X + sc.Map(t)
			pos1 = svg.NewPos(x, box.Y)
			pos2 = svg.NewPos(x, box.Bottom())
		} else {
			y := box.Bottom() - sc.Map(t)
			pos1 = svg.NewPos(box.X, y)
			pos2 = svg.NewPos(box.Right(), y)
		}
		line := svg.NewLine(pos1, pos2)
		line.Stroke = stroke
		grp.Append(line.AsElement())
	}
	return grp.AsElement()
}

// valueTicks draws the numeric tick labels along the value axis. The
// dominant-baseline attribute is not available, so vertical centering
// and below-the-line placement are baked into the y coordinate from the
// label font size.
func valueTicks(s Settings, box Box, sc Scale) svg.Element {
	var (
		style = valueAxis(s)
		font  = sceneFont(s.TickLabelSize, s.FontFamily)
		grp   = svg.NewGroup(svg.WithID("value-ticks"))
	)
	grp.Fill = svg.NewFill(style.TickColor)
	for _, t := range sc.Ticks {
		text := svg.NewText(FormatTick(t))
		if s.Horizontal {
			text.Pos = svg.NewPos(box.X+sc.Map(t), box.Bottom()+marginGap+s.TickLabelSize)
			text.Anchor = "middle"
		} else {
			text.Pos = svg.NewPos(box.X-marginGap, box.Bottom()-sc.Map(t)+s.TickLabelSize*0.35)
			text.Anchor = "end"
		}
		text.Font = font
		grp.Append(rotated(text, style.TickAngle))
	}
	return grp.AsElement()
}

// categoryTicks draws one label per bar, centered on its band.
func categoryTicks(s Settings, points []BarPoint, box Box) svg.Element {
	var (
		style = categoryAxis(s)
		font  = sceneFont(s.TickLabelSize, s.FontFamily)
		grp   = svg.NewGroup(svg.WithID("category-ticks"))
	)
	grp.Fill = svg.NewFill(style.TickColor)
	if len(points) == 0 {
		return grp.AsElement()
	}
	span := box.W
	if s.Horizontal {
		span = box.H
	}
	band := span / float64(len(points))
	for i, pt := range points {
		var (
			center = (float64(i) + 0.5) * band
			text   = svg.NewText(pt.Label)
		)
		if s.Horizontal {
			text.Pos = svg.NewPos(box.X-marginGap, box.Y+center+s.TickLabelSize*0.35)
			text.Anchor = "end"
		} else {
			text.Pos = svg.NewPos(box.X+center, box.Bottom()+marginGap+s.TickLabelSize)
			text.Anchor = "middle"
		}
		text.Font = font
		grp.Append(rotated(text, style.TickAngle))
	}
	return grp.AsElement()
}

// axisTitles draws both axis titles; the left one is rotated a quarter
// turn around its anchor.
func axisTitles(s Settings, box Box, width, height float64) svg.Element {
	grp := svg.NewGroup(svg.WithID("axis-titles"))
	if t := s.XAxis.Title; t != "" {
		text := svg.NewText(t)
		text.Pos = svg.NewPos(box.X+box.W/2+s.XAxis.TitleOffset, height-s.Padding/2)
		text.Anchor = "middle"
		text.Font = sceneFont(s.AxisTitleSize, s.FontFamily)
		g := svg.NewGroup(svg.WithID("xAxisTitle"))
		g.Fill = svg.NewFill(s.TextColor)
		g.Append(text.AsElement())
		grp.Append(g.AsElement())
	}
	if t := s.YAxis.Title; t != "" {
		var (
			x    = s.Padding/2 + s.AxisTitleSize*0.8
			y    = box.Y + box.H/2 + s.YAxis.TitleOffset
			text = svg.NewText(t)
		)
		text.Pos = svg.NewPos(x, y)
		text.Anchor = "middle"
		text.Font = sceneFont(s.AxisTitleSize, s.FontFamily)
		g := svg.NewGroup(svg.WithID("yAxisTitle"))
		g.Fill = svg.NewFill(s.TextColor)
		g.Transform.RA = -90
		g.Transform.RX = x
		g.Transform.RY = y
		g.Append(text.AsElement())
		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}

// rotated wraps a text element in a group rotated around the text
// anchor when an angle is set.
func rotated(text svg.Text, angle float64) svg.Element {
	if angle == 0 || !isFinite(angle) {
		return text.AsElement()
	}
	var g svg.Group
	g.Transform.RA = angle
	g.Transform.RX = text.Pos.X
	g.Transform.RY = text.Pos.Y
	g.Append(text.AsElement())
	return g.AsElement()
}

// valueAxis returns the axis style that carries the numeric scale for
// the current orientation.
func valueAxis(s Settings) AxisStyle {
	if s.Horizontal {
		return s.XAxis
	}
	return s.YAxis
}

func categoryAxis(s Settings) AxisStyle {
	if s.Horizontal {
		return s.YAxis
	}
	return s.XAxis
}
