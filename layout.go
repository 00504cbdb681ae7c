package barplot

// FocusTarget identifies an addressable scene element so an external
// panel layer can scroll or focus the matching control. Index is the
// bar index for data targets and -1 otherwise.
type FocusTarget struct {
	Key   string
	Index int
}

const (
	KeyTitle      = "title"
	KeySubtitle   = "subtitle"
	KeyXAxis      = "xAxis"
	KeyYAxis      = "yAxis"
	KeyData       = "data"
	KeyBackground = "background"
)

// Layout is the fully resolved geometry of one chart. It is recomputed
// from scratch on every settings or data change and never mutated.
type Layout struct {
	Width   float64
	Height  float64
	Margins Margins
	Content Box
	Scale   Scale
	Bars    []BarGeom
	Targets []FocusTarget
}

// BuildLayout runs the whole pipeline: dimension resolution, scale
// resolution, margin solving and bar geometry. containerWidth is the
// measured width of the hosting surface, used only when no custom
// dimension is set.
func BuildLayout(s Settings, points []BarPoint, containerWidth float64) Layout {
	var (
		width, height = ResolveDims(s, containerWidth)
		margins       = SolveMargins(s, width, height)
		content       = Box{
			X: margins.Left,
			Y: margins.Top,
			W: width - margins.Horizontal(),
			H: height - margins.Vertical(),
		}
		span = content.H
		axis = valueAxis(s)
	)
	if s.Horizontal {
		span = content.W
	}
	var (
		scale = ResolveScale(DataExtent(points), axis.Min, axis.Max, axis.Step, NewRange(0, span))
		bars  = BuildBars(s, points, content, scale)
	)
	return Layout{
		Width:   width,
		Height:  height,
		Margins: margins,
		Content: content,
		Scale:   scale,
		Bars:    bars,
		Targets: focusTargets(s, points),
	}
}

func focusTargets(s Settings, points []BarPoint) []FocusTarget {
	targets := []FocusTarget{
		{Key: KeyBackground, Index: -1},
		{Key: KeyXAxis, Index: -1},
		{Key: KeyYAxis, Index: -1},
	}
	if s.Title.Text != "" {
		targets = append(targets, FocusTarget{Key: KeyTitle, Index: -1})
	}
	if s.Subtitle.Text != "" {
		targets = append(targets, FocusTarget{Key: KeySubtitle, Index: -1})
	}
	for i := range points {
		targets = append(targets, FocusTarget{Key: KeyData, Index: i})
	}
	return targets
}
